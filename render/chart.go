// Package render draws a test document as a multi-series line chart.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/carbocation/pfx"
	"github.com/gacevedo/virus-sucks-plotter/pluslife"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat accepts "png" or "svg".
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case PNG, SVG:
		return Format(s), nil
	}

	return "", fmt.Errorf("unknown chart format %q (want png or svg)", s)
}

// Extension is the file suffix for charts in this format.
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType is the MIME type for charts in this format.
func (f Format) ContentType() string {
	if f == SVG {
		return chart.ContentTypeSVG
	}

	return chart.ContentTypePNG
}

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}

	return chart.PNG
}

type Options struct {
	Width  int
	Height int
	Format Format
}

func DefaultOptions() Options {
	return Options{Width: 800, Height: 400, Format: PNG}
}

// ErrNoSamples is returned when a document has nothing to plot.
var ErrNoSamples = errors.New("document has no samples to plot")

var gridStyle = chart.Style{
	StrokeColor:     drawing.ColorFromHex("cccccc"),
	StrokeWidth:     1,
	StrokeDashArray: []float64{3, 3},
}

// NewLineChart lays out one series per channel, in the order channels first
// appear, over sampling time in minutes.
func NewLineChart(doc pluslife.TestDocument, opts Options) (chart.Chart, error) {
	samples := doc.TestData.Samples
	channels := pluslife.Channels(samples)
	if len(channels) == 0 {
		return chart.Chart{}, ErrNoSamples
	}

	rows := pluslife.Pivot(samples)

	xBounds, yBounds := newBounds(), newBounds()
	series := make([]chart.Series, 0, len(channels))
	for i, ch := range channels {
		xs := make([]float64, 0, len(rows))
		ys := make([]float64, 0, len(rows))

		for _, row := range rows {
			v, ok := row.Value(ch)
			if !ok {
				continue
			}
			xs = append(xs, row.SamplingTime)
			ys = append(ys, v)
			xBounds.add(row.SamplingTime)
			yBounds.add(v)
		}

		series = append(series, chart.ContinuousSeries{
			Name: ch.Name(),
			Style: chart.Style{
				StrokeColor: ChannelColor(i, len(channels)),
				StrokeWidth: 2,
			},
			XValues: xs,
			YValues: ys,
		})
	}

	graph := chart.Chart{
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 30, Bottom: 5},
		},
		XAxis: chart.XAxis{
			Name:           "Time since start (min)",
			ValueFormatter: minutesFormatter,
			GridMajorStyle: gridStyle,
			Range:          xBounds.rangeOrNil(0.5),
		},
		YAxis: chart.YAxis{
			Name:           "Fluorescence value",
			GridMajorStyle: gridStyle,
			Range:          yBounds.rangeOrNil(1),
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph, nil
}

// Render writes doc's chart to w in opts.Format.
func Render(w io.Writer, doc pluslife.TestDocument, opts Options) error {
	graph, err := NewLineChart(doc, opts)
	if err != nil {
		return err
	}

	if err := graph.Render(opts.Format.provider(), w); err != nil {
		return pfx.Err(err)
	}

	return nil
}

func minutesFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.1f", f)
	}

	return ""
}

type bounds struct {
	min, max float64
}

func newBounds() *bounds {
	return &bounds{min: math.Inf(1), max: math.Inf(-1)}
}

func (b *bounds) add(v float64) {
	b.min = math.Min(b.min, v)
	b.max = math.Max(b.max, v)
}

// rangeOrNil lets go-chart pick the range unless every value is the same,
// in which case it pads by pad on either side; a zero-width range cannot be
// drawn.
func (b *bounds) rangeOrNil(pad float64) chart.Range {
	if b.min != b.max {
		return nil
	}

	return &chart.ContinuousRange{Min: b.min - pad, Max: b.max + pad}
}

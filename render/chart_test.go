package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gacevedo/virus-sucks-plotter/pluslife"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func testDocument() pluslife.TestDocument {
	return pluslife.TestDocument{
		TestType:   "SARS-CoV-2",
		TestResult: pluslife.TestResult{DetectionResult: 2},
		TestData: pluslife.TestData{Samples: []pluslife.Sample{
			{SamplingTime: 2, StartingChannel: 3, FirstChannelResult: 900},
			{SamplingTime: 1, StartingChannel: 0, FirstChannelResult: 10},
			{SamplingTime: 1, StartingChannel: 3, FirstChannelResult: 800},
			{SamplingTime: 2, StartingChannel: 0, FirstChannelResult: 25},
			{SamplingTime: 3, StartingChannel: 0, FirstChannelResult: 70},
			{SamplingTime: 3, StartingChannel: 3, FirstChannelResult: 1000},
		}},
	}
}

func TestNewLineChartSeries(t *testing.T) {
	graph, err := NewLineChart(testDocument(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, graph.Series, 2)

	control := graph.Series[0].(chart.ContinuousSeries)
	assert.Equal(t, "Channel 4 (control)", control.Name)
	assert.Equal(t, []float64{2, 1, 3}, control.XValues)
	assert.Equal(t, []float64{900, 800, 1000}, control.YValues)

	first := graph.Series[1].(chart.ContinuousSeries)
	assert.Equal(t, "Channel 1", first.Name)
	assert.Equal(t, []float64{2, 1, 3}, first.XValues)
	assert.Equal(t, []float64{25, 10, 70}, first.YValues)

	assert.Equal(t, ChannelColor(0, 2), control.Style.StrokeColor)
	assert.Equal(t, ChannelColor(1, 2), first.Style.StrokeColor)
	assert.Equal(t, 800, graph.Width)
	assert.Equal(t, 400, graph.Height)
	assert.Nil(t, graph.XAxis.Range)
}

func TestNewLineChartEmpty(t *testing.T) {
	_, err := NewLineChart(pluslife.TestDocument{}, DefaultOptions())
	assert.True(t, errors.Is(err, ErrNoSamples))

	err = Render(&bytes.Buffer{}, pluslife.TestDocument{}, DefaultOptions())
	assert.True(t, errors.Is(err, ErrNoSamples))
}

func TestNewLineChartPadsFlatRanges(t *testing.T) {
	doc := pluslife.TestDocument{TestData: pluslife.TestData{Samples: []pluslife.Sample{
		{SamplingTime: 4, StartingChannel: 0, FirstChannelResult: 5},
		{SamplingTime: 4, StartingChannel: 1, FirstChannelResult: 5},
	}}}

	graph, err := NewLineChart(doc, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, &chart.ContinuousRange{Min: 3.5, Max: 4.5}, graph.XAxis.Range)
	assert.Equal(t, &chart.ContinuousRange{Min: 4, Max: 6}, graph.YAxis.Range)
}

func TestRenderSVG(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = SVG

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testDocument(), opts))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Channel 1")
	assert.Contains(t, out, "Channel 4 (control)")
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testDocument(), DefaultOptions()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestChannelColor(t *testing.T) {
	// Hue 0 at 70% saturation, 50% lightness.
	assert.Equal(t, drawing.Color{R: 217, G: 38, B: 38, A: 255}, ChannelColor(0, 4))
	assert.Equal(t, "#d92626", ChannelHex(0, 4))
	assert.NotEqual(t, ChannelColor(0, 4), ChannelColor(2, 4))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("svg")
	require.NoError(t, err)
	assert.Equal(t, SVG, f)
	assert.Equal(t, ".svg", f.Extension())

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

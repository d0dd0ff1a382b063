package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gacevedo/virus-sucks-plotter/docslot"
	"github.com/gacevedo/virus-sucks-plotter/pluslife"
	"github.com/gacevedo/virus-sucks-plotter/render"
	"github.com/gorilla/mux"
)

// uploadField is the multipart field the page's file picker posts.
const uploadField = "file"

type channelRow struct {
	Key   string
	Name  string
	Color string
	Stat  pluslife.ChannelStat
}

type indexData struct {
	Loaded      bool
	Summary     pluslife.Summary
	SampleCount int
	Channels    []channelRow
	ChartSVG    string
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	output := indexData{}

	doc, loaded := h.slot.Current()
	if loaded {
		var err error
		output, err = h.describe(doc)
		if err != nil {
			HTTPError(h, w, r, err)
			return
		}
	}

	Render(h, w, r, h.Global.Site, "index.html", output)
}

func (h *handler) describe(doc pluslife.TestDocument) (indexData, error) {
	samples := doc.TestData.Samples
	output := indexData{
		Loaded:      true,
		Summary:     pluslife.Summarize(doc),
		SampleCount: len(samples),
	}

	chStats, err := pluslife.ChannelStats(samples)
	if err != nil {
		return output, err
	}
	for i, s := range chStats {
		output.Channels = append(output.Channels, channelRow{
			Key:   s.Channel.Key(),
			Name:  s.Channel.Name(),
			Color: render.ChannelHex(i, len(chStats)),
			Stat:  s,
		})
	}

	opts := h.config.RenderOptions()
	opts.Format = render.SVG

	var svg bytes.Buffer
	err = render.Render(&svg, doc, opts)
	if errors.Is(err, render.ErrNoSamples) {
		return output, nil
	} else if err != nil {
		return output, err
	}
	output.ChartSVG = svg.String()

	return output, nil
}

func (h *handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.MaxUploadBytes)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		HTTPError(h, w, r, fmt.Errorf("no file received: %w", err), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if err := pluslife.CheckInput(header.Filename, header.Header.Get("Content-Type")); err != nil {
		HTTPError(h, w, r, err, http.StatusUnsupportedMediaType)
		return
	}

	doc, err := h.slot.Load(r.Context(), func(ctx context.Context) ([]byte, error) {
		return io.ReadAll(file)
	})
	if err != nil {
		HTTPError(h, w, r, err, uploadStatus(err))
		return
	}

	h.log.Printf("Loaded %s: %s, %d samples\n", header.Filename, pluslife.Summarize(doc), len(doc.TestData.Samples))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func uploadStatus(err error) int {
	if pluslife.Alert(err) != "" {
		return http.StatusBadRequest
	}
	if errors.Is(err, docslot.ErrSuperseded) {
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

func (h *handler) Clear(w http.ResponseWriter, r *http.Request) {
	h.slot.Clear()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *handler) Chart(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		HTTPError(h, w, r, err, http.StatusNotFound)
		return
	}

	doc, loaded := h.slot.Current()
	if !loaded {
		HTTPError(h, w, r, fmt.Errorf("no document loaded"), http.StatusNotFound)
		return
	}

	opts := h.config.RenderOptions()
	opts.Format = format

	var buf bytes.Buffer
	if err := render.Render(&buf, doc, opts); errors.Is(err, render.ErrNoSamples) {
		HTTPError(h, w, r, err, http.StatusNotFound)
		return
	} else if err != nil {
		HTTPError(h, w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Println(r.URL.Path, err)
	}
}

type channelJSON struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type documentJSON struct {
	TestType        string              `json:"testType"`
	DetectionResult float64             `json:"detectionResult"`
	Verdict         string              `json:"verdict"`
	Channels        []channelJSON       `json:"channels"`
	Rows            []pluslife.PivotRow `json:"rows"`
}

// Document serves the current document's pivoted rows and channel list, the
// data behind the page's chart.
func (h *handler) Document(w http.ResponseWriter, r *http.Request) {
	doc, loaded := h.slot.Current()
	if !loaded {
		JSONError(h, w, r, fmt.Errorf("no document loaded"), http.StatusNotFound)
		return
	}

	samples := doc.TestData.Samples
	channels := pluslife.Channels(samples)

	output := documentJSON{
		TestType:        doc.TestType,
		DetectionResult: doc.TestResult.DetectionResult,
		Verdict:         pluslife.Translate(doc.TestResult.DetectionResult).Label,
		Channels:        make([]channelJSON, 0, len(channels)),
		Rows:            pluslife.Pivot(samples),
	}
	for i, ch := range channels {
		output.Channels = append(output.Channels, channelJSON{
			Key:   ch.Key(),
			Name:  ch.Name(),
			Color: render.ChannelHex(i, len(channels)),
		})
	}

	renderJSON(h, w, r, output)
}

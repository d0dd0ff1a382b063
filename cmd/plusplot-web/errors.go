package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gacevedo/virus-sucks-plotter/pluslife"
)

func JSONError(h *handler, w http.ResponseWriter, r *http.Request, err error, code ...int) {
	w.Header().Set("Content-Type", "application/json")
	unifiedError(h, w, r, err, code...)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(struct {
		Success bool
		Message string
	}{
		false,
		err.Error(),
	})
}

// HTTPError shows the error page. Ingestion failures get their fixed user
// message; anything else shows the error text.
func HTTPError(h *handler, w http.ResponseWriter, r *http.Request, err error, code ...int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	usedCode := unifiedError(h, w, r, err, code...)

	message := pluslife.Alert(err)
	if message == "" {
		message = err.Error()
	}

	output := struct {
		StatusCode     int
		StatusCodeText string
		Message        string
		Error          string
	}{
		StatusCode:     usedCode,
		StatusCodeText: http.StatusText(usedCode),
		Message:        message,
		Error:          err.Error(),
	}

	// Built like Render(), but not calling it, so a template failure cannot
	// recurse back here.
	page := Page{
		Title:  "Error",
		Site:   h.Global.Site,
		Assets: h.Assets(),
		Data:   output,
	}

	t, tplErr := h.Template("error.html")
	if tplErr == nil {
		tplErr = t.Execute(w, page)
	}
	if tplErr != nil {
		fmt.Fprintf(w, "Error (%d) (%v) with %+v", output.StatusCode, tplErr, page)
	}
}

func unifiedError(h *handler, w http.ResponseWriter, r *http.Request, err error, code ...int) int {
	usedCode := http.StatusInternalServerError
	if len(code) > 0 {
		usedCode = code[0]
	}
	w.WriteHeader(usedCode)
	h.log.Println(r.Host, r.URL.Path, ":", usedCode, err)

	return usedCode
}

package main

import (
	"encoding/json"
	"net/http"
)

type Page struct {
	Title  string
	Site   string
	Assets string
	Data   interface{}
}

func Render(h *handler, w http.ResponseWriter, r *http.Request, title string, tpl string, data interface{}) {
	page := Page{
		Title:  title,
		Site:   h.Global.Site,
		Assets: h.Assets(),
		Data:   data,
	}

	renderHTML(h, w, r, tpl, page)
}

func renderJSON(h *handler, w http.ResponseWriter, r *http.Request, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Println(r.URL.Path, err)
	}
}

func renderHTML(h *handler, w http.ResponseWriter, r *http.Request, tpl string, page Page) {
	t, err := h.Template(tpl)
	if err != nil {
		HTTPError(h, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, page); err != nil {
		h.log.Println(r.URL.Path, err)
	}
}

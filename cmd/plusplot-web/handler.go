package main

import (
	"embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/gorilla/mux"
)

//go:embed all:templates
var embeddedTemplates embed.FS

const BaseFilename = "_base.html"

type handler struct {
	*Global

	router *mux.Router

	// Cached values / do not use directly.
	assets *string

	// Mutex protected values
	mu       sync.RWMutex
	template map[string]*template.Template
}

func (h *handler) Assets() string {
	if h.assets == nil {
		glyphs := fmt.Sprintf("/%s/", RandHeteroglyphs(10))
		h.assets = &glyphs
	}

	return *h.assets
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"noescape": func(s string) template.HTML {
			return template.HTML(s)
		},
		"css": func(s string) template.CSS {
			return template.CSS(s)
		},
	}
}

// Template returns the named page template layered over the _*.html partials,
// parsing and caching it on first use.
func (h *handler) Template(templateFilename string) (*template.Template, error) {
	h.mu.RLock()
	tpl, ok := h.template[templateFilename]
	h.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if tpl, ok := h.template[templateFilename]; ok {
		return tpl, nil
	}

	if h.template == nil {
		h.Global.log.Println("Initializing HTML templates")
		h.template = make(map[string]*template.Template)
	}

	base, err := template.New(BaseFilename).Funcs(templateFuncs()).ParseFS(embeddedTemplates, "templates/_*.html")
	if err != nil {
		return nil, fmt.Errorf("handler.go:Template: %w", err)
	}

	h.Global.log.Println("Initializing HTML template for", templateFilename)
	tpl, err = base.ParseFS(embeddedTemplates, "templates/"+templateFilename)
	if err != nil {
		return nil, fmt.Errorf("handler.go:Template: %w", err)
	}
	h.template[templateFilename] = tpl

	return tpl, nil
}

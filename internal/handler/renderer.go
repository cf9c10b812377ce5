package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
)

// Renderer manages template parsing and rendering with isolated
// per-page template sets cloned from a shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses the layout and every page template under
// templatesDir.
func NewRenderer(templatesDir string) (*Renderer, error) {
	templates := make(map[string]*template.Template)

	layoutPath := filepath.Join(templatesDir, "layout.html")
	baseTmpl, err := template.New("base").Funcs(TemplateFuncs()).ParseFiles(layoutPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages, err := filepath.Glob(filepath.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob templates: %w", err)
	}

	for _, page := range pages {
		// Skip layout itself
		if filepath.Base(page) == "layout.html" {
			continue
		}

		pageTmpl, err := baseTmpl.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone template for %s: %w", page, err)
		}

		pageTmpl, err = pageTmpl.ParseFiles(page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", page, err)
		}

		pageName := filepath.Base(page)
		pageName = pageName[:len(pageName)-len(filepath.Ext(pageName))]
		templates[pageName] = pageTmpl
	}

	if len(templates) == 0 {
		return nil, fmt.Errorf("no page templates found in %s", templatesDir)
	}

	return &Renderer{templates: templates}, nil
}

// Render executes the named page template into a buffer first so a
// template failure never produces a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, name string, data interface{}) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to execute template %q: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

// RenderHTTP renders a page and converts failures into a 500.
func (r *Renderer) RenderHTTP(w http.ResponseWriter, req *http.Request, name string, data interface{}) {
	if err := r.Render(w, name, data); err != nil {
		ErrorResponse(w, req, err)
	}
}

package handler

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemplates(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	layout := `{{define "layout"}}<html><body>{{template "content" .}}</body></html>{{end}}`
	page := `{{define "content"}}Hello {{.Name}}, year {{year}}{{end}}`

	if err := os.WriteFile(filepath.Join(dir, "layout.html"), []byte(layout), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "greeting.html"), []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer(writeTemplates(t))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	rec := httptest.NewRecorder()
	if err := r.Render(rec, "greeting", map[string]string{"Name": "World"}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Hello World") {
		t.Errorf("body missing greeting: %q", body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer(writeTemplates(t))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	rec := httptest.NewRecorder()
	if err := r.Render(rec, "missing", nil); err == nil {
		t.Error("expected error for unknown template")
	}
	if rec.Body.Len() != 0 {
		t.Error("failed render must not write a partial response")
	}
}

func TestRenderer_EmptyDir(t *testing.T) {
	dir := t.TempDir()
	layout := `{{define "layout"}}{{end}}`
	if err := os.WriteFile(filepath.Join(dir, "layout.html"), []byte(layout), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewRenderer(dir); err == nil {
		t.Error("expected error when no page templates exist")
	}
}

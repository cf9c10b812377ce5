package handler

import (
	"html/template"
	"strings"
	"time"
)

// TemplateFuncs returns a FuncMap with custom template functions
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"year": func() int {
			return time.Now().Year()
		},
		"join": func(items []string, sep string) string {
			return strings.Join(items, sep)
		},
		"lower": strings.ToLower,
	}
}

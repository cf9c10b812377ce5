// Package site serves the server-rendered pages.
package site

import (
	"net/http"

	"github.com/vikrantwiz02/portfolio/internal/handler"
	"github.com/vikrantwiz02/portfolio/internal/portfolio"
)

// HomeHandler renders the single portfolio page.
type HomeHandler struct {
	renderer *handler.Renderer
	content  portfolio.Content
}

func NewHomeHandler(renderer *handler.Renderer, content portfolio.Content) *HomeHandler {
	return &HomeHandler{renderer: renderer, content: content}
}

func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// ServeMux treats "/" as a catch-all; anything else under it is a 404.
	if r.URL.Path != "/" {
		handler.NotFoundResponse(w, r)
		return
	}

	h.renderer.RenderHTTP(w, r, "home", map[string]interface{}{
		"Title":        h.content.Profile.Name,
		"Profile":      h.content.Profile,
		"Projects":     h.content.Projects,
		"Achievements": h.content.Achievements,
		"Badges":       h.content.Badges,
	})
}

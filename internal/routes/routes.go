// Package routes wires handlers, middleware, and the router together.
package routes

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/vikrantwiz02/portfolio/internal"
	"github.com/vikrantwiz02/portfolio/internal/domain"
	"github.com/vikrantwiz02/portfolio/internal/handler"
	"github.com/vikrantwiz02/portfolio/internal/handler/api"
	"github.com/vikrantwiz02/portfolio/internal/handler/site"
	"github.com/vikrantwiz02/portfolio/internal/middleware"
	"github.com/vikrantwiz02/portfolio/internal/portfolio"
	"github.com/vikrantwiz02/portfolio/internal/router"
)

// Deps carries everything route registration needs.
type Deps struct {
	Config   *internal.Config
	Logger   *slog.Logger
	Renderer *handler.Renderer
	Contact  domain.ContactService
	Metrics  *middleware.Metrics
	Content  portfolio.Content
}

// New builds the router with the full middleware stack and all routes
// registered.
func New(deps Deps) *router.Router {
	r := router.New(
		router.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.WithClientIP(),
		middleware.WithRequestLogger(deps.Logger),
		deps.Metrics.Middleware,
		middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig()),
		middleware.MaxBodySize(),
	)

	home := site.NewHomeHandler(deps.Renderer, deps.Content)
	contact := api.NewContactHandler(deps.Contact)
	contactTest := api.NewContactTestHandler(deps.Contact)

	r.Get("/", home.ServeHTTP)
	r.Static("/static", filepath.Join(deps.Config.WebDir, "static"))

	r.Get("/health", healthHandler)
	r.Handle(http.MethodGet, "/metrics", deps.Metrics.Handler())

	// The contact endpoint gets a tighter body limit and per-IP rate
	// limiting on top of the global stack.
	r.Handle(http.MethodPost, "/api/contact", contact,
		middleware.RateLimit(middleware.StrictRateLimiterConfig()),
		middleware.MaxBodySize(middleware.FormMaxBodySize),
		middleware.Timeout(middleware.SubmitTimeout),
	)

	r.Handle(http.MethodPost, "/api/contact/test", contactTest,
		middleware.AdminToken(deps.Config.AdminToken),
	)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	handler.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

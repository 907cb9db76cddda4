package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nordhagen/raido/internal/routeservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *routeservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Routing decisions.
	r.Post("/route/link", h.RouteLink)
	r.Post("/route/click", h.RouteClick)

	// Link resolution and search.
	r.Get("/resolve", h.Resolve)
	r.Get("/search", h.Search)

	// Ribbon-backed note operations.
	r.Post("/notes/daily", h.DailyNote)
	r.Post("/notes/unique", h.UniqueNote)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}

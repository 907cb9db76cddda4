package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nordhagen/raido/internal/index"
	"github.com/nordhagen/raido/internal/pane"
	"github.com/nordhagen/raido/internal/router"
	"github.com/nordhagen/raido/internal/routeservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *routeservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *routeservice.Service) *Handler {
	return &Handler{svc: svc}
}

// RouteLink handles POST /route/link: the pane-reuse decision for one
// link navigation, computed over the snapshot supplied in the request.
func (h *Handler) RouteLink(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req RouteLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	out := h.svc.RouteLink(r.Context(), router.LinkIntent{
		LinkText:   req.LinkText,
		SourcePath: req.SourcePath,
		NewPane:    req.NewPane,
	}, pane.Snapshot{Panes: req.Panes})
	writeJSON(w, http.StatusOK, out)
}

// RouteClick handles POST /route/click.
func (h *Handler) RouteClick(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req RouteClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Event == nil {
		writeJSON(w, http.StatusBadRequest, errorBody("event is required"))
		return
	}

	out := h.svc.RouteClick(r.Context(), req.Event, pane.Snapshot{Panes: req.Panes})
	writeJSON(w, http.StatusOK, out)
}

// Resolve handles GET /resolve.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("link")
	if link == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'link' is required"))
		return
	}
	path, err := h.svc.ResolveLink(r.Context(), link)
	if err != nil {
		if routeservice.IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("resolve failed", slog.String("link", link), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, ResolveResponse{Path: path})
}

// Search handles GET /search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if results == nil {
		results = []index.SearchResult{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// DailyNote handles POST /notes/daily: create or reuse today's daily note.
func (h *Handler) DailyNote(w http.ResponseWriter, r *http.Request) {
	path, created, err := h.svc.EnsureDailyNote(r.Context())
	if err != nil {
		slog.Error("daily note failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, NoteCreatedResponse{Path: path, Created: created})
}

// UniqueNote handles POST /notes/unique.
func (h *Handler) UniqueNote(w http.ResponseWriter, r *http.Request) {
	path, err := h.svc.CreateUniqueNote(r.Context())
	if err != nil {
		slog.Error("unique note failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusCreated, NoteCreatedResponse{Path: path, Created: true})
}

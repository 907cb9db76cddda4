package api

import (
	"github.com/nordhagen/raido/internal/event"
	"github.com/nordhagen/raido/internal/index"
	"github.com/nordhagen/raido/internal/pane"
	"github.com/nordhagen/raido/internal/routeservice"
)

// RouteLinkRequest is the body for POST /route/link. The pane snapshot
// travels with every request: raido keeps no pane state between events.
type RouteLinkRequest struct {
	LinkText   string      `json:"link_text"`
	SourcePath string      `json:"source_path"`
	NewPane    *bool       `json:"new_pane,omitempty"`
	Panes      []pane.Pane `json:"panes"`
}

// RouteLinkResponse is the routing decision for one link.
type RouteLinkResponse = routeservice.LinkRoute

// RouteClickRequest is the body for POST /route/click.
type RouteClickRequest struct {
	Event *event.Pointer `json:"event"`
	Panes []pane.Pane    `json:"panes"`
}

// RouteClickResponse is the directive the UI must execute.
type RouteClickResponse = routeservice.ClickDirective

// ResolveResponse is the body for GET /resolve.
type ResolveResponse struct {
	Path string `json:"path"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []index.SearchResult `json:"results"`
}

// NoteCreatedResponse is returned by the daily/unique note endpoints.
type NoteCreatedResponse struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

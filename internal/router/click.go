package router

import (
	"github.com/nordhagen/raido/internal/event"
	"github.com/nordhagen/raido/internal/pane"
	"github.com/nordhagen/raido/internal/uimap"
)

// Port is the host surface the click router drives. Implementations are
// expected to be best-effort: unknown pane IDs and absent primitives are
// silently ignored, never surfaced into the event pipeline.
type Port interface {
	// Panes returns the live pane snapshot.
	Panes() pane.Snapshot
	// SetActive asks the host to focus the given pane.
	SetActive(paneID string)
	// OpenLink invokes the host's open-link primitive directly.
	OpenLink(linkText, sourcePath string, newPane bool)
}

// ClickOutcome tells the dispatcher what to do with the original event.
type ClickOutcome struct {
	Kind Kind `json:"kind"`
	// Suppress stops the event from reaching the host's own handlers.
	Suppress bool `json:"suppress"`
	// Synthesize asks for a meta-modified copy of the event to be
	// re-dispatched on the same target.
	Synthesize bool `json:"synthesize"`
}

// Router is the capture-phase click handler. It classifies each click
// and either fully handles it or leaves it for the host.
type Router struct {
	table      uimap.Table
	reuseEmpty bool
	port       Port
}

// NewRouter creates a click router bound to the given host port.
func NewRouter(port Port, table uimap.Table, reuseEmpty bool) *Router {
	return &Router{table: table, reuseEmpty: reuseEmpty, port: port}
}

// HandleClick runs the classification and routing for one click.
//
// A click with any modifier held is never touched: that both preserves
// platform conventions (modifier-click opens in background) and stops
// synthesized meta-clicks from being suppressed and re-dispatched forever.
func (r *Router) HandleClick(ev *event.Pointer) ClickOutcome {
	if ev == nil || ev.HasModifier() {
		return ClickOutcome{Kind: Unhandled}
	}

	kind := Classify(ev.Target, r.table)
	switch kind {
	case NavFile:
		return r.routeNavFile(ev, kind)
	case DailyRibbon, UniqueRibbon, SearchResult:
		// Reuse the host's own handler: kill the plain click and replay
		// it with meta forced on, so the host opens a new pane itself.
		return ClickOutcome{Kind: kind, Suppress: true, Synthesize: true}
	default:
		return ClickOutcome{Kind: Unhandled}
	}
}

func (r *Router) routeNavFile(ev *event.Pointer, kind Kind) ClickOutcome {
	path := NavFilePath(ev.Target, r.table)
	if path == "" {
		return ClickOutcome{Kind: kind}
	}

	snap := r.port.Panes()

	matched := false
	for _, p := range snap.Panes {
		if p.FilePath == path {
			r.port.SetActive(p.ID)
			matched = true
			break
		}
	}

	if r.reuseEmpty {
		if empty, ok := snap.FirstEmpty(); ok {
			// The host's default click behavior will open the file into
			// the now-active blank pane; let the event through.
			r.port.SetActive(empty.ID)
			return ClickOutcome{Kind: kind}
		}
	}

	if !matched {
		r.port.OpenLink(path, path, true)
	}
	// Stopping propagation here might break something in the host's own
	// tree handling; accepted trade-off.
	return ClickOutcome{Kind: kind, Suppress: true}
}

// Package pane defines the host pane (leaf) model consumed by routing decisions.
package pane

// Well-known view types.
const (
	ViewMarkdown = "markdown"
	ViewEmpty    = "empty"
)

// Pane is one open content slot in the host UI. The host owns panes;
// raido only reads their state and asks the host to activate one.
type Pane struct {
	ID       string `json:"id"`
	ViewType string `json:"view_type"`
	FilePath string `json:"file_path,omitempty"`
}

// IsEmpty reports whether the pane is a blank slot.
func (p Pane) IsEmpty() bool {
	return p.ViewType == ViewEmpty
}

// Snapshot is the host's live pane set at the moment of one event.
// It is queried fresh per decision and never persisted.
type Snapshot struct {
	Panes []Pane `json:"panes"`
}

// OfType returns the panes whose view type equals viewType, in order.
func (s Snapshot) OfType(viewType string) []Pane {
	var out []Pane
	for _, p := range s.Panes {
		if p.ViewType == viewType {
			out = append(out, p)
		}
	}
	return out
}

// FirstEmpty returns the first blank pane and true, or a zero Pane and false.
func (s Snapshot) FirstEmpty() (Pane, bool) {
	for _, p := range s.Panes {
		if p.IsEmpty() {
			return p, true
		}
	}
	return Pane{}, false
}

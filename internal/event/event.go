// Package event models the slice of the host's UI event pipeline that
// routing needs: a clicked element, its ancestry, and pointer modifiers.
package event

// Element is a minimal view of one UI node: just enough to classify a
// click. The host integration builds these from its real widget tree.
type Element struct {
	Classes []string `json:"classes,omitempty"`
	Label   string   `json:"label,omitempty"` // accessible label
	Path    string   `json:"path,omitempty"`  // content path, when the node represents a file
	Parent  *Element `json:"parent,omitempty"`
}

// HasClass reports whether the element carries any of the given class names.
func (e *Element) HasClass(names ...string) bool {
	if e == nil {
		return false
	}
	for _, c := range e.Classes {
		for _, n := range names {
			if c == n {
				return true
			}
		}
	}
	return false
}

// Closest returns the element itself or its nearest ancestor for which
// match returns true, or nil.
func (e *Element) Closest(match func(*Element) bool) *Element {
	for n := e; n != nil; n = n.Parent {
		if match(n) {
			return n
		}
	}
	return nil
}

// Pointer is one pointer-click event as delivered to the capture phase.
type Pointer struct {
	Target     *Element `json:"target"`
	Shift      bool     `json:"shift,omitempty"`
	Ctrl       bool     `json:"ctrl,omitempty"`
	Meta       bool     `json:"meta,omitempty"`
	Alt        bool     `json:"alt,omitempty"`
	Bubbles    bool     `json:"bubbles,omitempty"`
	Cancelable bool     `json:"cancelable,omitempty"`
}

// HasModifier reports whether any platform modifier key was held.
func (p *Pointer) HasModifier() bool {
	return p.Shift || p.Ctrl || p.Meta || p.Alt
}

// Synthesize returns a copy of the event targeting the same element,
// with identical bubbling flags and the meta modifier forced on. This is
// how a handled click is re-dispatched so the host's own handler treats
// it as a force-new-pane click.
func (p *Pointer) Synthesize() *Pointer {
	return &Pointer{
		Target:     p.Target,
		Meta:       true,
		Bubbles:    p.Bubbles,
		Cancelable: p.Cancelable,
	}
}

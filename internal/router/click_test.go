package router

import (
	"testing"

	"github.com/nordhagen/raido/internal/event"
	"github.com/nordhagen/raido/internal/pane"
	"github.com/nordhagen/raido/internal/uimap"
)

type openCall struct {
	link, source string
	newPane      bool
}

// fakePort records the host calls a routing decision makes.
type fakePort struct {
	snap      pane.Snapshot
	activated []string
	opened    []openCall
}

func (f *fakePort) Panes() pane.Snapshot { return f.snap }
func (f *fakePort) SetActive(id string)  { f.activated = append(f.activated, id) }
func (f *fakePort) OpenLink(link, source string, newPane bool) {
	f.opened = append(f.opened, openCall{link, source, newPane})
}

func navFileTarget(path string) *event.Element {
	return &event.Element{
		Classes: []string{"nav-file-title-content"},
		Parent: &event.Element{
			Classes: []string{"nav-file-title"},
			Path:    path,
			Parent:  &event.Element{Classes: []string{"nav-file"}},
		},
	}
}

func newTestRouter(port *fakePort) *Router {
	return NewRouter(port, uimap.Default(), true)
}

func TestClassifyPriorityOrder(t *testing.T) {
	tbl := uimap.Default()

	cases := []struct {
		name string
		el   *event.Element
		want Kind
	}{
		{"nav file", &event.Element{Classes: []string{"nav-file-title"}}, NavFile},
		{"daily ribbon", &event.Element{Classes: []string{"side-dock-ribbon-action"}, Label: tbl.DailyNoteLabel}, DailyRibbon},
		{"unique ribbon", &event.Element{Classes: []string{"side-dock-ribbon-action"}, Label: tbl.UniqueNoteLabel}, UniqueRibbon},
		{"search result", &event.Element{Classes: []string{"search-result-file-match"}}, SearchResult},
		{"other ribbon action", &event.Element{Classes: []string{"side-dock-ribbon-action"}, Label: "Open graph view"}, Unhandled},
		{"plain element", &event.Element{Classes: []string{"cm-line"}}, Unhandled},
		{"nil target", nil, Unhandled},
	}
	for _, c := range cases {
		if got := Classify(c.el, tbl); got != c.want {
			t.Errorf("%s: Classify = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestHandleClick_ModifierGuard(t *testing.T) {
	port := &fakePort{snap: pane.Snapshot{Panes: []pane.Pane{
		{ID: "a", ViewType: pane.ViewMarkdown, FilePath: "Notes/X.md"},
	}}}
	r := newTestRouter(port)

	out := r.HandleClick(&event.Pointer{Target: navFileTarget("Notes/X.md"), Ctrl: true})
	if out.Suppress || out.Synthesize || out.Kind != Unhandled {
		t.Errorf("modifier click must pass through untouched, got %+v", out)
	}
	if len(port.activated) != 0 || len(port.opened) != 0 {
		t.Error("modifier click must not touch host state")
	}
}

func TestHandleClick_NavFileAlreadyOpenNoEmptyPane(t *testing.T) {
	port := &fakePort{snap: pane.Snapshot{Panes: []pane.Pane{
		{ID: "a", ViewType: pane.ViewMarkdown, FilePath: "Notes/X.md"},
		{ID: "b", ViewType: pane.ViewMarkdown, FilePath: "Other.md"},
	}}}
	r := newTestRouter(port)

	out := r.HandleClick(&event.Pointer{Target: navFileTarget("Notes/X.md")})
	if !out.Suppress {
		t.Error("matched nav click with no blank pane must be suppressed")
	}
	if out.Synthesize {
		t.Error("nav clicks never synthesize")
	}
	if len(port.activated) != 1 || port.activated[0] != "a" {
		t.Errorf("activated = %v, want [a]", port.activated)
	}
	if len(port.opened) != 0 {
		t.Errorf("no extra navigation expected, got %v", port.opened)
	}
}

func TestHandleClick_NavFileReusesFirstEmptyPane(t *testing.T) {
	port := &fakePort{snap: pane.Snapshot{Panes: []pane.Pane{
		{ID: "a", ViewType: pane.ViewMarkdown, FilePath: "Notes/X.md"},
		{ID: "e1", ViewType: pane.ViewEmpty},
		{ID: "e2", ViewType: pane.ViewEmpty},
	}}}
	r := newTestRouter(port)

	out := r.HandleClick(&event.Pointer{Target: navFileTarget("Notes/X.md")})
	if out.Suppress {
		t.Error("blank-pane reuse relies on the host's default handling; must not suppress")
	}
	// Matched pane is activated first, then the first blank pane wins focus.
	want := []string{"a", "e1"}
	if len(port.activated) != 2 || port.activated[0] != want[0] || port.activated[1] != want[1] {
		t.Errorf("activated = %v, want %v", port.activated, want)
	}
}

func TestHandleClick_NavFileUnopenedOpensNewPane(t *testing.T) {
	port := &fakePort{snap: pane.Snapshot{Panes: []pane.Pane{
		{ID: "a", ViewType: pane.ViewMarkdown, FilePath: "Other.md"},
	}}}
	r := newTestRouter(port)

	out := r.HandleClick(&event.Pointer{Target: navFileTarget("Notes/X.md")})
	if !out.Suppress {
		t.Error("directly routed nav click must be suppressed")
	}
	if len(port.opened) != 1 {
		t.Fatalf("opened = %v, want one call", port.opened)
	}
	if c := port.opened[0]; c.link != "Notes/X.md" || c.source != "Notes/X.md" || !c.newPane {
		t.Errorf("open call = %+v, want path as both args with new pane forced", c)
	}
	if len(port.activated) != 0 {
		t.Errorf("nothing matched, nothing should be activated: %v", port.activated)
	}
}

func TestHandleClick_NavFileWithoutPathIsNoop(t *testing.T) {
	port := &fakePort{}
	r := newTestRouter(port)

	out := r.HandleClick(&event.Pointer{Target: &event.Element{Classes: []string{"nav-file"}}})
	if out.Suppress || len(port.opened) != 0 || len(port.activated) != 0 {
		t.Errorf("missing path attribute must degrade to a no-op, got %+v", out)
	}
}

func TestHandleClick_SearchResultSynthesizes(t *testing.T) {
	port := &fakePort{}
	r := newTestRouter(port)

	out := r.HandleClick(&event.Pointer{Target: &event.Element{Classes: []string{"search-result-file-title"}}, Bubbles: true, Cancelable: true})
	if !out.Suppress || !out.Synthesize {
		t.Errorf("search-result click must suppress and synthesize, got %+v", out)
	}
	if len(port.activated) != 0 || len(port.opened) != 0 {
		t.Error("ribbon/search routing must not touch panes directly")
	}
}

func TestHandleClick_RibbonActions(t *testing.T) {
	tbl := uimap.Default()
	for _, label := range []string{tbl.DailyNoteLabel, tbl.UniqueNoteLabel} {
		port := &fakePort{}
		r := newTestRouter(port)
		out := r.HandleClick(&event.Pointer{Target: &event.Element{
			Classes: []string{tbl.RibbonActionClass},
			Label:   label,
		}})
		if !out.Suppress || !out.Synthesize {
			t.Errorf("ribbon %q: got %+v", label, out)
		}
	}
}

package router

import (
	"github.com/nordhagen/raido/internal/event"
	"github.com/nordhagen/raido/internal/uimap"
)

// Kind is the interaction category of a click target.
type Kind int

const (
	Unhandled Kind = iota
	NavFile
	DailyRibbon
	UniqueRibbon
	SearchResult
)

// String returns the kind's wire name.
func (k Kind) String() string {
	switch k {
	case NavFile:
		return "nav_file"
	case DailyRibbon:
		return "daily_ribbon"
	case UniqueRibbon:
		return "unique_ribbon"
	case SearchResult:
		return "search_result"
	default:
		return "unhandled"
	}
}

// Classify maps a click target to an interaction kind using the boundary
// table. Categories are checked in fixed priority order; first match wins.
func Classify(target *event.Element, t uimap.Table) Kind {
	if target == nil {
		return Unhandled
	}
	switch {
	case target.HasClass(t.NavFileClasses...):
		return NavFile
	case target.HasClass(t.RibbonActionClass) && target.Label == t.DailyNoteLabel:
		return DailyRibbon
	case target.HasClass(t.RibbonActionClass) && target.Label == t.UniqueNoteLabel:
		return UniqueRibbon
	case target.HasClass(t.SearchResultClasses...):
		return SearchResult
	default:
		return Unhandled
	}
}

// NavFilePath resolves the content path of a navigation-tree click: the
// closest ancestor carrying a nav-file marker that also exposes a path.
// Empty result means the click cannot be routed and must be left alone.
func NavFilePath(target *event.Element, t uimap.Table) string {
	row := target.Closest(func(e *event.Element) bool {
		return e.HasClass(t.NavFileClasses...) && e.Path != ""
	})
	if row == nil {
		return ""
	}
	return row.Path
}

// Package router implements the pane-reuse decision logic: given a
// navigation intent and the host's live pane snapshot, decide whether to
// activate an existing pane, reuse a blank one, or force a new pane.
// All decisions are pure functions over the snapshot; the host state is
// mutated only by the adapters in internal/host.
package router

import (
	"strings"

	"github.com/nordhagen/raido/internal/pane"
)

// MatchOrder selects which pane wins when several show the link target.
type MatchOrder string

const (
	// MatchLast scans every pane and activates the last match. This is
	// the reference behavior and the default.
	MatchLast MatchOrder = "last"
	// MatchFirst stops at the first matching pane.
	MatchFirst MatchOrder = "first"
)

// LinkIntent describes one "open link text" request.
type LinkIntent struct {
	LinkText   string `json:"link_text"`
	SourcePath string `json:"source_path"`
	// NewPane is the caller's original new-pane flag; nil means the
	// caller expressed no preference (treated as false).
	NewPane *bool `json:"new_pane,omitempty"`
}

// LinkDecision is the outcome of DecideLink.
type LinkDecision struct {
	// SameFile is true when the link targets the source document itself
	// (empty file component, or component + ".md" equals the source).
	SameFile bool `json:"same_file"`
	// AlreadyOpen is true when an open pane matched the link target.
	AlreadyOpen bool `json:"already_open"`
	// ActivatePane is the ID of the pane to activate before delegating,
	// or empty when no pane matched.
	ActivatePane string `json:"activate_pane,omitempty"`
	// NewPane is the effective flag to pass to the open-link primitive.
	NewPane bool `json:"new_pane"`
}

// FileComponent returns the portion of a link before the first '#'.
// An empty result means the link targets the current file.
func FileComponent(linkText string) string {
	if i := strings.Index(linkText, "#"); i >= 0 {
		return linkText[:i]
	}
	return linkText
}

// paneShowsTarget reports whether p displays the linked file. Markdown
// panes match on component + ".md"; every other view type matches the
// raw component (images, PDFs and the like keep their extension in the
// link text).
func paneShowsTarget(p pane.Pane, fileComponent string) bool {
	if p.FilePath == "" {
		return false
	}
	if p.ViewType == pane.ViewMarkdown {
		return strings.HasSuffix(p.FilePath, fileComponent+".md")
	}
	return strings.HasSuffix(p.FilePath, fileComponent)
}

// DecideLink computes the pane-reuse decision for one link navigation.
//
// Decision table for the effective new-pane flag:
//
//	same-file              -> caller's flag (false when absent), so
//	                          modifier-clicks on heading/block anchors
//	                          keep working
//	already open elsewhere -> false; the matched pane is activated and
//	                          the primitive only refines scroll position
//	not open anywhere      -> true
func DecideLink(snap pane.Snapshot, intent LinkIntent, order MatchOrder) LinkDecision {
	d := LinkDecision{}

	component := FileComponent(intent.LinkText)
	d.SameFile = component == "" || component+".md" == intent.SourcePath

	if !d.SameFile {
		for _, p := range snap.Panes {
			if !paneShowsTarget(p, component) {
				continue
			}
			d.AlreadyOpen = true
			d.ActivatePane = p.ID
			if order == MatchFirst {
				break
			}
		}
	}

	switch {
	case d.SameFile:
		d.NewPane = intent.NewPane != nil && *intent.NewPane
	case d.AlreadyOpen:
		d.NewPane = false
	default:
		d.NewPane = true
	}
	return d
}

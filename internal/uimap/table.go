// Package uimap isolates the presentation-attribute matching table used
// to recognise navigation-tree rows, ribbon actions, and search results.
// The table is a plain value so host integrations can swap it out or
// override it from configuration.
package uimap

// Table maps host UI class names and accessible labels to interaction kinds.
type Table struct {
	NavFileClasses      []string `yaml:"nav_file_classes"`
	RibbonActionClass   string   `yaml:"ribbon_action_class"`
	DailyNoteLabel      string   `yaml:"daily_note_label"`
	UniqueNoteLabel     string   `yaml:"unique_note_label"`
	SearchResultClasses []string `yaml:"search_result_classes"`
}

// Default returns the table matching the reference host UI.
func Default() Table {
	return Table{
		NavFileClasses: []string{
			"nav-file",
			"nav-file-title",
			"nav-file-title-content",
		},
		RibbonActionClass: "side-dock-ribbon-action",
		DailyNoteLabel:    "Open today's daily note",
		UniqueNoteLabel:   "Create new unique note",
		SearchResultClasses: []string{
			"search-result",
			"search-result-file-title",
			"search-result-file-match",
			"search-result-file-matches",
		},
	}
}

// Merge overlays non-zero fields of o onto t and returns the result.
// Used to apply config overrides on top of the defaults.
func (t Table) Merge(o Table) Table {
	if len(o.NavFileClasses) > 0 {
		t.NavFileClasses = o.NavFileClasses
	}
	if o.RibbonActionClass != "" {
		t.RibbonActionClass = o.RibbonActionClass
	}
	if o.DailyNoteLabel != "" {
		t.DailyNoteLabel = o.DailyNoteLabel
	}
	if o.UniqueNoteLabel != "" {
		t.UniqueNoteLabel = o.UniqueNoteLabel
	}
	if len(o.SearchResultClasses) > 0 {
		t.SearchResultClasses = o.SearchResultClasses
	}
	return t
}

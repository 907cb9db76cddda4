//go:build sqlite_fts5

package index

import (
	"testing"
	"time"
)

func TestFTSSearchRankingAndSnippets(t *testing.T) {
	db := testDB(t)

	notes := []struct{ path, title, body string }{
		{"routing.md", "Routing", "Pane routing decides where links open."},
		{"daily/2026-08-26.md", "Daily", "Nothing about panes here."},
		{"links.md", "Links", "Wikilinks connect notes. Routing reuses panes."},
	}
	for _, n := range notes {
		if err := db.UpsertNote(NoteRow{Path: n.path, Title: n.title, Checksum: "x", UpdatedAt: time.Now()}, n.body); err != nil {
			t.Fatalf("UpsertNote(%s): %v", n.path, err)
		}
	}

	results, err := db.Search("routing", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for _, r := range results {
		if r.Snippet == "" {
			t.Errorf("missing snippet for %s", r.Path)
		}
	}
}

func TestFTSDeleteRemovesFromSearch(t *testing.T) {
	db := testDB(t)
	if err := db.UpsertNote(NoteRow{Path: "tmp.md", Title: "Temp", Checksum: "x", UpdatedAt: time.Now()}, "ephemeral content"); err != nil {
		t.Fatal(err)
	}
	if err := db.DeleteNote("tmp.md"); err != nil {
		t.Fatal(err)
	}
	results, err := db.Search("ephemeral", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("deleted note still searchable: %v", results)
	}
}

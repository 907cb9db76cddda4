package index

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/nordhagen/raido/internal/apperr"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "raido-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func upsert(t *testing.T, db *DB, path, title, checksum, body string) {
	t.Helper()
	err := db.UpsertNote(NoteRow{Path: path, Title: title, Checksum: checksum, UpdatedAt: time.Now()}, body)
	if err != nil {
		t.Fatalf("UpsertNote(%s): %v", path, err)
	}
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM notes`).Scan(&count); err != nil {
		t.Fatalf("notes table missing: %v", err)
	}
}

func TestUpsertAndGetChecksum(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "hello.md", "Hello World", "abc123", "This is a hello world note.")

	cs, err := db.GetChecksum("hello.md")
	if err != nil {
		t.Fatalf("GetChecksum: %v", err)
	}
	if cs != "abc123" {
		t.Errorf("checksum = %q, want %q", cs, "abc123")
	}

	// Upsert replaces in place.
	upsert(t, db, "hello.md", "Hello World", "def456", "updated")
	cs, _ = db.GetChecksum("hello.md")
	if cs != "def456" {
		t.Errorf("checksum after update = %q", cs)
	}
}

func TestDeleteNote(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "gone.md", "Gone", "1", "x")
	if err := db.DeleteNote("gone.md"); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	paths, err := db.AllPaths()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := paths["gone.md"]; ok {
		t.Error("deleted note still present")
	}
}

func TestAllChecksums(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "a.md", "A", "1", "")
	upsert(t, db, "b.md", "B", "2", "")

	cs, err := db.AllChecksums()
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 2 || cs["a.md"] != "1" || cs["b.md"] != "2" {
		t.Errorf("checksums = %v", cs)
	}
}

func TestResolveExactMatch(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "Notes/B.md", "B", "1", "")

	got, err := db.Resolve("Notes/B")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "Notes/B.md" {
		t.Errorf("resolved = %q", got)
	}
}

func TestResolveBareNameAcrossFolders(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "deep/nested/B.md", "B", "1", "")
	upsert(t, db, "top/B.md", "B", "2", "")

	// Shallowest path wins.
	got, err := db.Resolve("B")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "top/B.md" {
		t.Errorf("resolved = %q, want top/B.md", got)
	}
}

func TestResolveRequiresSlashAlignedSuffix(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "notAB.md", "x", "1", "")

	if _, err := db.Resolve("B"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("partial-name suffix must not match, got %v", err)
	}
}

func TestResolveNotFound(t *testing.T) {
	db := testDB(t)
	if _, err := db.Resolve("missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := db.Resolve(""); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("empty component: err = %v, want ErrNotFound", err)
	}
}

func TestSearchFindsBody(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "hello.md", "Hello", "1", "the quick brown fox")
	upsert(t, db, "other.md", "Other", "2", "nothing relevant")

	results, err := db.Search("quick", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Path != "hello.md" {
		t.Errorf("results = %v", results)
	}
}

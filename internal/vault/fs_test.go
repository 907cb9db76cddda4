package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestFS(t *testing.T) (*FS, string) {
	t.Helper()
	dir := t.TempDir()
	f, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return f, dir
}

func TestWriteReadRoundTrip(t *testing.T) {
	f, _ := newTestFS(t)

	if err := f.Write("daily/2026-08-26.md", []byte("# Today")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := f.Read("daily/2026-08-26.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "# Today" {
		t.Errorf("content = %q", data)
	}
	if !f.Exists("daily/2026-08-26.md") {
		t.Error("Exists should report written file")
	}
	if f.Exists("daily") {
		t.Error("Exists must be false for directories")
	}
}

func TestListOnlyMarkdown(t *testing.T) {
	f, dir := newTestFS(t)

	if err := f.Write("a.md", []byte("a")); err != nil {
		t.Fatal(err)
	}
	if err := f.Write("sub/b.md", []byte("b")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "img.png"), []byte{1}, 0o644); err != nil {
		t.Fatal(err)
	}

	metas, err := f.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("len = %d, want 2 (.md only)", len(metas))
	}
	for _, m := range metas {
		if m.Checksum == "" {
			t.Errorf("missing checksum for %s", m.Path)
		}
	}
}

func TestPathTraversalRejected(t *testing.T) {
	f, _ := newTestFS(t)

	if _, err := f.Read("../outside.md"); err == nil {
		t.Error("read outside vault must fail")
	}
	if err := f.Write("../outside.md", []byte("x")); err == nil {
		t.Error("write outside vault must fail")
	}
	if _, err := f.Read("/etc/passwd"); err == nil {
		t.Error("absolute path must fail")
	}
	if f.Exists("../outside.md") {
		t.Error("Exists must not escape the root")
	}
}

func TestNewFSRejectsMissingRoot(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("missing root must fail")
	}
}

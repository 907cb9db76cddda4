package index

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/nordhagen/raido/internal/vault"
)

// watcherTestEnv sets up a vault dir, provider, and DB for watcher tests.
func watcherTestEnv(t *testing.T) (string, vault.Provider, *DB) {
	t.Helper()
	vaultDir := t.TempDir()
	store, err := vault.NewFS(vaultDir)
	if err != nil {
		t.Fatal(err)
	}
	db := testDB(t)
	return vaultDir, store, db
}

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestWatcher_NewFileIndexedAndResolvable(t *testing.T) {
	vaultDir, store, db := watcherTestEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var events []string

	go Watch(ctx, db, store, vaultDir, quietLogger(), func(kind, path string) {
		mu.Lock()
		events = append(events, kind+":"+path)
		mu.Unlock()
	})

	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(vaultDir, "new.md"), []byte("# New"), 0o644)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		p, err := db.Resolve("new")
		return err == nil && p == "new.md"
	}, "new file never became resolvable")

	mu.Lock()
	defer mu.Unlock()
	if len(events) == 0 {
		t.Error("no watcher events observed")
	}
}

func TestWatcher_RemoveDeletesFromIndex(t *testing.T) {
	vaultDir, store, db := watcherTestEnv(t)

	full := filepath.Join(vaultDir, "doomed.md")
	_ = os.WriteFile(full, []byte("# Doomed"), 0o644)
	if err := Sync(db, store, quietLogger()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go Watch(ctx, db, store, vaultDir, quietLogger(), nil)
	time.Sleep(100 * time.Millisecond)

	_ = os.Remove(full)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		paths, err := db.AllPaths()
		if err != nil {
			return false
		}
		_, ok := paths["doomed.md"]
		return !ok
	}, "deleted file still indexed")
}

func TestSyncIndexesAndPrunes(t *testing.T) {
	vaultDir, store, db := watcherTestEnv(t)

	_ = os.WriteFile(filepath.Join(vaultDir, "keep.md"), []byte("---\ntitle: Keep\n---\nbody"), 0o644)
	if err := Sync(db, store, quietLogger()); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if p, err := db.Resolve("keep"); err != nil || p != "keep.md" {
		t.Errorf("Resolve after sync: %q, %v", p, err)
	}

	// Entry with no file behind it gets pruned on the next pass.
	upsert(t, db, "stale.md", "Stale", "zz", "")
	if err := Sync(db, store, quietLogger()); err != nil {
		t.Fatal(err)
	}
	paths, _ := db.AllPaths()
	if _, ok := paths["stale.md"]; ok {
		t.Error("stale entry survived sync")
	}
}

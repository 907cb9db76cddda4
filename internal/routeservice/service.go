// Package routeservice coordinates the routing core with the vault index
// and storage: it resolves link text against indexed notes, turns clicks
// and link intents into directives the UI can execute, and owns the
// daily-note and unique-note operations behind the ribbon actions.
package routeservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nordhagen/raido/internal/apperr"
	"github.com/nordhagen/raido/internal/event"
	"github.com/nordhagen/raido/internal/index"
	"github.com/nordhagen/raido/internal/pane"
	"github.com/nordhagen/raido/internal/parser"
	"github.com/nordhagen/raido/internal/router"
	"github.com/nordhagen/raido/internal/uimap"
	"github.com/nordhagen/raido/internal/vault"
)

// Config carries the routing knobs the service needs.
type Config struct {
	MatchOrder router.MatchOrder
	ReuseEmpty bool
	Table      uimap.Table
	DailyDir   string
	UniqueDir  string
}

// Service answers routing questions over externally supplied pane
// snapshots. It holds no pane state of its own.
type Service struct {
	store vault.Provider
	db    index.NoteIndex
	cfg   Config
	now   func() time.Time
}

// NewService creates a route service.
func NewService(store vault.Provider, db index.NoteIndex, cfg Config) *Service {
	if cfg.MatchOrder == "" {
		cfg.MatchOrder = router.MatchLast
	}
	if cfg.DailyDir == "" {
		cfg.DailyDir = "daily"
	}
	if cfg.UniqueDir == "" {
		cfg.UniqueDir = "unique"
	}
	return &Service{store: store, db: db, cfg: cfg, now: time.Now}
}

// LinkRoute is the decision for one link navigation plus the vault path
// the link text resolves to (best-effort; empty when unresolvable).
type LinkRoute struct {
	Decision     router.LinkDecision `json:"decision"`
	ResolvedPath string              `json:"resolved_path,omitempty"`
}

// RouteLink computes the pane-reuse decision for a link and resolves its
// target against the index.
func (s *Service) RouteLink(_ context.Context, intent router.LinkIntent, snap pane.Snapshot) LinkRoute {
	out := LinkRoute{Decision: router.DecideLink(snap, intent, s.cfg.MatchOrder)}

	component := router.FileComponent(intent.LinkText)
	if component == "" {
		out.ResolvedPath = intent.SourcePath
	} else if p, err := s.db.Resolve(component); err == nil {
		out.ResolvedPath = p
	}
	return out
}

// OpenCall is a direct open-link invocation the UI must perform.
type OpenCall struct {
	LinkText   string `json:"link_text"`
	SourcePath string `json:"source_path"`
	NewPane    bool   `json:"new_pane"`
}

// ClickDirective tells the UI what to do with one click.
type ClickDirective struct {
	Kind       string    `json:"kind"`
	Suppress   bool      `json:"suppress"`
	Synthesize bool      `json:"synthesize"`
	Activate   []string  `json:"activate,omitempty"` // pane IDs, in order
	Open       *OpenCall `json:"open,omitempty"`
}

// snapshotPort adapts a static snapshot to router.Port, recording the
// host mutations a decision asks for instead of performing them.
type snapshotPort struct {
	snap      pane.Snapshot
	activated []string
	open      *OpenCall
}

func (p *snapshotPort) Panes() pane.Snapshot { return p.snap }
func (p *snapshotPort) SetActive(id string)  { p.activated = append(p.activated, id) }
func (p *snapshotPort) OpenLink(link, source string, newPane bool) {
	p.open = &OpenCall{LinkText: link, SourcePath: source, NewPane: newPane}
}

// RouteClick classifies one click against the supplied snapshot and
// returns the directive for the UI to execute.
func (s *Service) RouteClick(_ context.Context, ev *event.Pointer, snap pane.Snapshot) ClickDirective {
	port := &snapshotPort{snap: snap}
	r := router.NewRouter(port, s.cfg.Table, s.cfg.ReuseEmpty)
	out := r.HandleClick(ev)
	return ClickDirective{
		Kind:       out.Kind.String(),
		Suppress:   out.Suppress,
		Synthesize: out.Synthesize,
		Activate:   port.activated,
		Open:       port.open,
	}
}

// ResolveLink maps raw link text to a vault path.
func (s *Service) ResolveLink(_ context.Context, linkText string) (string, error) {
	component := router.FileComponent(linkText)
	if component == "" {
		return "", apperr.ErrNotFound
	}
	return s.db.Resolve(component)
}

// Search delegates full-text search to the index.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	return s.db.Search(query, limit)
}

// EnsureDailyNote creates today's daily note if it does not exist yet
// and returns its path. created reports whether a new file was written.
func (s *Service) EnsureDailyNote(_ context.Context) (path string, created bool, err error) {
	day := s.now().Format("2006-01-02")
	path = s.cfg.DailyDir + "/" + day + ".md"
	if s.store.Exists(path) {
		return path, false, nil
	}
	content := []byte("---\ntitle: " + day + "\n---\n\n")
	if err := s.store.Write(path, content); err != nil {
		return "", false, fmt.Errorf("daily note: %w", err)
	}
	s.indexNow(path, content)
	return path, true, nil
}

// CreateUniqueNote writes a note with a timestamp-derived name and
// returns its path.
func (s *Service) CreateUniqueNote(_ context.Context) (string, error) {
	stamp := s.now().Format("20060102150405")
	path := s.cfg.UniqueDir + "/" + stamp + ".md"
	for i := 2; s.store.Exists(path); i++ {
		if i > 10 {
			return "", apperr.ErrAlreadyExists
		}
		path = fmt.Sprintf("%s/%s-%d.md", s.cfg.UniqueDir, stamp, i)
	}
	content := []byte("---\ntitle: " + stamp + "\n---\n\n")
	if err := s.store.Write(path, content); err != nil {
		return "", fmt.Errorf("unique note: %w", err)
	}
	s.indexNow(path, content)
	return path, nil
}

// indexNow upserts a freshly written note so it resolves immediately,
// without waiting for the watcher to pick it up.
func (s *Service) indexNow(path string, content []byte) {
	res, err := parser.Parse(content)
	if err != nil {
		return
	}
	_ = s.db.UpsertNote(index.NoteRow{
		Path:      path,
		Title:     res.Title,
		UpdatedAt: s.now(),
	}, res.Body)
}

// IsNotFound reports whether err is the not-found sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, apperr.ErrNotFound)
}

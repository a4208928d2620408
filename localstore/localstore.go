// Package localstore implements flow.TemplateStore on a single JSON file,
// the service-side analog of the builder's `templates` local-storage key:
// a plain JSON array of templates, rewritten whole on every append.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/meikuraledutech/flow"
	"github.com/google/uuid"
)

// Store is a file-backed template catalog. A mutex serializes the
// read-append-write cycle so two appends in one process can't drop
// each other's entry.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a Store persisting to the given file path. The file is
// created on first append.
func New(path string) *Store {
	return &Store{path: path}
}

// List returns every stored template. A missing or malformed file reads as
// an empty catalog, not as an error.
func (s *Store) List(ctx context.Context) ([]flow.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(), nil
}

// Get fetches a single template by its ID.
// Returns nil, nil if not found.
func (s *Store) Get(ctx context.Context, id string) (*flow.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.read() {
		if t.ID == id {
			tpl := t
			return &tpl, nil
		}
	}
	return nil, nil
}

// Append adds a template to the catalog. If t.ID is empty, a UUID is
// auto-generated. Returns the template ID (generated or provided).
func (s *Store) Append(ctx context.Context, t *flow.Template) (string, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	templates := append(s.read(), *t)
	if err := s.write(templates); err != nil {
		return "", err
	}
	return t.ID, nil
}

func (s *Store) read() []flow.Template {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return []flow.Template{}
	}

	var templates []flow.Template
	if err := json.Unmarshal(raw, &templates); err != nil {
		return []flow.Template{}
	}
	return templates
}

func (s *Store) write(templates []flow.Template) error {
	raw, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("flow: marshal templates: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("flow: create template dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("flow: write templates: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/meikuraledutech/flow"
	"github.com/google/uuid"
)

// List returns all templates, ordered by created_at.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) List(ctx context.Context) ([]flow.Template, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, text, image FROM flow_templates ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("flow: list templates: %w", err)
	}
	defer rows.Close()

	templates := []flow.Template{}
	for rows.Next() {
		var t flow.Template
		if err := rows.Scan(&t.ID, &t.Text, &t.Image); err != nil {
			return nil, fmt.Errorf("flow: scan template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("flow: rows templates: %w", err)
	}

	return templates, nil
}

// Get fetches a single template by its ID.
// Returns nil, nil if not found.
func (s *PGStore) Get(ctx context.Context, id string) (*flow.Template, error) {
	var t flow.Template
	err := s.db.QueryRow(ctx,
		`SELECT id, text, image FROM flow_templates WHERE id = $1`, id,
	).Scan(&t.ID, &t.Text, &t.Image)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("flow: get template: %w", err)
	}

	return &t, nil
}

// Append inserts a template and bumps the catalog version in one
// transaction. If t.ID is empty, a UUID is auto-generated. The version
// bump is a compare-and-swap: a writer that raced another append gets
// flow.ErrVersionConflict and nothing is written.
func (s *PGStore) Append(ctx context.Context, t *flow.Template) (string, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("flow: begin append: %w", err)
	}
	defer tx.Rollback(ctx)

	var version int64
	err = tx.QueryRow(ctx,
		`SELECT version FROM flow_template_catalog WHERE key = 'templates'`,
	).Scan(&version)
	if err != nil {
		return "", fmt.Errorf("flow: read catalog version: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO flow_templates (id, text, image) VALUES ($1, $2, $3)`,
		t.ID, t.Text, t.Image,
	)
	if err != nil {
		return "", fmt.Errorf("flow: insert template: %w", err)
	}

	ct, err := tx.Exec(ctx,
		`UPDATE flow_template_catalog SET version = version + 1
		 WHERE key = 'templates' AND version = $1`,
		version,
	)
	if err != nil {
		return "", fmt.Errorf("flow: bump catalog version: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return "", flow.ErrVersionConflict
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("flow: commit append: %w", err)
	}

	return t.ID, nil
}

package flow

import (
	"context"
	"errors"
)

var (
	ErrNodeNotFound    = errors.New("flow: node not found")
	ErrDuplicateNode   = errors.New("flow: duplicate node id")
	ErrEditInProgress  = errors.New("flow: another edit is in progress")
	ErrUnknownDataType = errors.New("flow: unknown node data type")
	ErrVersionConflict = errors.New("flow: template catalog version conflict")
)

// TemplateStore defines the contract for the persisted template catalog.
type TemplateStore interface {
	// List returns every stored template. An absent or unparsable
	// catalog reads as empty, not as an error.
	List(ctx context.Context) ([]Template, error)

	// Get fetches a single template by its ID.
	// Returns nil, nil if not found.
	Get(ctx context.Context, id string) (*Template, error)

	// Append adds a template to the catalog. If t.ID is empty, a UUID is
	// auto-generated. Returns the template ID (generated or provided).
	Append(ctx context.Context, t *Template) (string, error)
}

// Package postgres implements flow.TemplateStore using PostgreSQL via pgx,
// for deployments where several builder tabs share one template catalog.
// Appends bump a catalog version with a compare-and-swap so a concurrent
// writer loses cleanly instead of silently overwriting.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore implements flow.TemplateStore using PostgreSQL via pgx.
type PGStore struct {
	db *pgxpool.Pool
}

// New creates a new PGStore backed by the given pgx connection pool.
func New(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

// isNoRows checks if the error is a "no rows" error from pgx.
func isNoRows(err error) bool {
	return err != nil && err.Error() == "no rows in result set"
}

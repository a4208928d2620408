package postgres

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS flow_templates (
    id         TEXT PRIMARY KEY,
    text       TEXT NOT NULL,
    image      TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS flow_template_catalog (
    key     TEXT PRIMARY KEY,
    version BIGINT NOT NULL DEFAULT 0
);

INSERT INTO flow_template_catalog (key, version)
VALUES ('templates', 0)
ON CONFLICT (key) DO NOTHING;
`

// CreateSchema creates the template tables if they don't exist and seeds
// the catalog version row.
func (s *PGStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops the template tables.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS flow_templates, flow_template_catalog CASCADE;`)
	return err
}

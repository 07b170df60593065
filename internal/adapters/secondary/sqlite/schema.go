package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Each record is stored as a JSON document in data. The scalar columns duplicate the
// fields needed by the list views so they can be served without decoding documents.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS field (
		id                     TEXT PRIMARY KEY,
		meta_info              TEXT,
		name                   TEXT,
		description            TEXT,
		creation_date          TEXT,
		last_modification_date TEXT,
		data                   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS field_cartographic_conversion_set (
		id                     TEXT PRIMARY KEY,
		meta_info              TEXT,
		name                   TEXT,
		description            TEXT,
		creation_date          TEXT,
		last_modification_date TEXT,
		field_id               TEXT,
		field_name             TEXT,
		field_description      TEXT,
		data                   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_conversion_set_field_id ON field_cartographic_conversion_set (field_id)`,
}

func applySchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and run on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS table_imports (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		sheet TEXT NOT NULL DEFAULT '',
		row_count INTEGER NOT NULL CHECK (row_count >= 0),
		duplicates INTEGER NOT NULL DEFAULT 0 CHECK (duplicates >= 0),
		imported_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_table_imports_imported_at ON table_imports(imported_at)`,

	// Only the rows of the latest import are kept. A NULL value column is a
	// cell with no reference data.
	`CREATE TABLE IF NOT EXISTS reference_rows (
		import_id TEXT NOT NULL REFERENCES table_imports(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		lookup_key TEXT NOT NULL,
		norm_key TEXT NOT NULL,
		init_inhalation REAL,
		init_dermal REAL,
		init_local_dermal REAL,
		lev_inhalation REAL,
		lev_dermal REAL,
		PRIMARY KEY (import_id, norm_key)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reference_rows_norm_key ON reference_rows(norm_key)`,
	`CREATE INDEX IF NOT EXISTS idx_reference_rows_position ON reference_rows(import_id, position)`,
}

package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// connPragmas are applied by the driver to every new connection.
const connPragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// OpenDB opens the reference store at path, or an in-memory database for
// ":memory:", and runs migrations. File databases use WAL mode.
func OpenDB(path string) (*sql.DB, error) {
	memory := path == ":memory:"
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?"+connPragmas)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if memory {
		// Every new connection would get its own empty database.
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

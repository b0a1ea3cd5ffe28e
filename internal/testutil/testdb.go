package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/traworker/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory reference store that is closed with
// the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	store, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func NewTestUoW(store *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(store)
}

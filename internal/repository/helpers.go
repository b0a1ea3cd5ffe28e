package repository

import (
	"database/sql"
	"time"

	"github.com/alexanderramin/traworker/internal/domain"
)

// valueToNullable converts a reference value for SQLite storage. Anything
// but a number is stored as NULL.
func valueToNullable(v domain.Value) interface{} {
	f, ok := v.Float()
	if !ok {
		return nil
	}
	return f
}

// nullableToValue reads a stored reference value; NULL is not applicable.
func nullableToValue(n sql.NullFloat64) domain.Value {
	if !n.Valid {
		return domain.NotApplicable()
	}
	return domain.Number(n.Float64)
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

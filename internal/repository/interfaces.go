package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/traworker/internal/domain"
)

// ErrNotFound is returned when a lookup matches nothing in the store.
var ErrNotFound = errors.New("not found")

// ReferenceRepo stores the imported reference table. Only the rows of the
// latest import are kept; every import is recorded.
type ReferenceRepo interface {
	ReplaceAll(ctx context.Context, imp *domain.TableImport, rows []domain.ReferenceRow) error
	ListRows(ctx context.Context) ([]domain.ReferenceRow, error)
	GetRow(ctx context.Context, key string) (*domain.ReferenceRow, error)
	LatestImport(ctx context.Context) (*domain.TableImport, error)
	ListImports(ctx context.Context) ([]*domain.TableImport, error)
}

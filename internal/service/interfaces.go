package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/alexanderramin/traworker/internal/exposure"
	"github.com/alexanderramin/traworker/internal/importer"
	"github.com/alexanderramin/traworker/internal/reftable"
)

// ErrNoTable is returned when no reference table is configured, passed or
// imported.
var ErrNoTable = errors.New("no reference table: run 'traworker table import FILE' or pass --table")

// EvaluationService runs scenarios through the exposure pipeline.
type EvaluationService interface {
	Evaluate(ctx context.Context, s domain.Scenario, table exposure.Table) (*exposure.Result, error)
	EvaluateFile(ctx context.Context, sf *importer.ScenarioFile, table exposure.Table) (*exposure.Result, error)
	EvaluatePaths(ctx context.Context, paths []string, table exposure.Table) ([]*exposure.Result, error)
}

// TableService manages the stored reference table.
type TableService interface {
	Import(ctx context.Context, path, sheet string) (*ImportResult, error)
	Info(ctx context.Context) (*TableInfo, error)
	Load(ctx context.Context) (*reftable.Table, error)
	Lookup(ctx context.Context, key string) (*domain.ReferenceRow, error)
	Resolve(ctx context.Context, req ResolveRequest) (*reftable.Table, error)
}

// ImportResult summarises a table import.
type ImportResult struct {
	Import     *domain.TableImport
	Duplicates []string
}

// TableInfo describes the stored table.
type TableInfo struct {
	Latest  *domain.TableImport
	Imports []*domain.TableImport
	Rows    int
}

// ResolveRequest names the candidate table sources for an evaluation.
// Path wins over the stored table, which wins over ConfigPath.
type ResolveRequest struct {
	Path       string
	Sheet      string
	ConfigPath string
}

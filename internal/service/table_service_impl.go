package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/traworker/internal/db"
	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/alexanderramin/traworker/internal/reftable"
	"github.com/alexanderramin/traworker/internal/repository"
	"github.com/google/uuid"
)

type tableService struct {
	refs     repository.ReferenceRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTableService(refs repository.ReferenceRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TableService {
	return &tableService{
		refs:     refs,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Import loads a CSV or XLSX table and replaces the stored rows with it in
// one transaction. Rows with repeated keys are dropped, first one wins.
func (s *tableService) Import(ctx context.Context, path, sheet string) (result *ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"path": path}
	defer func() {
		if result != nil {
			fields["import_id"] = result.Import.ID
			fields["rows"] = result.Import.RowCount
			fields["duplicates"] = result.Import.Duplicates
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-table",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	table, err := reftable.LoadFile(path, sheet)
	if err != nil {
		return nil, fmt.Errorf("loading table: %w", err)
	}

	imp := &domain.TableImport{
		ID:         uuid.New().String(),
		Source:     filepath.Base(path),
		Sheet:      workbookSheet(path, sheet),
		RowCount:   table.Len(),
		Duplicates: len(table.Duplicates()),
		ImportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteReferenceRepo(tx).ReplaceAll(ctx, imp, table.Rows())
	})
	if err != nil {
		return nil, fmt.Errorf("storing table: %w", err)
	}

	return &ImportResult{Import: imp, Duplicates: table.Duplicates()}, nil
}

func (s *tableService) Info(ctx context.Context) (*TableInfo, error) {
	imports, err := s.refs.ListImports(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.refs.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	info := &TableInfo{Imports: imports, Rows: len(rows)}
	if len(imports) > 0 {
		info.Latest = imports[0]
	}
	return info, nil
}

// Load indexes the stored rows. It returns ErrNoTable when nothing has been
// imported.
func (s *tableService) Load(ctx context.Context) (table *reftable.Table, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		if table != nil {
			fields["rows"] = table.Len()
			fields["source"] = table.Source()
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "load-table",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var (
		latest *domain.TableImport
		rows   []domain.ReferenceRow
	)
	// One transaction so the rows belong to the import they are labelled with.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		refs := repository.NewSQLiteReferenceRepo(tx)
		var err error
		if latest, err = refs.LatestImport(ctx); err != nil {
			return err
		}
		rows, err = refs.ListRows(ctx)
		return err
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoTable
	}
	if err != nil {
		return nil, fmt.Errorf("reading stored table: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoTable
	}
	return reftable.FromRows(latest.Source, rows), nil
}

func (s *tableService) Lookup(ctx context.Context, key string) (*domain.ReferenceRow, error) {
	return s.refs.GetRow(ctx, key)
}

func (s *tableService) Resolve(ctx context.Context, req ResolveRequest) (*reftable.Table, error) {
	if req.Path != "" {
		return reftable.LoadFile(req.Path, req.Sheet)
	}
	table, err := s.Load(ctx)
	if err == nil {
		return table, nil
	}
	if !errors.Is(err, ErrNoTable) {
		return nil, err
	}
	if req.ConfigPath != "" {
		return reftable.LoadFile(req.ConfigPath, req.Sheet)
	}
	return nil, ErrNoTable
}

// workbookSheet returns the sheet name recorded for an import; CSV tables
// have none.
func workbookSheet(path, sheet string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		if sheet == "" {
			return reftable.DefaultSheet
		}
		return sheet
	}
	return ""
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/traworker/internal/db"
	"github.com/alexanderramin/traworker/internal/domain"
)

// SQLiteReferenceRepo implements ReferenceRepo using a SQLite database.
type SQLiteReferenceRepo struct {
	db db.DBTX
}

// NewSQLiteReferenceRepo creates a new SQLiteReferenceRepo. Pass the tx from
// UnitOfWork.WithinTx to make ReplaceAll atomic.
func NewSQLiteReferenceRepo(conn db.DBTX) *SQLiteReferenceRepo {
	return &SQLiteReferenceRepo{db: conn}
}

const referenceRowColumns = `lookup_key, init_inhalation, init_dermal, init_local_dermal, lev_inhalation, lev_dermal`

const tableImportColumns = `id, source, sheet, row_count, duplicates, imported_at`

// ReplaceAll drops the stored rows and records a new import. Rows whose
// normalised key repeats are rejected by the primary key, so callers pass
// de-duplicated rows.
func (r *SQLiteReferenceRepo) ReplaceAll(ctx context.Context, imp *domain.TableImport, rows []domain.ReferenceRow) error {
	if imp.ImportedAt == "" {
		imp.ImportedAt = nowUTC()
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM reference_rows`); err != nil {
		return fmt.Errorf("clearing reference rows: %w", err)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO table_imports (`+tableImportColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		imp.ID, imp.Source, imp.Sheet, imp.RowCount, imp.Duplicates, imp.ImportedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting table import: %w", err)
	}

	query := `INSERT INTO reference_rows (import_id, position, norm_key, ` + referenceRowColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, row := range rows {
		_, err := r.db.ExecContext(ctx, query,
			imp.ID,
			i,
			domain.NormalizeKey(row.Key),
			row.Key,
			valueToNullable(row.Inhalation),
			valueToNullable(row.Dermal),
			valueToNullable(row.LocalDermal),
			valueToNullable(row.LEVInhalation),
			valueToNullable(row.LEVDermal),
		)
		if err != nil {
			return fmt.Errorf("inserting reference row %q: %w", row.Key, err)
		}
	}
	return nil
}

func (r *SQLiteReferenceRepo) ListRows(ctx context.Context) ([]domain.ReferenceRow, error) {
	query := `SELECT ` + referenceRowColumns + ` FROM reference_rows ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing reference rows: %w", err)
	}
	defer rows.Close()

	var out []domain.ReferenceRow
	for rows.Next() {
		row, err := scanReferenceRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reference rows: %w", err)
	}
	return out, nil
}

func (r *SQLiteReferenceRepo) GetRow(ctx context.Context, key string) (*domain.ReferenceRow, error) {
	query := `SELECT ` + referenceRowColumns + ` FROM reference_rows WHERE norm_key = ?`
	row, err := scanReferenceRow(r.db.QueryRowContext(ctx, query, domain.NormalizeKey(key)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reference row %q: %w", key, ErrNotFound)
	}
	return row, err
}

func (r *SQLiteReferenceRepo) LatestImport(ctx context.Context) (*domain.TableImport, error) {
	query := `SELECT ` + tableImportColumns + ` FROM table_imports ORDER BY imported_at DESC, rowid DESC LIMIT 1`
	imp, err := scanTableImport(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("table import: %w", ErrNotFound)
	}
	return imp, err
}

func (r *SQLiteReferenceRepo) ListImports(ctx context.Context) ([]*domain.TableImport, error) {
	query := `SELECT ` + tableImportColumns + ` FROM table_imports ORDER BY imported_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing table imports: %w", err)
	}
	defer rows.Close()

	var out []*domain.TableImport
	for rows.Next() {
		imp, err := scanTableImport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, imp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating table imports: %w", err)
	}
	return out, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanReferenceRow(s scanner) (*domain.ReferenceRow, error) {
	var row domain.ReferenceRow
	var inh, derm, local, levInh, levDerm sql.NullFloat64
	if err := s.Scan(&row.Key, &inh, &derm, &local, &levInh, &levDerm); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning reference row: %w", err)
	}
	row.Inhalation = nullableToValue(inh)
	row.Dermal = nullableToValue(derm)
	row.LocalDermal = nullableToValue(local)
	row.LEVInhalation = nullableToValue(levInh)
	row.LEVDermal = nullableToValue(levDerm)
	return &row, nil
}

func scanTableImport(s scanner) (*domain.TableImport, error) {
	var imp domain.TableImport
	if err := s.Scan(&imp.ID, &imp.Source, &imp.Sheet, &imp.RowCount, &imp.Duplicates, &imp.ImportedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning table import: %w", err)
	}
	return &imp, nil
}

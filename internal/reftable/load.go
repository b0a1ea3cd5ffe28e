package reftable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the lookup sheet of the ECETOC TRA worker workbook.
const DefaultSheet = "TRAlookup"

// LoadFile reads a CSV or XLSX table, chosen by extension. sheet applies to
// workbooks only; empty means DefaultSheet.
func LoadFile(path, sheet string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, sheet)
	default:
		return nil, &LoadError{Source: path, Err: fmt.Errorf("unsupported table format %q", filepath.Ext(path))}
	}
}

// LoadCSV reads a table exported from the lookup sheet as CSV.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return ReadCSV(f, path)
}

// ReadCSV parses CSV table data. source names the data in errors.
func ReadCSV(r io.Reader, source string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, &LoadError{Source: source, Row: perr.Line, Err: perr.Err}
		}
		return nil, &LoadError{Source: source, Err: err}
	}
	return parseRecords(source, records)
}

// LoadXLSX reads the lookup sheet from an ECETOC TRA workbook.
func LoadXLSX(path, sheet string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return ReadXLSX(f, path, sheet)
}

// ReadXLSX parses workbook data. Cells are read raw so that number formats
// in the sheet do not leak into the values.
func ReadXLSX(r io.Reader, source, sheet string) (*Table, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}

	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	defer func() { _ = wb.Close() }()

	if idx, err := wb.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, &LoadError{
			Source: source,
			Err:    fmt.Errorf("sheet %q not found (have %s)", sheet, strings.Join(wb.GetSheetList(), ", ")),
		}
	}

	rows, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("reading sheet %q: %w", sheet, err)}
	}
	return parseRecords(source+":"+sheet, rows)
}

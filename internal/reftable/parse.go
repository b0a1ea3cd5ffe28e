package reftable

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/traworker/internal/domain"
)

// Column headers as they appear in the ECETOC TRA worker lookup sheet.
const (
	ColKey           = "descriptor/look-up term inhalation"
	ColInhalation    = "init exp inhalation"
	ColDermal        = "init exp dermal"
	ColLocalDermal   = "init exp local dermal"
	ColLEVInhalation = "reduction factor lev inhal"
	ColLEVDermal     = "reduction factor LEV dermal"
)

var requiredColumns = []string{ColKey, ColInhalation, ColDermal, ColLocalDermal, ColLEVInhalation, ColLEVDermal}

// headerSearchDepth bounds how far down a sheet the header row may sit.
const headerSearchDepth = 20

var errMissingHeader = errors.New("header row not found")

type columnIndex map[string]int

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

// findHeader returns the position of the header row and the index of every
// required column in it.
func findHeader(source string, records [][]string) (int, columnIndex, error) {
	for i := 0; i < len(records) && i < headerSearchDepth; i++ {
		cols := columnIndex{}
		for j, cell := range records[i] {
			n := normalizeHeader(cell)
			if _, seen := cols[n]; !seen {
				cols[n] = j
			}
		}
		if _, ok := cols[normalizeHeader(ColKey)]; !ok {
			continue
		}
		for _, want := range requiredColumns {
			if _, ok := cols[normalizeHeader(want)]; !ok {
				return 0, nil, &LoadError{Source: source, Row: i + 1, Column: want, Err: errors.New("required column missing")}
			}
		}
		return i, cols, nil
	}
	return 0, nil, &LoadError{Source: source, Column: ColKey, Err: errMissingHeader}
}

func (c columnIndex) cell(record []string, col string) string {
	j := c[normalizeHeader(col)]
	if j >= len(record) {
		return ""
	}
	return record[j]
}

// missingMarkers are the spellings spreadsheet exports and pandas use for a
// cell with no data, compared in lower case.
var missingMarkers = map[string]bool{
	"": true, "-": true, "n/a": true, "na": true, "#n/a": true, "#n/a n/a": true,
	"#na": true, "<na>": true, "nan": true, "-nan": true, "null": true,
	"none": true, "1.#ind": true, "-1.#ind": true, "1.#qnan": true, "-1.#qnan": true,
}

// parseCell reads a numeric reference cell. Blank cells and not-available
// markers become not applicable; infinities are rejected.
func parseCell(raw string) (domain.Value, error) {
	s := strings.TrimSpace(raw)
	if missingMarkers[strings.ToLower(s)] {
		return domain.NotApplicable(), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.Value{}, fmt.Errorf("not a number: %q", s)
	}
	if math.IsNaN(f) {
		return domain.NotApplicable(), nil
	}
	if math.IsInf(f, 0) {
		return domain.Value{}, fmt.Errorf("not a finite number: %q", s)
	}
	return domain.Number(f), nil
}

// parseRecords turns raw sheet records into a table. Rows without a key are
// skipped.
func parseRecords(source string, records [][]string) (*Table, error) {
	headerAt, cols, err := findHeader(source, records)
	if err != nil {
		return nil, err
	}

	var rows []domain.ReferenceRow
	for i := headerAt + 1; i < len(records); i++ {
		rec := records[i]
		key := strings.TrimSpace(cols.cell(rec, ColKey))
		if key == "" {
			continue
		}

		row := domain.ReferenceRow{Key: key}
		fields := []struct {
			col string
			dst *domain.Value
		}{
			{ColInhalation, &row.Inhalation},
			{ColDermal, &row.Dermal},
			{ColLocalDermal, &row.LocalDermal},
			{ColLEVInhalation, &row.LEVInhalation},
			{ColLEVDermal, &row.LEVDermal},
		}
		for _, f := range fields {
			v, err := parseCell(cols.cell(rec, f.col))
			if err != nil {
				return nil, &LoadError{Source: source, Row: i + 1, Column: f.col, Err: err}
			}
			*f.dst = v
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, &LoadError{Source: source, Err: errors.New("no reference rows")}
	}
	return FromRows(source, rows), nil
}

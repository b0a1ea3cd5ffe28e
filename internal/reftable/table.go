// Package reftable loads the ECETOC TRA worker lookup table and indexes it
// by lookup descriptor.
package reftable

import (
	"sort"

	"github.com/alexanderramin/traworker/internal/domain"
)

// Table is an immutable, indexed set of reference rows. It is safe for
// concurrent readers.
type Table struct {
	source     string
	rows       []domain.ReferenceRow
	index      map[string]int
	duplicates []string
}

// FromRows indexes rows by normalised key. The first row for a key wins;
// later keys are recorded as duplicates.
func FromRows(source string, rows []domain.ReferenceRow) *Table {
	t := &Table{
		source: source,
		rows:   make([]domain.ReferenceRow, 0, len(rows)),
		index:  make(map[string]int, len(rows)),
	}
	for _, r := range rows {
		k := domain.NormalizeKey(r.Key)
		if _, dup := t.index[k]; dup {
			t.duplicates = append(t.duplicates, r.Key)
			continue
		}
		t.index[k] = len(t.rows)
		t.rows = append(t.rows, r)
	}
	return t
}

// Lookup finds the row for a lookup descriptor. Keys compare without case
// or whitespace.
func (t *Table) Lookup(key string) (domain.ReferenceRow, bool) {
	if t == nil {
		return domain.ReferenceRow{}, false
	}
	i, ok := t.index[domain.NormalizeKey(key)]
	if !ok {
		return domain.ReferenceRow{}, false
	}
	return t.rows[i], true
}

func (t *Table) Len() int { return len(t.rows) }

func (t *Table) Source() string { return t.source }

// Rows returns a copy of the indexed rows in load order.
func (t *Table) Rows() []domain.ReferenceRow {
	out := make([]domain.ReferenceRow, len(t.rows))
	copy(out, t.rows)
	return out
}

// Duplicates lists the keys that were dropped because an earlier row had
// the same normalised key.
func (t *Table) Duplicates() []string {
	out := make([]string, len(t.duplicates))
	copy(out, t.duplicates)
	return out
}

// Keys returns the stored keys sorted alphabetically.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.rows))
	for i, r := range t.rows {
		keys[i] = r.Key
	}
	sort.Strings(keys)
	return keys
}

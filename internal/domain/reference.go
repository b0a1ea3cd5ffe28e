package domain

import "strings"

// ReferenceRow is one line of the ECETOC TRA worker lookup table. Rates and
// reduction factors absent from the table are NotApplicable.
type ReferenceRow struct {
	Key           string
	Inhalation    Value
	Dermal        Value
	LocalDermal   Value
	LEVInhalation Value
	LEVDermal     Value
}

// TableImport records one load of the reference table into the store.
type TableImport struct {
	ID         string
	Source     string
	Sheet      string
	RowCount   int
	Duplicates int
	ImportedAt string
}

// NormalizeKey folds a lookup descriptor to lower case without whitespace so
// that table keys and built keys compare equal regardless of spelling.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.Join(strings.Fields(key), ""))
}

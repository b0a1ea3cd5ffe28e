package reftable

import (
	"errors"
	"fmt"
)

// ErrTableLoad is the base error for every reference table that could not
// be read.
var ErrTableLoad = errors.New("reference table load failed")

// LoadError reports where in the source a table failed to load. Row is the
// 1-based line or sheet row; zero when the failure is not row-specific.
type LoadError struct {
	Source string
	Row    int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("%s: row %d, column %q: %v", e.Source, e.Row, e.Column, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("%s: row %d: %v", e.Source, e.Row, e.Err)
	case e.Column != "":
		return fmt.Sprintf("%s: column %q: %v", e.Source, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() []error { return []error{ErrTableLoad, e.Err} }

package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCategory is wrapped by every error reporting a categorical input
// outside its enumerated domain.
var ErrInvalidCategory = errors.New("invalid category")

// CategoryError names the offending field and value.
type CategoryError struct {
	Field string
	Value string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrInvalidCategory, e.Field, e.Value)
}

func (e *CategoryError) Unwrap() error { return ErrInvalidCategory }

func invalidCategory(field, value string) error {
	return &CategoryError{Field: field, Value: value}
}

// CheckCategory returns a CategoryError when valid is false.
func CheckCategory(field string, value string, valid bool) error {
	if valid {
		return nil
	}
	return invalidCategory(field, value)
}

package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoTargets indicates the CSV contained zero usable data rows.
	// Generating a fan-out script for nothing is meaningless.
	ErrNoTargets = errors.New("no targets to process")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	// FormatError values match it under errors.Is.
	ErrInvalidInput = errors.New("invalid input")
)

// FormatError describes malformed tabular input: a missing required
// column, an unparseable row, or a row with an empty required value.
// At most one of Column and Row is set.
type FormatError struct {
	// Column is the name of the missing required column, if any.
	Column string

	// Row is the 1-based ordinal of the offending data row, if any.
	Row int

	// Reason describes the problem when Column and Row do not.
	Reason string
}

func (e *FormatError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("csv is missing required column %q", e.Column)
	case e.Row != 0 && e.Reason != "":
		return fmt.Sprintf("csv row %d: %s", e.Row, e.Reason)
	case e.Row != 0:
		return fmt.Sprintf("csv row %d is malformed", e.Row)
	default:
		return "csv format error: " + e.Reason
	}
}

// Is makes errors.Is(err, ErrInvalidInput) true for any FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidInput
}

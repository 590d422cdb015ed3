// Package data provides read-only, column-oriented access to tabular data.
//
// A Table is a thin typed view over a github.com/aclements/go-gg/table.Table.
// Columns are looked up by name and cast to the semantic type a caller needs:
// Numeric returns float64 values with NaN marking missing cells, Strings
// returns the string form of every cell with the empty string marking
// missing cells.
//
// A missing column or a cell which cannot be cast is reported as a
// *ColumnError wrapping ErrColumnNotFound or ErrTypeCast.
package data

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnNotFound is returned if a referenced column does not exist.
	ErrColumnNotFound = errors.New("column not found")

	// ErrTypeCast is returned if a column cannot be cast to the requested
	// semantic type.
	ErrTypeCast = errors.New("cannot cast column")

	// ErrLength is returned if columns of a new table differ in length.
	ErrLength = errors.New("column length mismatch")
)

// ColumnError describes a failed column access.
type ColumnError struct {
	Column string // Column is the name of the offending column.
	Want   string // Want is the requested semantic type, e.g. "numeric".
	Row    int    // Row is the first offending row or -1.
	Err    error  // Err is one of ErrColumnNotFound, ErrTypeCast or ErrLength.
}

func (e *ColumnError) Error() string {
	switch {
	case e.Row >= 0:
		return fmt.Sprintf("data: column %q row %d: %s to %s", e.Column, e.Row, e.Err, e.Want)
	case e.Want != "":
		return fmt.Sprintf("data: column %q: %s to %s", e.Column, e.Err, e.Want)
	}
	return fmt.Sprintf("data: column %q: %s", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }

func notFound(col string) error {
	return &ColumnError{Column: col, Row: -1, Err: ErrColumnNotFound}
}

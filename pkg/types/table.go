package types

import (
	"errors"
	"fmt"
)

// Row is one sheet row: an ordered sequence of string cells.
// Cells are positional; there is no named-column binding in storage.
type Row []string

// Cell returns the 1-based cell at col, or "" when the row is shorter.
func (r Row) Cell(col int) string {
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// Table provides positional row access to a single named sheet.
// Row and column positions are 1-based; the header row is at position 1.
// Every failure is reported as a *BackendError.
type Table interface {
	// ScanAll returns every row in sheet order, header row first.
	ScanAll() ([]Row, error)

	// Append adds a row after the current last row.
	Append(row Row) error

	// UpdateCell sets a single cell. Rows shorter than col are extended
	// with empty cells up to col.
	UpdateCell(rowPos, colPos int, value string) error

	// DeleteRow removes the row at rowPos. Positions of all subsequent
	// rows shift down by one, so any position computed before this call
	// must be recomputed before reuse.
	DeleteRow(rowPos int) error
}

// BackendError reports a failed storage call. Record operations abort
// when they see one; partial writes already issued are not rolled back.
type BackendError struct {
	Op    string // failed operation (scan, append, update, delete)
	Sheet string // sheet the operation targeted
	Err   error  // underlying cause
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Sheet, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// IsBackend reports whether err is (or wraps) a *BackendError.
func IsBackend(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}

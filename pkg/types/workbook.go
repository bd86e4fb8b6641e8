package types

import "errors"

// Workbook defines backend-agnostic access to the named sheets.
// Callers open the workbook once at bootstrap, resolve sheets by
// label, and close when done.
type Workbook interface {
	// Sheet returns the Table for the given sheet name.
	// Returns ErrSheetNotFound if the name is not a standard sheet.
	Sheet(name string) (Table, error)

	// Open connects the workbook to the store described by config,
	// creating it (with header rows) when it does not exist yet.
	// Returns ErrAlreadyOpen if called while already open.
	Open(config Config) error

	// Close releases store resources. Idempotent: multiple calls
	// succeed. After Close, sheet operations return ErrWorkbookClosed.
	Close() error
}

// Workbook lifecycle errors.
var (
	ErrWorkbookClosed = errors.New("workbook is closed")
	ErrAlreadyOpen    = errors.New("workbook is already open")
	ErrSheetNotFound  = errors.New("sheet not found")
)

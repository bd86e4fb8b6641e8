// Package sheet implements the SQLite-backed workbook store for the
// Forever Home Friends record keeper. Sheets are sequences of
// positionally addressed rows of string cells; the header row sits at
// position 1.
package sheet

// Schema DDL for the workbook. Rows carry a UUID identity for stable
// internal reference; positional addressing is derived from pos. The
// (sheet, pos) index is deliberately non-unique so the delete-shift
// UPDATE never trips a transient uniqueness violation.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS sheet_rows (
    row_id TEXT PRIMARY KEY,
    sheet  TEXT NOT NULL,
    pos    INTEGER NOT NULL,
    cells  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sheet_rows_sheet_pos
    ON sheet_rows (sheet, pos);
`

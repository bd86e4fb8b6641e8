package sheet

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/forever-home/friends/pkg/types"
)

// sheetTable implements types.Table for a single named sheet.
// All positions are 1-based; the header row is at position 1.
type sheetTable struct {
	name  string // sheet name (e.g. "Children")
	store *Store // parent store for DB access
}

var _ types.Table = (*sheetTable)(nil)

// backendErr wraps a storage failure in the error type record
// operations abort on.
func (t *sheetTable) backendErr(op string, err error) error {
	return &types.BackendError{Op: op, Sheet: t.name, Err: err}
}

// ScanAll returns every row in sheet order, header row first.
func (t *sheetTable) ScanAll() ([]types.Row, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	if !t.store.open {
		return nil, t.backendErr("scan", types.ErrWorkbookClosed)
	}

	rows, err := t.store.db.Query(
		"SELECT cells FROM sheet_rows WHERE sheet = ? ORDER BY pos", t.name,
	)
	if err != nil {
		return nil, t.backendErr("scan", err)
	}
	defer rows.Close()

	var all []types.Row
	for rows.Next() {
		var cells string
		if err := rows.Scan(&cells); err != nil {
			return nil, t.backendErr("scan", err)
		}
		var row types.Row
		if err := json.Unmarshal([]byte(cells), &row); err != nil {
			return nil, t.backendErr("scan", fmt.Errorf("decode row cells: %w", err))
		}
		all = append(all, row)
	}
	if err := rows.Err(); err != nil {
		return nil, t.backendErr("scan", err)
	}
	return all, nil
}

// Append adds a row after the current last row.
func (t *sheetTable) Append(row types.Row) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if !t.store.open {
		return t.backendErr("append", types.ErrWorkbookClosed)
	}

	cells, err := json.Marshal(row)
	if err != nil {
		return t.backendErr("append", fmt.Errorf("encode row cells: %w", err))
	}
	rowID, err := uuid.NewV7()
	if err != nil {
		return t.backendErr("append", fmt.Errorf("generating UUID v7: %w", err))
	}

	_, err = t.store.db.Exec(
		`INSERT INTO sheet_rows (row_id, sheet, pos, cells)
		 VALUES (?, ?, (SELECT COALESCE(MAX(pos), 0) + 1 FROM sheet_rows WHERE sheet = ?), ?)`,
		rowID.String(), t.name, t.name, string(cells),
	)
	if err != nil {
		return t.backendErr("append", err)
	}
	return nil
}

// UpdateCell sets a single cell. Rows shorter than colPos are extended
// with empty cells up to colPos.
func (t *sheetTable) UpdateCell(rowPos, colPos int, value string) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if !t.store.open {
		return t.backendErr("update", types.ErrWorkbookClosed)
	}
	if rowPos < 1 || colPos < 1 {
		return t.backendErr("update", fmt.Errorf("position out of range: row %d, col %d", rowPos, colPos))
	}

	var rowID, cells string
	err := t.store.db.QueryRow(
		"SELECT row_id, cells FROM sheet_rows WHERE sheet = ? AND pos = ?",
		t.name, rowPos,
	).Scan(&rowID, &cells)
	if err == sql.ErrNoRows {
		return t.backendErr("update", fmt.Errorf("row %d does not exist", rowPos))
	}
	if err != nil {
		return t.backendErr("update", err)
	}

	var row types.Row
	if err := json.Unmarshal([]byte(cells), &row); err != nil {
		return t.backendErr("update", fmt.Errorf("decode row cells: %w", err))
	}
	for len(row) < colPos {
		row = append(row, "")
	}
	row[colPos-1] = value

	updated, err := json.Marshal(row)
	if err != nil {
		return t.backendErr("update", fmt.Errorf("encode row cells: %w", err))
	}
	_, err = t.store.db.Exec(
		"UPDATE sheet_rows SET cells = ? WHERE row_id = ?",
		string(updated), rowID,
	)
	if err != nil {
		return t.backendErr("update", err)
	}
	return nil
}

// DeleteRow removes the row at rowPos and shifts all subsequent rows
// down by one position.
func (t *sheetTable) DeleteRow(rowPos int) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if !t.store.open {
		return t.backendErr("delete", types.ErrWorkbookClosed)
	}
	if rowPos < 1 {
		return t.backendErr("delete", fmt.Errorf("position out of range: row %d", rowPos))
	}

	tx, err := t.store.db.Begin()
	if err != nil {
		return t.backendErr("delete", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"DELETE FROM sheet_rows WHERE sheet = ? AND pos = ?", t.name, rowPos,
	)
	if err != nil {
		return t.backendErr("delete", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return t.backendErr("delete", err)
	}
	if affected == 0 {
		return t.backendErr("delete", fmt.Errorf("row %d does not exist", rowPos))
	}

	_, err = tx.Exec(
		"UPDATE sheet_rows SET pos = pos - 1 WHERE sheet = ? AND pos > ?",
		t.name, rowPos,
	)
	if err != nil {
		return t.backendErr("delete", err)
	}

	if err := tx.Commit(); err != nil {
		return t.backendErr("delete", err)
	}
	return nil
}

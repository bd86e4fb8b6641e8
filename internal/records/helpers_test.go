package records

import (
	"fmt"
	"io"
	"strings"

	"github.com/forever-home/friends/pkg/types"
)

// fakeTable is an in-memory Table with injectable failures, standing
// in for the workbook store in unit tests.
type fakeTable struct {
	name string
	rows []types.Row

	failScan   error
	failAppend error
	failUpdate error
	failDelete error
}

func newFakeTable(name string, header types.Row, data ...types.Row) *fakeTable {
	rows := []types.Row{header}
	rows = append(rows, data...)
	return &fakeTable{name: name, rows: rows}
}

func (f *fakeTable) backendErr(op string, err error) error {
	return &types.BackendError{Op: op, Sheet: f.name, Err: err}
}

func (f *fakeTable) ScanAll() ([]types.Row, error) {
	if f.failScan != nil {
		return nil, f.backendErr("scan", f.failScan)
	}
	out := make([]types.Row, len(f.rows))
	for i, row := range f.rows {
		out[i] = append(types.Row(nil), row...)
	}
	return out, nil
}

func (f *fakeTable) Append(row types.Row) error {
	if f.failAppend != nil {
		return f.backendErr("append", f.failAppend)
	}
	f.rows = append(f.rows, append(types.Row(nil), row...))
	return nil
}

func (f *fakeTable) UpdateCell(rowPos, colPos int, value string) error {
	if f.failUpdate != nil {
		return f.backendErr("update", f.failUpdate)
	}
	if rowPos < 1 || rowPos > len(f.rows) {
		return f.backendErr("update", io.ErrUnexpectedEOF)
	}
	row := f.rows[rowPos-1]
	for len(row) < colPos {
		row = append(row, "")
	}
	row[colPos-1] = value
	f.rows[rowPos-1] = row
	return nil
}

func (f *fakeTable) DeleteRow(rowPos int) error {
	if f.failDelete != nil {
		return f.backendErr("delete", f.failDelete)
	}
	if rowPos < 1 || rowPos > len(f.rows) {
		return f.backendErr("delete", io.ErrUnexpectedEOF)
	}
	f.rows = append(f.rows[:rowPos-1], f.rows[rowPos:]...)
	return nil
}

// scriptConsole feeds a fixed sequence of input lines and captures all
// output. Running out of lines returns io.EOF, which operations treat
// as an input failure.
type scriptConsole struct {
	lines []string
	out   strings.Builder
}

func newScriptConsole(lines ...string) *scriptConsole {
	return &scriptConsole{lines: lines}
}

func (c *scriptConsole) ReadLine(prompt string) (string, error) {
	c.out.WriteString(prompt)
	if len(c.lines) == 0 {
		return "", io.EOF
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	c.out.WriteString(line + "\n")
	return line, nil
}

func (c *scriptConsole) Printf(format string, args ...any) {
	fmt.Fprintf(&c.out, format, args...)
}

func (c *scriptConsole) output() string { return c.out.String() }

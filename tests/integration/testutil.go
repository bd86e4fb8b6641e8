// Package integration exercises the record keeper end to end over the
// real SQLite workbook store.
package integration

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forever-home/friends/internal/records"
	"github.com/forever-home/friends/internal/sheet"
	"github.com/forever-home/friends/pkg/types"
)

// ScriptConsole feeds fixed input lines and captures all output.
type ScriptConsole struct {
	lines []string
	out   strings.Builder
}

// NewScriptConsole creates a console that will answer prompts with the
// given lines in order.
func NewScriptConsole(lines ...string) *ScriptConsole {
	return &ScriptConsole{lines: lines}
}

func (c *ScriptConsole) ReadLine(prompt string) (string, error) {
	c.out.WriteString(prompt)
	if len(c.lines) == 0 {
		return "", io.EOF
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	c.out.WriteString(line + "\n")
	return line, nil
}

func (c *ScriptConsole) Printf(format string, args ...any) {
	fmt.Fprintf(&c.out, format, args...)
}

// Output returns everything printed so far.
func (c *ScriptConsole) Output() string { return c.out.String() }

// OpenStore opens a workbook store over dir, registering cleanup.
func OpenStore(t *testing.T, dir string) *sheet.Store {
	t.Helper()
	store := sheet.NewStore()
	config := types.Config{Backend: types.BackendSQLite, DataDir: dir}
	require.NoError(t, store.Open(config))
	t.Cleanup(func() { store.Close() })
	return store
}

// Registry builds a records.Registry over the store with a scripted
// console answering the given lines.
func Registry(t *testing.T, store *sheet.Store, lines ...string) (*records.Registry, *ScriptConsole) {
	t.Helper()
	console := NewScriptConsole(lines...)
	registry, err := records.FromWorkbook(store, console)
	require.NoError(t, err)
	return registry, console
}

// SheetRows scans a sheet and returns all rows including the header.
func SheetRows(t *testing.T, store *sheet.Store, name string) []types.Row {
	t.Helper()
	table, err := store.Sheet(name)
	require.NoError(t, err)
	rows, err := table.ScanAll()
	require.NoError(t, err)
	return rows
}

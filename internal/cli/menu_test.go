package cli

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forever-home/friends/internal/records"
	"github.com/forever-home/friends/internal/sheet"
	"github.com/forever-home/friends/pkg/types"
)

// scriptConsole feeds fixed input lines and captures output, so menu
// sessions can run without a terminal.
type scriptConsole struct {
	lines []string
	out   strings.Builder
}

func (c *scriptConsole) ReadLine(prompt string) (string, error) {
	c.out.WriteString(prompt)
	if len(c.lines) == 0 {
		return "", io.EOF
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, nil
}

func (c *scriptConsole) Printf(format string, args ...any) {
	fmt.Fprintf(&c.out, format, args...)
}

// newMenu builds a Menu over a real store in a temp directory.
func newMenu(t *testing.T, console records.Console) *Menu {
	t.Helper()
	store := sheet.NewStore()
	config := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
	require.NoError(t, store.Open(config))
	t.Cleanup(func() { store.Close() })

	registry, err := records.FromWorkbook(store, console)
	require.NoError(t, err)
	return NewMenu(registry, console)
}

func TestMenuExitImmediately(t *testing.T) {
	console := &scriptConsole{lines: []string{"8"}}
	menu := newMenu(t, console)

	require.NoError(t, menu.Run())
	assert.Contains(t, console.out.String(), "Welcome to Forever Home Friends!")
	assert.Contains(t, console.out.String(), "Thank you for using Forever Home Friends!")
}

func TestMenuInvalidChoiceWarns(t *testing.T) {
	console := &scriptConsole{lines: []string{"9", "", "8"}}
	menu := newMenu(t, console)

	require.NoError(t, menu.Run())
	assert.Contains(t, console.out.String(), "Invalid choice. Please enter a number between 1 and 8.")
}

func TestMenuRunsOperationAndReturns(t *testing.T) {
	console := &scriptConsole{lines: []string{
		"1", "ann", "lee", "10", // add a child
		"", // return to menu
		"8",
	}}
	menu := newMenu(t, console)

	require.NoError(t, menu.Run())
	output := console.out.String()
	assert.Contains(t, output, "Child 'Ann Lee' added successfully!")
	assert.Contains(t, output, "Assigned ID: 1")
	assert.Contains(t, output, "Press Enter to return to the main menu...")
}

func TestMenuEndsCleanlyOnEOF(t *testing.T) {
	console := &scriptConsole{lines: []string{"4"}}
	menu := newMenu(t, console)

	// The operation runs out of scripted input mid-prompt; the menu
	// treats the ended stream as a normal session end.
	require.NoError(t, menu.Run())
}

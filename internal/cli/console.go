// Package cli implements the operator-facing surface of the record
// keeper: the terminal console and the numbered main menu loop.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TerminalConsole implements records.Console over a reader/writer
// pair, normally os.Stdin and os.Stdout.
type TerminalConsole struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalConsole wraps the given input and output streams.
func NewTerminalConsole(in io.Reader, out io.Writer) *TerminalConsole {
	return &TerminalConsole{in: bufio.NewReader(in), out: out}
}

// ReadLine prints the prompt without a newline and reads one input
// line. A final unterminated line at EOF is returned without error;
// EOF with no pending input is returned as io.EOF.
func (c *TerminalConsole) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Printf writes formatted output to the operator.
func (c *TerminalConsole) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

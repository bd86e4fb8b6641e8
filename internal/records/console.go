package records

// Console is the line-based prompt/response surface the record
// operations talk to. The terminal implementation lives in the CLI;
// tests inject a scripted console.
type Console interface {
	// ReadLine displays prompt and returns the next input line without
	// its trailing newline. An error means the input source failed, and
	// aborts the enclosing operation.
	ReadLine(prompt string) (string, error)

	// Printf writes formatted output to the operator.
	Printf(format string, args ...any)
}

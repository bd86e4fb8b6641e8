package records

import "strings"

// promptInput repeatedly displays prompt and reads one line until the
// trimmed input is non-empty and valid returns true. Invalid input
// prints errMsg and re-prompts; the loop never gives up. The only
// error returned is a console read failure.
func (r *Registry) promptInput(prompt string, valid func(string) bool, errMsg string) (string, error) {
	for {
		line, err := r.console.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		input := strings.TrimSpace(line)
		if input == "" {
			r.console.Printf("Warning: Input cannot be empty. Please try again.\n")
			continue
		}
		if valid(input) {
			return input, nil
		}
		r.console.Printf("%s\n", errMsg)
	}
}

// confirm asks a yes/no question and reads lines until the answer is
// "y" or "n" (case-insensitive).
func (r *Registry) confirm(prompt string) (bool, error) {
	for {
		line, err := r.console.ReadLine(prompt + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			r.console.Printf("Warning: Please enter 'y' or 'n'.\n")
		}
	}
}

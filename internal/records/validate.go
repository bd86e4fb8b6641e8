package records

import (
	"strconv"
	"strings"
	"unicode"
)

// isDigits reports whether s is non-empty and every character is an
// ASCII decimal digit. No sign, no spaces; callers pre-trim input.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// inRange reports whether s is a digit string whose value lies in
// [min, max] inclusive.
func inRange(s string, min, max int) bool {
	if !isDigits(s) {
		return false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return min <= v && v <= max
}

// capitalize upper-cases the first rune and lower-cases the rest, the
// normalization applied to every stored name. Owners rows are keyed by
// the capitalized full name, so lookups and writes must agree on it.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	r := []rune(lower)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

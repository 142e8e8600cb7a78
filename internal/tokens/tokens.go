// Package tokens splits raw argument strings into tokens the way the dumping
// tools' own command lines are read: whitespace separates tokens, and a
// double-quoted span stays inside its token, quotes included.
package tokens

import (
	"strings"
	"unicode"
)

// Join space-joins tokens back into a single argument string.
func Join(toks []string) string {
	return strings.Join(toks, " ")
}

// Split tokenizes raw. It never fails: an unterminated quote runs to the end
// of the string. Tokens are slices of raw, so bytes that are not valid UTF-8
// come back unchanged.
func Split(raw string) []string {
	var (
		out     []string
		inQuote bool
	)

	start := -1

	for i, r := range raw {
		switch {
		case r == '"':
			inQuote = !inQuote
		case !inQuote && unicode.IsSpace(r):
			if start >= 0 {
				out = append(out, raw[start:i])
				start = -1
			}

			continue
		}

		if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		out = append(out, raw[start:])
	}

	return out
}

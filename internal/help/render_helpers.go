package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StripANSI removes ANSI escape codes from a string for length calculation.
func StripANSI(s string) string {
	var result strings.Builder

	inEscape := false

	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}

		if inEscape {
			if r == 'm' {
				inEscape = false
			}

			continue
		}

		result.WriteRune(r)
	}

	return result.String()
}

// WriteExample writes one example: an optional title line, then the indented code.
func WriteExample(w io.Writer, title, code string) {
	if title != "" {
		_, _ = fmt.Fprintf(w, "  %s:\n", title)
	}

	_, _ = fmt.Fprintf(w, "    %s\n", code)
}

func joinNote(desc, note string) string {
	if desc == "" {
		return note
	}

	return desc + " " + note
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

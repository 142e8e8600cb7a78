// Package help rendering functions.
// This file handles the actual rendering of help content with proper styling.

package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render writes the help content to w.
func Render(w io.Writer, b *ContentBuilder) error {
	if _, err := io.WriteString(w, b.Render()); err != nil {
		return fmt.Errorf("writing help: %w", err)
	}

	return nil
}

// Render returns the help text. Sections come in a fixed order (description,
// usage, global flags, formats, positionals, flags, commands, examples) and
// empty ones are left out.
func (b *ContentBuilder) Render() string {
	var sb strings.Builder

	if b.description != "" {
		sb.WriteString(b.description + "\n\n")
	}

	if b.usage != "" {
		b.header(&sb, "Usage")
		sb.WriteString("  " + b.usage + "\n\n")
	}

	b.flagSection(&sb, "Global flags", b.globalFlags)

	if len(b.formats) > 0 {
		b.header(&sb, "Formats")

		rows := make([]row, 0, len(b.formats))
		for _, f := range b.formats {
			rows = append(rows, row{b.styles.Placeholder.Render(f.Name), f.Desc})
		}

		writeRows(&sb, rows)
	}

	if len(b.positionals) > 0 {
		b.header(&sb, "Positionals")

		rows := make([]row, 0, len(b.positionals))
		for _, p := range b.positionals {
			rows = append(rows, row{
				b.styles.Placeholder.Render("<" + p.Name + ">"),
				joinNote(p.Desc, b.styles.Note.Render("("+p.Kind+")")),
			})
		}

		writeRows(&sb, rows)
	}

	b.flagSection(&sb, "Flags", b.commandFlags)

	if len(b.commands) > 0 {
		b.header(&sb, "Commands")

		rows := make([]row, 0, len(b.commands))
		for _, c := range b.commands {
			desc := c.Desc
			if c.Dumping {
				desc = joinNote(desc, b.styles.Note.Render("(dumps)"))
			}

			rows = append(rows, row{b.styles.Command.Render(c.Name), desc})
		}

		writeRows(&sb, rows)
	}

	if len(b.examples) > 0 {
		b.header(&sb, "Examples")

		for _, e := range b.examples {
			WriteExample(&sb, e.Title, e.Code)
		}

		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func (b *ContentBuilder) flagSection(sb *strings.Builder, title string, flags []Flag) {
	if len(flags) == 0 {
		return
	}

	b.header(sb, title)

	rows := make([]row, 0, len(flags))
	for _, f := range flags {
		rows = append(rows, row{b.flagSpelling(f), f.Desc})
	}

	writeRows(sb, rows)
}

func (b *ContentBuilder) flagSpelling(f Flag) string {
	var sb strings.Builder

	if f.Short != "" {
		sb.WriteString(b.styles.Flag.Render(f.Short) + ", ")
	}

	sb.WriteString(b.styles.Flag.Render(f.Long))

	if f.Placeholder == "" {
		return sb.String()
	}

	sep := " "
	if f.Separator == '=' {
		sep = "="
	}

	placeholder := b.styles.Placeholder.Render(f.Placeholder)

	switch {
	case f.Optional && sep == "=":
		sb.WriteString("[=" + placeholder + "]")
	case f.Optional:
		sb.WriteString(" [" + placeholder + "]")
	default:
		sb.WriteString(sep + placeholder)
	}

	return sb.String()
}

func (b *ContentBuilder) header(sb *strings.Builder, title string) {
	sb.WriteString(b.styles.Header.Render(title+":") + "\n")
}

type row struct {
	left  string
	right string
}

// writeRows writes two-column rows with the right column aligned. Widths are
// measured without ANSI codes.
func writeRows(sb *strings.Builder, rows []row) {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.left))
	}

	for _, r := range rows {
		line := "  " + padRight(r.left, width)
		if r.right != "" {
			line += "  " + r.right
		}

		sb.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	sb.WriteString("\n")
}

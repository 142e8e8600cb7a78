// Package help styling definitions.
// This file defines lipgloss styles for consistent terminal output.

package help

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles used for help rendering.
type Styles struct {
	// Header is the style for section headers (bold).
	Header lipgloss.Style

	// Command is the style for command spellings (green).
	Command lipgloss.Style

	// Flag is the style for flag spellings (cyan).
	Flag lipgloss.Style

	// Placeholder is the style for placeholder values (yellow).
	Placeholder lipgloss.Style

	// Note is the style for trailing annotations such as "(dumps)" (faint).
	Note lipgloss.Style
}

// DefaultStyles returns the standard styles for help output.
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true),
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // Green
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // Yellow
		Note:        lipgloss.NewStyle().Faint(true),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()

	return Styles{Header: plain, Command: plain, Flag: plain, Placeholder: plain, Note: plain}
}

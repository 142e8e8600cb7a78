// Package help content structures.
// This file defines the data types for help content elements.

package help

// Command represents a command entry in help output.
type Command struct {
	Name    string
	Desc    string
	Dumping bool
}

// ContentBuilder holds all help content before rendering.
// Fields are unexported; use builder methods to populate.
type ContentBuilder struct {
	name         string
	description  string
	usage        string
	globalFlags  []Flag
	formats      []Format
	positionals  []Positional
	commandFlags []Flag
	commands     []Command
	examples     []Example
	styles       Styles
}

// Example represents a usage example with title and code.
type Example struct {
	Title string
	Code  string
}

// Flag represents a command-line flag.
type Flag struct {
	Long        string
	Short       string
	Desc        string
	Placeholder string
	// Optional marks a value that may be left off.
	Optional bool
	// Separator joins the spelling and placeholder: ' ' or '='.
	Separator byte
}

// Format represents a value format description (e.g., hex and suffix syntax).
type Format struct {
	Name string
	Desc string
}

// Positional represents a positional argument in command usage.
type Positional struct {
	Name string
	Kind string
	Desc string
}

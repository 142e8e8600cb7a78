package flags

import "github.com/toejough/discargs/internal/value"

// Placeholder describes a value format for flag arguments.
type Placeholder struct {
	Name   string // Display name in help, e.g., "<n>"
	Format string // Format description, e.g., "decimal or 0x hex"
}

// NeedsExplanation returns true if this placeholder has a non-obvious format.
func (p Placeholder) NeedsExplanation() bool {
	return p.Format != ""
}

// PlaceholderFor returns the placeholder shown for a def's value.
// Presence flags have none.
func PlaceholderFor(def Def) (Placeholder, bool) {
	switch {
	case def.Kind == value.Presence:
		return Placeholder{}, false
	case def.Kind == value.Bool:
		return placeholderBool(), true
	case def.Kind.IsInteger():
		return placeholderNumber(), true
	default:
		return placeholderText(), true
	}
}

// PlaceholdersUsedByFlags returns unique placeholders that need explanation
// from the given flag definitions.
func PlaceholdersUsedByFlags(defs []Def) []Placeholder {
	seen := make(map[string]bool)

	var result []Placeholder

	for _, def := range defs {
		p, ok := PlaceholderFor(def)
		if !ok || !p.NeedsExplanation() {
			continue
		}

		if seen[p.Name] {
			continue
		}

		seen[p.Name] = true
		result = append(result, p)
	}

	return result
}

func placeholderBool() Placeholder {
	return Placeholder{Name: "<true|false>"}
}

func placeholderNumber() Placeholder {
	return Placeholder{
		Name:   "<n>",
		Format: "decimal or 0x hex, optional unit suffix c=1 w=2 d=4 q=8 k=1024 M=1024^2 G=1024^3; " +
			"a trailing c or d is always a suffix, so write hex digits in upper case (0x1D)",
	}
}

func placeholderText() Placeholder {
	return Placeholder{Name: "<text>", Format: `quote with "..." when it contains spaces`}
}

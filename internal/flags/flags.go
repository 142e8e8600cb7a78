// Package flags provides the flag registry a dialect declares its vocabulary with.
// Parsing, generation, and help all derive from the registry.
package flags

import (
	"errors"
	"fmt"
	"strings"

	"github.com/toejough/discargs/internal/value"
)

// Exported variables.
var (
	ErrDuplicateName     = errors.New("flag name already registered")
	ErrDuplicateSpelling = errors.New("flag spelling already registered")
	ErrEmptySpelling     = errors.New("flag has no long spelling")
)

// Def describes one flag of a dialect.
type Def struct {
	Name     Name         // identifier, e.g. "retry-passes"
	Long     string       // full spelling, e.g. "--retry-passes" or "/c2"
	Short    string       // full short spelling, e.g. "-p" (empty if none)
	Kind     value.Kind   // value type carried by the flag
	Range    *value.Range // inclusive bound for integer kinds (nil = kind limits)
	Optional bool         // value may be omitted; a bare flag is present without value
	Desc     string       // help text
}

// AllowsBare reports whether the flag may appear without a value token.
// Presence and boolean flags are always allowed bare.
func (d Def) AllowsBare() bool {
	return d.Kind == value.Presence || d.Kind == value.Bool || d.Optional
}

// Spec returns the codec spec for the flag's value.
func (d Def) Spec(foldBool bool) value.Spec {
	return value.Spec{Kind: d.Kind, Range: d.Range, FoldBool: foldBool}
}

// Spellings returns the non-empty spellings, short first.
func (d Def) Spellings() []string {
	if d.Short == "" {
		return []string{d.Long}
	}

	return []string{d.Short, d.Long}
}

// TakesValue reports whether the flag carries a value at all.
func (d Def) TakesValue() bool {
	return d.Kind != value.Presence
}

// Match is the result of resolving a token against a registry.
type Match struct {
	Def       Def
	Inline    string // value after "=" in "--long=value"
	HasInline bool
}

// Name identifies a flag within one dialect.
type Name string

// Registry holds a dialect's flag defs in declaration order.
type Registry struct {
	defs       []Def
	byName     map[Name]int
	bySpelling map[string]int
}

// NewRegistry builds a registry, rejecting duplicate names and spellings.
func NewRegistry(defs ...Def) (*Registry, error) {
	r := &Registry{
		defs:       make([]Def, 0, len(defs)),
		byName:     make(map[Name]int, len(defs)),
		bySpelling: make(map[string]int, 2*len(defs)),
	}

	for _, def := range defs {
		if def.Long == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptySpelling, def.Name)
		}

		if _, ok := r.byName[def.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, def.Name)
		}

		for _, spelling := range def.Spellings() {
			if _, ok := r.bySpelling[spelling]; ok {
				return nil, fmt.Errorf("%w: %s (%s)", ErrDuplicateSpelling, spelling, def.Name)
			}

			r.bySpelling[spelling] = len(r.defs)
		}

		r.byName[def.Name] = len(r.defs)
		r.defs = append(r.defs, def)
	}

	return r, nil
}

// All returns the defs in declaration order.
func (r *Registry) All() []Def {
	out := make([]Def, len(r.defs))
	copy(out, r.defs)

	return out
}

// Find resolves arg (e.g. "--speed", "-p", "--speed=8", "/c2") to a flag def.
func (r *Registry) Find(arg string) (Match, bool) {
	if i, ok := r.bySpelling[arg]; ok {
		return Match{Def: r.defs[i]}, true
	}

	spelling, inline, found := strings.Cut(arg, "=")
	if !found {
		return Match{}, false
	}

	i, ok := r.bySpelling[spelling]
	if !ok {
		return Match{}, false
	}

	return Match{Def: r.defs[i], Inline: inline, HasInline: true}, true
}

// Len returns the number of registered flags.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Lookup returns the def registered under name.
func (r *Registry) Lookup(name Name) (Def, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Def{}, false
	}

	return r.defs[i], true
}

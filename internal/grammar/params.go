package grammar

import (
	"fmt"
	"maps"

	"github.com/toejough/discargs/internal/flags"
	"github.com/toejough/discargs/internal/value"
)

// FlagState is the state of one flag in a parameter set.
type FlagState struct {
	Mode  Mode
	Value value.Value // meaningful only when Mode is PresentWithValue
}

// Present reports whether the flag is given at all.
func (s FlagState) Present() bool {
	return s.Mode != Absent
}

// String renders the state for diagnostics.
func (s FlagState) String() string {
	switch s.Mode {
	case Absent:
		return "absent"
	case PresentNoValue:
		return "present"
	case PresentWithValue:
		return fmt.Sprintf("present (%s %s)", s.Value.Kind(), value.Encode(s.Value))
	default:
		return fmt.Sprintf("mode(%d)", int(s.Mode))
	}
}

// Mode tells whether a flag is absent, present bare, or present with a value.
type Mode int

// Mode values.
const (
	Absent Mode = iota
	PresentNoValue
	PresentWithValue
)

// Params is the structured form of one tool invocation: a command, the flags
// given, and the positional values. It is not safe for concurrent use.
type Params struct {
	dialect     *Dialect
	command     Command
	flags       map[flags.Name]FlagState
	positionals map[PositionalName]value.Value
}

// Clear makes a flag absent.
func (p *Params) Clear(name flags.Name) {
	delete(p.flags, name)
}

// Clone returns an independent copy.
func (p *Params) Clone() *Params {
	return &Params{
		dialect:     p.dialect,
		command:     p.command,
		flags:       maps.Clone(p.flags),
		positionals: maps.Clone(p.positionals),
	}
}

// Command returns the current command; None when unset.
func (p *Params) Command() Command {
	return p.command
}

// Dialect returns the dialect the parameters belong to.
func (p *Params) Dialect() *Dialect {
	return p.dialect
}

// Equal reports whether both sets name the same dialect, command, flags, and
// positionals.
func (p *Params) Equal(other *Params) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.dialect == other.dialect &&
		p.command == other.command &&
		maps.Equal(p.flags, other.flags) &&
		maps.Equal(p.positionals, other.positionals)
}

// Flag returns the state of a flag. Unknown flags read as absent.
func (p *Params) Flag(name flags.Name) FlagState {
	return p.flags[name]
}

// IsDumping reports whether the current command reads a disc.
func (p *Params) IsDumping() bool {
	def, _ := p.dialect.Command(p.command)

	return def.Dumping
}

// Positional returns a positional value and whether it is set.
func (p *Params) Positional(name PositionalName) (value.Value, bool) {
	v, ok := p.positionals[name]

	return v, ok
}

// Present returns the names of the flags given, in declaration order.
func (p *Params) Present() []flags.Name {
	out := make([]flags.Name, 0, len(p.flags))

	for _, def := range p.dialect.registry.All() {
		if p.flags[def.Name].Present() {
			out = append(out, def.Name)
		}
	}

	return out
}

// Set marks a flag present without a value. Only presence, boolean, and
// optional-valued flags may be given bare.
func (p *Params) Set(name flags.Name) error {
	def, err := p.lookup(name)
	if err != nil {
		return err
	}

	if !def.AllowsBare() {
		return fmt.Errorf("%w: %s", ErrMissingValue, name)
	}

	p.flags[name] = FlagState{Mode: PresentNoValue}

	return nil
}

// SetBool gives a boolean flag a value.
func (p *Params) SetBool(name flags.Name, b bool) error {
	return p.SetValue(name, value.OfBool(b))
}

// SetCommand selects the command. None clears it.
func (p *Params) SetCommand(cmd Command) error {
	if _, ok := p.dialect.commands[cmd]; !ok && cmd != None {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}

	p.command = cmd

	return nil
}

// SetInt gives an integer flag a value of its declared width.
func (p *Params) SetInt(name flags.Name, n int64) error {
	def, err := p.lookup(name)
	if err != nil {
		return err
	}

	v, err := value.OfInt(def.Kind, n)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidValue, name, err)
	}

	return p.SetValue(name, v)
}

// SetPositional sets a positional value after checking it against the catalog.
func (p *Params) SetPositional(name PositionalName, v value.Value) error {
	def, ok := p.dialect.positionals[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPositional, name)
	}

	if err := def.Spec().Check(v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidValue, name, err)
	}

	p.positionals[name] = v

	return nil
}

// SetString gives a string flag a value.
func (p *Params) SetString(name flags.Name, s string) error {
	return p.SetValue(name, value.OfString(s))
}

// SetValue marks a flag present with v, which must match the flag's kind and range.
func (p *Params) SetValue(name flags.Name, v value.Value) error {
	def, err := p.lookup(name)
	if err != nil {
		return err
	}

	if def.Kind == value.Presence {
		return fmt.Errorf("%w: %s", ErrUnexpectedValue, name)
	}

	if err := p.dialect.spec(def).Check(v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidValue, name, err)
	}

	p.flags[name] = FlagState{Mode: PresentWithValue, Value: v}

	return nil
}

// Supported returns a copy keeping only what Generate writes: flags valid for
// the current command (or global flags) and the command's own positionals.
func (p *Params) Supported() *Params {
	out := p.dialect.NewParams()
	out.command = p.command

	for name, state := range p.flags {
		if state.Present() && (p.dialect.Supports(name, p.command) || p.dialect.Supports(name, None)) {
			out.flags[name] = state
		}
	}

	def, _ := p.dialect.Command(p.command)
	for _, name := range def.Positionals {
		if v, ok := p.positionals[name]; ok {
			out.positionals[name] = v
		}
	}

	return out
}

func (p *Params) lookup(name flags.Name) (flags.Def, error) {
	def, ok := p.dialect.registry.Lookup(name)
	if !ok {
		return flags.Def{}, fmt.Errorf("%w: %s", ErrUnknownFlag, name)
	}

	return def, nil
}

// Spec returns the codec spec for the positional's value.
func (d PositionalDef) Spec() value.Spec {
	return value.Spec{Kind: d.Kind, Range: d.Range}
}

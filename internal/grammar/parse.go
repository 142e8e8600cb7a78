package grammar

import (
	"errors"
	"fmt"

	"github.com/toejough/discargs/internal/flags"
	"github.com/toejough/discargs/internal/tokens"
	"github.com/toejough/discargs/internal/value"
)

// Parse reads an argument string into a parameter set. Global flags come first,
// then the command, then its flags and positionals in the dialect's layout.
// Any unknown, unsupported, duplicated, malformed, missing, or leftover token
// fails the whole parse.
func (d *Dialect) Parse(raw string) (*Params, error) {
	ps := &parser{dialect: d, toks: tokens.Split(raw), params: d.NewParams()}

	if err := ps.run(); err != nil {
		return nil, err
	}

	return ps.params, nil
}

type parser struct {
	dialect *Dialect
	toks    []string
	pos     int
	params  *Params
}

func (ps *parser) command() error {
	if ps.done() {
		return ErrNoCommand
	}

	if ps.pos+1 < len(ps.toks) {
		if cmd, ok := ps.dialect.spellings[ps.toks[ps.pos]+" "+ps.toks[ps.pos+1]]; ok {
			ps.params.command = cmd
			ps.pos += 2

			return nil
		}
	}

	cmd, ok := ps.dialect.spellings[ps.toks[ps.pos]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, ps.toks[ps.pos])
	}

	ps.params.command = cmd
	ps.pos++

	return nil
}

func (ps *parser) commandFlags(untilEnd bool) error {
	for !ps.done() {
		tok := ps.toks[ps.pos]

		m, ok := ps.dialect.registry.Find(tok)
		if !ok {
			if untilEnd {
				return fmt.Errorf("%w: %q", ErrTrailingTokens, tok)
			}

			return nil
		}

		if !ps.dialect.Supports(m.Def.Name, ps.params.command) {
			return fmt.Errorf("%w: %s with %s", ErrUnsupportedFlag, tok, ps.params.command)
		}

		if err := ps.flag(m); err != nil {
			return err
		}
	}

	return nil
}

func (ps *parser) done() bool {
	return ps.pos >= len(ps.toks)
}

// flag consumes the flag token at pos and, when it takes one, its value.
func (ps *parser) flag(m flags.Match) error {
	def := m.Def
	ps.pos++

	if ps.params.flags[def.Name].Present() {
		return fmt.Errorf("%w: %s", ErrDuplicateFlag, def.Name)
	}

	spec := ps.dialect.spec(def)

	switch {
	case def.Kind == value.Presence:
		if m.HasInline {
			return fmt.Errorf("%w: %s=%s", ErrUnexpectedValue, def.Name, m.Inline)
		}

		ps.params.flags[def.Name] = FlagState{Mode: PresentNoValue}
	case m.HasInline:
		v, err := spec.Decode(m.Inline)

		switch {
		case err == nil:
			ps.params.flags[def.Name] = FlagState{Mode: PresentWithValue, Value: v}
		case errors.Is(err, value.ErrMissing) && def.AllowsBare():
			ps.params.flags[def.Name] = FlagState{Mode: PresentNoValue}
		default:
			return valueError(def.Name, err)
		}
	case ps.dialect.Separator() == '=' || def.AllowsBare():
		if !def.AllowsBare() {
			return fmt.Errorf("%w: %s", ErrMissingValue, def.Name)
		}

		ps.params.flags[def.Name] = ps.optionalValue(def)
	default:
		if ps.done() {
			return fmt.Errorf("%w: %s", ErrMissingValue, def.Name)
		}

		v, err := spec.Decode(ps.toks[ps.pos])
		if err != nil {
			return valueError(def.Name, err)
		}

		ps.pos++
		ps.params.flags[def.Name] = FlagState{Mode: PresentWithValue, Value: v}
	}

	return nil
}

// globals consumes the flags written before the command.
func (ps *parser) globals() error {
	for !ps.done() {
		tok := ps.toks[ps.pos]

		m, ok := ps.dialect.registry.Find(tok)
		if !ok {
			return nil
		}

		if !ps.dialect.Supports(m.Def.Name, None) {
			return fmt.Errorf("%w: %s given before a command", ErrUnsupportedFlag, tok)
		}

		if err := ps.flag(m); err != nil {
			return err
		}
	}

	return nil
}

// optionalValue takes the next token as the flag's value when it is not a flag
// itself and decodes; otherwise the flag is present without a value.
func (ps *parser) optionalValue(def flags.Def) FlagState {
	if ps.done() || ps.dialect.Separator() == '=' {
		return FlagState{Mode: PresentNoValue}
	}

	next := ps.toks[ps.pos]
	if _, ok := ps.dialect.registry.Find(next); ok {
		return FlagState{Mode: PresentNoValue}
	}

	v, err := ps.dialect.spec(def).Decode(next)
	if err != nil {
		return FlagState{Mode: PresentNoValue}
	}

	ps.pos++

	return FlagState{Mode: PresentWithValue, Value: v}
}

func (ps *parser) positionals() error {
	def, _ := ps.dialect.Command(ps.params.command)

	for _, name := range def.Positionals {
		if ps.done() {
			return fmt.Errorf("%w: %s needs %s", ErrMissingPositional, def.ID, name)
		}

		v, err := ps.dialect.positionals[name].Spec().Decode(ps.toks[ps.pos])

		switch {
		case errors.Is(err, value.ErrMissing):
			return fmt.Errorf("%w: %s needs %s", ErrMissingPositional, def.ID, name)
		case err != nil:
			return fmt.Errorf("%w: %s: %w", ErrInvalidValue, name, err)
		}

		ps.params.positionals[name] = v
		ps.pos++
	}

	return nil
}

func (ps *parser) run() error {
	if err := ps.globals(); err != nil {
		return err
	}

	if err := ps.command(); err != nil {
		return err
	}

	var err error

	switch ps.dialect.Layout() {
	case FlagsThenPositionals:
		err = ps.commandFlags(false)
		if err == nil {
			err = ps.positionals()
		}
	case PositionalsThenFlags:
		err = ps.positionals()
		if err == nil {
			err = ps.commandFlags(true)
		}
	}

	if err != nil {
		return err
	}

	if !ps.done() {
		return fmt.Errorf("%w: %q", ErrTrailingTokens, tokens.Join(ps.toks[ps.pos:]))
	}

	return nil
}

func valueError(name flags.Name, err error) error {
	if errors.Is(err, value.ErrMissing) {
		return fmt.Errorf("%w: %s", ErrMissingValue, name)
	}

	return fmt.Errorf("%w: %s: %w", ErrInvalidValue, name, err)
}

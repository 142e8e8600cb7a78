package grammar

import (
	"fmt"
	"strings"

	"github.com/toejough/discargs/internal/flags"
	"github.com/toejough/discargs/internal/tokens"
	"github.com/toejough/discargs/internal/value"
)

// Generate writes the parameters as the tool's argument string: global flags,
// the command, then the command's flags and positionals in the dialect's layout.
// Flags the command does not support are skipped. Generation fails rather than
// produce text that Parse would read back differently.
func (p *Params) Generate() (string, error) {
	if p.command == None {
		return "", ErrNoCommand
	}

	def, _ := p.dialect.Command(p.command)
	w := &writer{dialect: p.dialect, bare: make(map[int]flags.Def)}

	if err := p.writeFlags(w, None); err != nil {
		return "", err
	}

	w.toks = append(w.toks, strings.Fields(def.Spelling)...)

	positionals, err := p.positionalTokens(def)
	if err != nil {
		return "", err
	}

	switch p.dialect.Layout() {
	case FlagsThenPositionals:
		if err := p.writeFlags(w, p.command); err != nil {
			return "", err
		}

		if len(positionals) > 0 {
			if _, ok := p.dialect.registry.Find(positionals[0]); ok {
				return "", fmt.Errorf("%w: positional %q reads as a flag", ErrAmbiguous, positionals[0])
			}
		}

		w.toks = append(w.toks, positionals...)
	case PositionalsThenFlags:
		w.toks = append(w.toks, positionals...)

		if err := p.writeFlags(w, p.command); err != nil {
			return "", err
		}
	}

	if err := w.checkBare(); err != nil {
		return "", err
	}

	return tokens.Join(w.toks), nil
}

func (p *Params) positionalTokens(def CommandDef) ([]string, error) {
	out := make([]string, 0, len(def.Positionals))

	for _, name := range def.Positionals {
		v, ok := p.positionals[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s needs %s", ErrMissingPositional, def.ID, name)
		}

		text, err := encode(string(name), v)
		if err != nil {
			return nil, err
		}

		out = append(out, text)
	}

	return out, nil
}

// writeFlags appends, in declaration order, every present flag supported by cmd.
func (p *Params) writeFlags(w *writer, cmd Command) error {
	for _, def := range p.dialect.registry.All() {
		state := p.flags[def.Name]
		if !state.Present() || !p.dialect.Supports(def.Name, cmd) {
			continue
		}

		if err := w.flag(def, state); err != nil {
			return err
		}
	}

	return nil
}

type writer struct {
	dialect *Dialect
	toks    []string
	// bare holds the token index of each valued flag written without its value.
	bare map[int]flags.Def
}

// checkBare fails when a bare flag is followed by a token the parser would
// take as that flag's value.
func (w *writer) checkBare() error {
	for i, def := range w.bare {
		if i+1 >= len(w.toks) {
			continue
		}

		next := w.toks[i+1]
		if _, ok := w.dialect.registry.Find(next); ok {
			continue
		}

		if _, err := w.dialect.spec(def).Decode(next); err == nil {
			return fmt.Errorf("%w: %q after bare %s reads as its value", ErrAmbiguous, next, def.Long)
		}
	}

	return nil
}

func (w *writer) flag(def flags.Def, state FlagState) error {
	if state.Mode == PresentNoValue || def.Kind == value.Presence {
		if !def.AllowsBare() {
			return fmt.Errorf("%w: %s", ErrMissingValue, def.Name)
		}

		w.toks = append(w.toks, def.Long)

		if def.TakesValue() && w.dialect.Separator() == ' ' {
			w.bare[len(w.toks)-1] = def
		}

		return nil
	}

	text, err := encode(string(def.Name), state.Value)
	if err != nil {
		return err
	}

	if w.dialect.Separator() == '=' {
		w.toks = append(w.toks, def.Long+"="+text)

		return nil
	}

	// A value that spells a flag would be read as the next flag when the value
	// is optional.
	if _, ok := w.dialect.registry.Find(text); ok && def.AllowsBare() {
		return fmt.Errorf("%w: %s value %q reads as a flag", ErrAmbiguous, def.Name, text)
	}

	w.toks = append(w.toks, def.Long, text)

	return nil
}

// encode renders a value as its token, refusing strings that cannot be quoted
// back to themselves.
func encode(name string, v value.Value) (string, error) {
	if v.Kind() == value.String {
		switch {
		case strings.Contains(v.Text(), `"`):
			return "", fmt.Errorf("%w: %s value %q contains a double quote", ErrAmbiguous, name, v.Text())
		case strings.TrimSpace(v.Text()) == "":
			return "", fmt.Errorf("%w: %s value is blank", ErrAmbiguous, name)
		}
	}

	return value.Encode(v), nil
}

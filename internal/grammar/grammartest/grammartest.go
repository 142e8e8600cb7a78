// Package grammartest provides property checks every dialect must pass.
package grammartest

import (
	"errors"
	"slices"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/discargs/internal/flags"
	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/value"
)

// CheckRoundTrip checks that every generated string parses back to the
// supported part of the parameters it came from, and regenerates unchanged.
func CheckRoundTrip(t *testing.T, d *grammar.Dialect) {
	t.Helper()

	rapid.Check(t, func(rt *rapid.T) {
		RoundTrip(rt, DrawParams(rt, d))
	})
}

// CheckSymmetry checks that Supports, SupportedCommands, and Parse agree on
// every flag and command.
func CheckSymmetry(t *testing.T, d *grammar.Dialect) {
	t.Helper()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)
		def := rapid.SampledFrom(d.Flags().All()).Draw(rt, "flag")
		cmd := rapid.SampledFrom(d.Commands()).Draw(rt, "command")

		supported := d.Supports(def.Name, cmd.ID)
		g.Expect(slices.Contains(d.SupportedCommands(def.Name), cmd.ID)).To(Equal(supported))

		_, err := d.Parse(RawWithFlag(d, cmd, def))
		if supported {
			g.Expect(err).NotTo(HaveOccurred())
		} else {
			g.Expect(err).To(MatchError(grammar.ErrUnsupportedFlag))
		}
	})
}

// DrawParams draws a parameter set with a command and every positional it needs.
func DrawParams(rt *rapid.T, d *grammar.Dialect) *grammar.Params {
	p := d.NewParams()
	cmd := rapid.SampledFrom(d.Commands()).Draw(rt, "command")

	if err := p.SetCommand(cmd.ID); err != nil {
		rt.Fatalf("set command: %v", err)
	}

	for _, def := range d.Flags().All() {
		label := string(def.Name)

		switch drawMode(rt, def, label) {
		case grammar.Absent:
		case grammar.PresentNoValue:
			if err := p.Set(def.Name); err != nil {
				rt.Fatalf("set %s: %v", label, err)
			}
		case grammar.PresentWithValue:
			if err := p.SetValue(def.Name, DrawValue(rt, def.Kind, def.Range, label)); err != nil {
				rt.Fatalf("set %s: %v", label, err)
			}
		}
	}

	for _, name := range cmd.Positionals {
		pd, _ := d.Positional(name)

		if err := p.SetPositional(name, DrawValue(rt, pd.Kind, pd.Range, string(name))); err != nil {
			rt.Fatalf("set %s: %v", name, err)
		}
	}

	return p
}

// DrawValue draws a value of kind within bounds. Strings are drawn path-like
// or as arbitrary bytes, invalid UTF-8 included.
func DrawValue(rt *rapid.T, kind value.Kind, bounds *value.Range, label string) value.Value {
	switch kind {
	case value.Bool:
		return value.OfBool(rapid.Bool().Draw(rt, label))
	case value.String:
		return value.OfString(rapid.OneOf(
			rapid.StringMatching(`[A-Za-z0-9._:\\/-][A-Za-z0-9 ._:\\/-]{0,15}`),
			rapid.String(),
			rapid.Map(rapid.SliceOfN(rapid.Byte(), 1, 16), func(b []byte) string { return string(b) }),
		).Draw(rt, label))
	default:
		lo, hi := kind.Limits()
		if bounds != nil {
			lo, hi = max(lo, bounds.Min), min(hi, bounds.Max)
		}

		v, err := value.OfInt(kind, rapid.Int64Range(lo, hi).Draw(rt, label))
		if err != nil {
			rt.Fatalf("draw %s: %v", label, err)
		}

		return v
	}
}

// RawWithFlag writes cmd with every positional filled and def given once with
// a valid value.
func RawWithFlag(d *grammar.Dialect, cmd grammar.CommandDef, def flags.Def) string {
	flagText := def.Long

	if def.Kind != value.Presence {
		text := "1"

		switch def.Kind {
		case value.Bool:
			text = "true"
		case value.String:
			text = "v"
		default:
			if def.Range != nil && !def.Range.Contains(1) {
				text = "0"
			}
		}

		if d.Separator() == '=' {
			flagText += "=" + text
		} else {
			flagText += " " + text
		}
	}

	positionals := make([]string, 0, len(cmd.Positionals))
	for range cmd.Positionals {
		positionals = append(positionals, "9")
	}

	parts := []string{cmd.Spelling}
	if d.Layout() == grammar.PositionalsThenFlags {
		parts = append(parts, positionals...)
		parts = append(parts, flagText)
	} else {
		parts = append(parts, flagText)
		parts = append(parts, positionals...)
	}

	return strings.Join(parts, " ")
}

// RoundTrip checks one parameter set against the round-trip law. Parameters
// the generator refuses as ambiguous pass trivially.
func RoundTrip(rt *rapid.T, p *grammar.Params) {
	g := NewWithT(rt)

	text, err := p.Generate()
	if errors.Is(err, grammar.ErrAmbiguous) {
		return
	}

	g.Expect(err).NotTo(HaveOccurred())

	parsed, err := p.Dialect().Parse(text)
	g.Expect(err).NotTo(HaveOccurred(), "parsing %q", text)
	g.Expect(parsed.Equal(p.Supported())).To(BeTrue(), "round trip of %q", text)

	again, err := parsed.Generate()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(again).To(Equal(text))
}

func drawMode(rt *rapid.T, def flags.Def, label string) grammar.Mode {
	modes := []grammar.Mode{grammar.Absent}

	switch {
	case def.Kind == value.Presence:
		modes = append(modes, grammar.PresentNoValue)
	case def.AllowsBare():
		modes = append(modes, grammar.PresentNoValue, grammar.PresentWithValue)
	default:
		modes = append(modes, grammar.PresentWithValue)
	}

	return rapid.SampledFrom(modes).Draw(rt, label+" mode")
}

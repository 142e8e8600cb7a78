package help

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/toejough/discargs/internal/flags"
	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/value"
)

// ForCommand describes one command of d, looked up by spelling or ID: its
// usage, positionals, and every flag it accepts.
func ForCommand(d *grammar.Dialect, name string) (*ContentBuilder, error) {
	cmd, ok := findCommand(d, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", grammar.ErrUnknownCommand, name)
	}

	globals := flagDefs(d, grammar.None)
	local := flagDefs(d, cmd.ID)

	positionals := make([]grammar.PositionalDef, 0, len(cmd.Positionals))
	for _, pn := range cmd.Positionals {
		if def, ok := d.Positional(pn); ok {
			positionals = append(positionals, def)
		}
	}

	b := New(d.Executable()+" "+cmd.Spelling).
		WithDescription(cmd.Desc).
		WithUsage(commandUsage(d, cmd, len(globals) > 0, len(local) > 0)).
		AddGlobalFlags(helpFlags(d, globals)...).
		AddFormats(formats(slices.Concat(globals, local, positionalDefs(positionals)))...).
		AddCommandFlags(helpFlags(d, local)...)

	for _, p := range positionals {
		b.AddPositionals(Positional{Name: string(p.Name), Kind: p.Kind.String(), Desc: withRange(p.Desc, p.Range)})
	}

	return b, nil
}

// ForDialect describes a whole dialect: its usage, global flags, and commands.
func ForDialect(d *grammar.Dialect) *ContentBuilder {
	globals := flagDefs(d, grammar.None)

	usage := d.Executable()
	if len(globals) > 0 {
		usage += " [global flags...]"
	}

	b := New(d.Name()).
		WithDescription(fmt.Sprintf("Command line vocabulary of %s (%s).", d.Name(), layoutNote(d))).
		WithUsage(usage+" <command> ...").
		AddGlobalFlags(helpFlags(d, globals)...).
		AddFormats(formats(globals)...)

	for _, c := range d.Commands() {
		b.AddCommands(Command{Name: c.Spelling, Desc: c.Desc, Dumping: c.Dumping})
	}

	return b
}

func commandUsage(d *grammar.Dialect, cmd grammar.CommandDef, hasGlobals, hasFlags bool) string {
	parts := []string{d.Executable()}
	if hasGlobals {
		parts = append(parts, "[global flags...]")
	}

	parts = append(parts, cmd.Spelling)

	positionals := make([]string, 0, len(cmd.Positionals))
	for _, pn := range cmd.Positionals {
		positionals = append(positionals, "<"+string(pn)+">")
	}

	switch {
	case !hasFlags:
		parts = append(parts, positionals...)
	case d.Layout() == grammar.PositionalsThenFlags:
		parts = append(parts, positionals...)
		parts = append(parts, "[flags...]")
	default:
		parts = append(parts, "[flags...]")
		parts = append(parts, positionals...)
	}

	return strings.Join(parts, " ")
}

func findCommand(d *grammar.Dialect, name string) (grammar.CommandDef, bool) {
	for _, c := range d.Commands() {
		if c.Spelling == name || string(c.ID) == name {
			return c, true
		}
	}

	return grammar.CommandDef{}, false
}

// flagDefs returns the defs cmd supports, in declaration order.
func flagDefs(d *grammar.Dialect, cmd grammar.Command) []flags.Def {
	var out []flags.Def

	for _, def := range d.Flags().All() {
		if d.Supports(def.Name, cmd) {
			out = append(out, def)
		}
	}

	return out
}

func formats(defs []flags.Def) []Format {
	placeholders := flags.PlaceholdersUsedByFlags(defs)

	out := make([]Format, 0, len(placeholders))
	for _, p := range placeholders {
		out = append(out, Format{Name: p.Name, Desc: p.Format})
	}

	return out
}

func helpFlags(d *grammar.Dialect, defs []flags.Def) []Flag {
	out := make([]Flag, 0, len(defs))

	for _, def := range defs {
		f := Flag{
			Long:      def.Long,
			Short:     def.Short,
			Desc:      withRange(def.Desc, def.Range),
			Optional:  def.AllowsBare(),
			Separator: d.Separator(),
		}

		if p, ok := flags.PlaceholderFor(def); ok {
			f.Placeholder = p.Name
		}

		out = append(out, f)
	}

	return out
}

func layoutNote(d *grammar.Dialect) string {
	order := "flags before positionals"
	if d.Layout() == grammar.PositionalsThenFlags {
		order = "positionals before flags"
	}

	if d.Separator() == '=' {
		return order + ", values joined with ="
	}

	return order + ", values follow their flag"
}

// positionalDefs lets positionals share the flag placeholder formats.
func positionalDefs(defs []grammar.PositionalDef) []flags.Def {
	out := make([]flags.Def, 0, len(defs))
	for _, p := range defs {
		out = append(out, flags.Def{Name: flags.Name(p.Name), Kind: p.Kind})
	}

	return out
}

func withRange(desc string, r *value.Range) string {
	switch {
	case r == nil:
		return desc
	case r.Max == math.MaxInt64:
		return fmt.Sprintf("%s (>= %d)", desc, r.Min)
	default:
		return fmt.Sprintf("%s (%d-%d)", desc, r.Min, r.Max)
	}
}

// Package grammar implements the command-line grammar shared by every dialect:
// validated vocabulary tables, the parameter set, and the generator and parser
// that translate between the two.
package grammar

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/toejough/discargs/internal/flags"
	"github.com/toejough/discargs/internal/value"
)

// Exported constants.
const (
	// None is the command of a parameter set that has no command yet.
	// Global flags are registered against it.
	None Command = ""
)

// Exported variables.
var (
	ErrAmbiguous         = errors.New("generated text would not parse back identically")
	ErrDuplicateFlag     = errors.New("flag given more than once")
	ErrInvalidTables     = errors.New("invalid dialect tables")
	ErrInvalidValue      = errors.New("invalid value")
	ErrMissingPositional = errors.New("missing positional argument")
	ErrMissingValue      = errors.New("flag needs a value")
	ErrNoCommand         = errors.New("no command")
	ErrTrailingTokens    = errors.New("unexpected trailing tokens")
	ErrUnexpectedValue   = errors.New("flag takes no value")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrUnknownFlag       = errors.New("unknown flag")
	ErrUnknownPositional = errors.New("unknown positional")
	ErrUnsupportedFlag   = errors.New("flag not supported by command")
	ErrUnsupportedLayout = errors.New("unsupported token layout")
	ErrUnsupportedSep    = errors.New("unsupported value separator")
)

// Command identifies a subcommand within one dialect, e.g. "media-dump".
type Command string

// CommandDef describes one subcommand.
type CommandDef struct {
	ID Command
	// Spelling is the command as written, one or two space-separated tokens.
	Spelling    string
	Positionals []PositionalName
	// Dumping marks commands that read a disc.
	Dumping bool
	Desc    string
}

// Dialect is the validated, immutable grammar of one external tool.
type Dialect struct {
	tables      Tables
	registry    *flags.Registry
	commands    map[Command]int
	spellings   map[string]Command
	positionals map[PositionalName]PositionalDef
	support     map[flags.Name]map[Command]bool
}

// MustDialect is NewDialect for package-level tables; it panics on invalid tables.
func MustDialect(t Tables) *Dialect {
	d, err := NewDialect(t)
	if err != nil {
		panic(err)
	}

	return d
}

// NewDialect validates t and builds a dialect from it.
func NewDialect(t Tables) (*Dialect, error) {
	if t.Layout != FlagsThenPositionals && t.Layout != PositionalsThenFlags {
		return nil, fmt.Errorf("%w: %s: %d", ErrUnsupportedLayout, t.Name, t.Layout)
	}

	if t.Separator != ' ' && t.Separator != '=' {
		return nil, fmt.Errorf("%w: %s: %q", ErrUnsupportedSep, t.Name, t.Separator)
	}

	registry, err := flags.NewRegistry(t.Flags...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTables, t.Name, err)
	}

	d := &Dialect{
		tables:      t,
		registry:    registry,
		commands:    make(map[Command]int, len(t.Commands)),
		spellings:   make(map[string]Command, len(t.Commands)),
		positionals: make(map[PositionalName]PositionalDef, len(t.Positionals)),
		support:     make(map[flags.Name]map[Command]bool, len(t.Support)),
	}

	err = d.indexPositionals()
	if err == nil {
		err = d.indexCommands()
	}

	if err == nil {
		err = d.indexSupport()
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTables, t.Name, err)
	}

	return d, nil
}

// Command returns the def of cmd.
func (d *Dialect) Command(cmd Command) (CommandDef, bool) {
	i, ok := d.commands[cmd]
	if !ok {
		return CommandDef{}, false
	}

	return d.tables.Commands[i], true
}

// CommandSpelling returns how cmd is written; "" for None and unknown commands.
func (d *Dialect) CommandSpelling(cmd Command) string {
	def, _ := d.Command(cmd)

	return def.Spelling
}

// Commands returns the command defs in declaration order.
func (d *Dialect) Commands() []CommandDef {
	return slices.Clone(d.tables.Commands)
}

// Executable returns the default executable name of the tool.
func (d *Dialect) Executable() string {
	return d.tables.Executable
}

// FlagSpelling returns the short and long spellings of a flag; both are "" for
// unknown flags.
func (d *Dialect) FlagSpelling(name flags.Name) (short, long string) {
	def, ok := d.registry.Lookup(name)
	if !ok {
		return "", ""
	}

	return def.Short, def.Long
}

// Flags returns the dialect's flag registry.
func (d *Dialect) Flags() *flags.Registry {
	return d.registry
}

// Layout returns the order flags and positionals are written in.
func (d *Dialect) Layout() Layout {
	return d.tables.Layout
}

// Name returns the dialect name, e.g. "aaru".
func (d *Dialect) Name() string {
	return d.tables.Name
}

// NewParams returns an empty parameter set for this dialect.
func (d *Dialect) NewParams() *Params {
	return &Params{
		dialect:     d,
		flags:       make(map[flags.Name]FlagState),
		positionals: make(map[PositionalName]value.Value),
	}
}

// Positional returns the catalog def of a positional.
func (d *Dialect) Positional(name PositionalName) (PositionalDef, bool) {
	def, ok := d.positionals[name]

	return def, ok
}

// Separator returns the character written between a flag and its value.
func (d *Dialect) Separator() byte {
	return d.tables.Separator
}

// SupportedCommands returns the commands a flag is valid for, None first and
// then in command declaration order. Unknown flags support nothing.
func (d *Dialect) SupportedCommands(name flags.Name) []Command {
	set := d.support[name]
	if len(set) == 0 {
		return nil
	}

	out := make([]Command, 0, len(set))
	if set[None] {
		out = append(out, None)
	}

	for _, def := range d.tables.Commands {
		if set[def.ID] {
			out = append(out, def.ID)
		}
	}

	return out
}

// Supports reports whether flag name may be given with cmd.
func (d *Dialect) Supports(name flags.Name, cmd Command) bool {
	return d.support[name][cmd]
}

// spec returns the codec spec for a flag of this dialect.
func (d *Dialect) spec(def flags.Def) value.Spec {
	return def.Spec(d.tables.FoldBool)
}

func (d *Dialect) indexCommands() error {
	for i, def := range d.tables.Commands {
		if def.ID == None {
			return fmt.Errorf("command %d has an empty id", i)
		}

		if _, ok := d.commands[def.ID]; ok {
			return fmt.Errorf("duplicate command %q", def.ID)
		}

		words := strings.Fields(def.Spelling)
		if len(words) == 0 || len(words) > maxCommandWords || strings.Join(words, " ") != def.Spelling {
			return fmt.Errorf("command %q: bad spelling %q", def.ID, def.Spelling)
		}

		if other, ok := d.spellings[def.Spelling]; ok {
			return fmt.Errorf("commands %q and %q share spelling %q", other, def.ID, def.Spelling)
		}

		for _, p := range def.Positionals {
			if _, ok := d.positionals[p]; !ok {
				return fmt.Errorf("command %q: %w %q", def.ID, ErrUnknownPositional, p)
			}
		}

		d.commands[def.ID] = i
		d.spellings[def.Spelling] = def.ID
	}

	// A one-word command must not also start a two-word command, or the parser
	// could not tell "a b" from command "a" followed by "b".
	for spelling := range d.spellings {
		head, _, twoWords := strings.Cut(spelling, " ")
		if !twoWords {
			continue
		}

		if cmd, ok := d.spellings[head]; ok {
			return fmt.Errorf("command %q is a prefix of %q", cmd, spelling)
		}
	}

	return nil
}

func (d *Dialect) indexPositionals() error {
	for _, def := range d.tables.Positionals {
		if _, ok := d.positionals[def.Name]; ok {
			return fmt.Errorf("duplicate positional %q", def.Name)
		}

		if def.Kind == value.Presence {
			return fmt.Errorf("positional %q: %w", def.Name, value.ErrKind)
		}

		d.positionals[def.Name] = def
	}

	return nil
}

func (d *Dialect) indexSupport() error {
	for name, cmds := range d.tables.Support {
		if _, ok := d.registry.Lookup(name); !ok {
			return fmt.Errorf("support table: %w %q", ErrUnknownFlag, name)
		}

		set := make(map[Command]bool, len(cmds))

		for _, cmd := range cmds {
			if _, ok := d.commands[cmd]; !ok && cmd != None {
				return fmt.Errorf("support table: flag %q: %w %q", name, ErrUnknownCommand, cmd)
			}

			set[cmd] = true
		}

		// Global flags are written before the command, so they cannot also be
		// command flags without being written twice.
		if set[None] && len(set) > 1 {
			return fmt.Errorf("support table: global flag %q also listed for commands", name)
		}

		d.support[name] = set
	}

	return nil
}

// Layout is the order flags and positionals follow the command in.
type Layout int

// Layout values.
const (
	// FlagsThenPositionals writes "cmd --flag v pos1 pos2".
	FlagsThenPositionals Layout = iota
	// PositionalsThenFlags writes "cmd pos1 pos2 /flag v".
	PositionalsThenFlags
)

// PositionalDef describes one entry of a dialect's positional catalog.
type PositionalDef struct {
	Name  PositionalName
	Kind  value.Kind
	Range *value.Range
	Desc  string
}

// PositionalName identifies a positional argument, e.g. "drive".
type PositionalName string

// Tables is the static description a dialect is built from.
type Tables struct {
	Name       string
	Executable string
	Layout     Layout
	// Separator is ' ' ("--flag value") or '=' ("--flag=value").
	Separator byte
	// FoldBool accepts boolean literals in any letter case.
	FoldBool    bool
	Commands    []CommandDef
	Flags       []flags.Def
	Positionals []PositionalDef
	// Support lists the commands each flag is valid for. None marks a global flag.
	Support map[flags.Name][]Command
}

// unexported constants.
const (
	maxCommandWords = 2
)

package grammar_test

import (
	"github.com/toejough/discargs/internal/flags"
	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/value"
)

// discTables is a small flags-then-positionals dialect with global flags and
// two-word commands.
func discTables() grammar.Tables {
	return grammar.Tables{
		Name:       "disc",
		Executable: "disctool",
		Layout:     grammar.FlagsThenPositionals,
		Separator:  ' ',
		FoldBool:   true,
		Commands: []grammar.CommandDef{
			{ID: "read", Spelling: "disc read", Positionals: []grammar.PositionalName{"device", "output"}, Dumping: true},
			{ID: "info", Spelling: "disc info", Positionals: []grammar.PositionalName{"device"}},
			{ID: "list", Spelling: "list"},
		},
		Flags: []flags.Def{
			{Name: "verbose", Long: "--verbose", Short: "-v", Kind: value.Bool},
			{Name: "pause", Long: "--pause", Kind: value.Presence},
			{Name: "speed", Long: "--speed", Short: "-s", Kind: value.UInt8},
			{Name: "retries", Long: "--retries", Short: "-r", Kind: value.Int16, Range: value.AtLeast(0)},
			{Name: "label", Long: "--label", Kind: value.String},
			{Name: "level", Long: "--level", Kind: value.Int32, Optional: true},
			{Name: "force", Long: "--force", Short: "-f", Kind: value.Presence},
			{Name: "start", Long: "--start", Kind: value.Int64, Range: value.AtLeast(0)},
		},
		Positionals: []grammar.PositionalDef{
			{Name: "device", Kind: value.String},
			{Name: "output", Kind: value.String},
		},
		Support: map[flags.Name][]grammar.Command{
			"verbose": {grammar.None},
			"pause":   {grammar.None},
			"speed":   {"read"},
			"retries": {"read"},
			"label":   {"read", "info"},
			"level":   {"read", "info"},
			"force":   {"list", "read"},
			"start":   {"info"},
		},
	}
}

// slashTables is a positionals-then-flags dialect with optional values.
func slashTables() grammar.Tables {
	return grammar.Tables{
		Name:       "slash",
		Executable: "slashtool",
		Layout:     grammar.PositionalsThenFlags,
		Separator:  ' ',
		Commands: []grammar.CommandDef{
			{ID: "cd", Spelling: "cd", Positionals: []grammar.PositionalName{"drive", "file", "speed"}, Dumping: true},
			{ID: "eject", Spelling: "eject", Positionals: []grammar.PositionalName{"drive"}},
		},
		Flags: []flags.Def{
			{Name: "c2", Long: "/c2", Kind: value.Int32, Optional: true},
			{Name: "be", Long: "/be", Kind: value.String, Optional: true},
			{Name: "q", Long: "/q", Kind: value.Presence},
			{Name: "s", Long: "/s", Kind: value.Int8, Range: value.Between(0, 2)},
		},
		Positionals: []grammar.PositionalDef{
			{Name: "drive", Kind: value.String},
			{Name: "file", Kind: value.String},
			{Name: "speed", Kind: value.UInt8},
		},
		Support: map[flags.Name][]grammar.Command{
			"c2": {"cd"},
			"be": {"cd"},
			"q":  {"cd"},
			"s":  {"cd"},
		},
	}
}

// equalsTables is a dialect that joins every value with "=".
func equalsTables() grammar.Tables {
	return grammar.Tables{
		Name:       "equals",
		Executable: "equalstool",
		Layout:     grammar.FlagsThenPositionals,
		Separator:  '=',
		Commands: []grammar.CommandDef{
			{ID: "dump", Spelling: "dump", Dumping: true},
			{ID: "eject", Spelling: "eject"},
		},
		Flags: []flags.Def{
			{Name: "drive", Long: "--drive", Kind: value.String},
			{Name: "speed", Long: "--speed", Kind: value.UInt8},
			{Name: "verbose", Long: "--verbose", Kind: value.Presence},
			{Name: "fill", Long: "--fill", Kind: value.UInt8, Optional: true},
		},
		Support: map[flags.Name][]grammar.Command{
			"drive":   {"dump", "eject"},
			"speed":   {"dump"},
			"verbose": {"dump", "eject"},
			"fill":    {"dump"},
		},
	}
}

//nolint:gochecknoglobals // immutable test dialects
var (
	disc   = grammar.MustDialect(discTables())
	slash  = grammar.MustDialect(slashTables())
	equals = grammar.MustDialect(equalsTables())
)

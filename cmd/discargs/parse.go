package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/tokens"
	"github.com/toejough/discargs/internal/value"
)

func (a *app) parse(cmd *cobra.Command, raw string) error {
	tool, err := a.tool()
	if err != nil {
		return err
	}

	p, err := tool.Dialect.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing %s arguments: %w", tool.Name(), err)
	}

	a.trace(cmd.ErrOrStderr(), p)
	describeParams(cmd.OutOrStdout(), p)

	return nil
}

func describeParams(w io.Writer, p *grammar.Params) {
	d := p.Dialect()
	fmt.Fprintf(w, "command: %s\n", d.CommandSpelling(p.Command()))

	if present := p.Present(); len(present) > 0 {
		fmt.Fprintln(w, "flags:")

		for _, name := range present {
			fmt.Fprintf(w, "  %s: %s\n", name, p.Flag(name))
		}
	}

	def, _ := d.Command(p.Command())
	if len(def.Positionals) == 0 {
		return
	}

	fmt.Fprintln(w, "positionals:")

	for _, name := range def.Positionals {
		v, _ := p.Positional(name)
		fmt.Fprintf(w, "  %s: %s\n", name, v)
	}
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse -- <arguments>...",
		Short: "Check an argument string and show what it sets",
		Long: "The arguments are joined with spaces, quoting any that contain spaces,\n" +
			"and read with the tool's grammar.\n" +
			"Put them after -- so flags reach the tool's grammar instead of discargs.",
		Example: `  discargs parse --tool aaru -- media dump --speed 8 /dev/sr0 out.aaruf`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.parse(cmd, joinArgs(args))
		},
	}
}

// joinArgs rebuilds a raw argument string from arguments the shell already
// split, quoting each one that would not survive tokenizing bare. For a
// name=value argument only the value is quoted.
func joinArgs(args []string) string {
	quoted := make([]string, 0, len(args))

	for _, arg := range args {
		quoted = append(quoted, quoteArg(arg))
	}

	return tokens.Join(quoted)
}

func quoteArg(arg string) string {
	if !value.NeedsQuotes(arg) {
		return arg
	}

	if name, val, ok := strings.Cut(arg, "="); ok && name != "" && !value.NeedsQuotes(name) {
		return name + "=" + value.Encode(value.OfString(val))
	}

	return value.Encode(value.OfString(arg))
}

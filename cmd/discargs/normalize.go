package main

import (
	"fmt"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/spf13/cobra"

	"github.com/toejough/discargs/internal/file"
	"github.com/toejough/discargs/internal/grammar"
)

type normalizeOpts struct {
	globs []string
	check bool
}

// source is one group of lines diffed together: the command line arguments,
// or one matched file.
type source struct {
	label string
	lines []file.Line
}

func (a *app) normalize(cmd *cobra.Command, args []string, o normalizeOpts) error {
	tool, err := a.tool()
	if err != nil {
		return err
	}

	sources, err := normalizeSources(args, o.globs)
	if err != nil {
		return err
	}

	changed, failed := false, false

	for _, src := range sources {
		var before, after strings.Builder

		for _, line := range src.lines {
			normalized, err := a.normalizeLine(cmd, tool.Dialect, line.Text)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d: %v\n", line.Path, line.Number, err)

				failed = true
				normalized = line.Text
			}

			before.WriteString(line.Text + "\n")
			after.WriteString(normalized + "\n")
		}

		if before.String() == after.String() {
			continue
		}

		changed = true

		fmt.Fprint(cmd.OutOrStdout(),
			textdiff.Unified(src.label+" (original)", src.label+" (normalized)", before.String(), after.String()))
	}

	if failed || (o.check && changed) {
		return errReported
	}

	return nil
}

func (a *app) normalizeLine(cmd *cobra.Command, d *grammar.Dialect, raw string) (string, error) {
	p, err := d.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing: %w", err)
	}

	a.trace(cmd.ErrOrStderr(), p)

	text, err := p.Generate()
	if err != nil {
		return "", fmt.Errorf("regenerating: %w", err)
	}

	return text, nil
}

func newNormalizeCmd(a *app) *cobra.Command {
	var o normalizeOpts

	cmd := &cobra.Command{
		Use:   "normalize [-- <arguments>...]",
		Short: "Rewrite argument strings in their canonical form",
		Long: "Each argument string is parsed and regenerated: flags in declaration order,\n" +
			"numbers in decimal, values quoted only when needed. Changes are shown as a\n" +
			"unified diff. With --glob, every non-blank line of the matched files that does\n" +
			"not start with # is one argument string.",
		Example: `  discargs normalize --tool redumper -- cd --speed=0x10 --drive=D
  discargs normalize --tool dic --check --glob 'jobs/**/*.args'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.normalize(cmd, args, o)
		},
	}

	cmd.Flags().StringSliceVar(&o.globs, "glob", nil, "read argument strings from the files matching these patterns")
	cmd.Flags().BoolVar(&o.check, "check", false, "exit 1 when anything would change")

	return cmd
}

func normalizeSources(args, globs []string) ([]source, error) {
	var sources []source

	if len(args) > 0 {
		sources = append(sources, source{
			label: "arguments",
			lines: []file.Line{{Path: "arguments", Number: 1, Text: joinArgs(args)}},
		})
	}

	if len(globs) > 0 {
		paths, err := file.Match(globs...)
		if err != nil {
			return nil, fmt.Errorf("expanding globs: %w", err)
		}

		if len(paths) == 0 {
			return nil, fmt.Errorf("%w: %s", errNoMatches, strings.Join(globs, " "))
		}

		lines, err := file.ReadFiles(paths...)
		if err != nil {
			return nil, err
		}

		for _, line := range lines {
			if n := len(sources); n > 0 && sources[n-1].label == line.Path {
				sources[n-1].lines = append(sources[n-1].lines, line)

				continue
			}

			sources = append(sources, source{label: line.Path, lines: []file.Line{line}})
		}
	}

	if len(sources) == 0 {
		return nil, errNoInput
	}

	return sources, nil
}

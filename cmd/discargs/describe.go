package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/toejough/discargs/internal/help"
	"github.com/toejough/discargs/internal/job"
	"github.com/toejough/discargs/internal/media"
	"github.com/toejough/discargs/internal/preset"
)

func (a *app) describe(cmd *cobra.Command, args []string) error {
	tool, err := a.tool()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		b, err := help.ForCommand(tool.Dialect, strings.Join(args, " "))
		if err != nil {
			return err
		}

		return help.Render(cmd.OutOrStdout(), b)
	}

	b := help.ForDialect(tool.Dialect)

	example := job.New(tool, preset.Request{
		System:    media.IBMPCCompatible,
		MediaType: media.CDROM,
		Drive:     "D",
		Filename:  "disc.bin",
	}, job.WithExecutable(a.cfg.Executable(tool.Name())))

	if line, ok := example.CommandLine(); ok {
		b.AddExamples(help.Example{Title: "Dump a data CD with the default settings", Code: line})
	}

	return help.Render(cmd.OutOrStdout(), b)
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [command]",
		Short: "Show a tool's commands, flags, and value formats",
		Example: `  discargs describe --tool aaru
  discargs describe --tool aaru media dump`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.describe(cmd, args)
		},
	}
}

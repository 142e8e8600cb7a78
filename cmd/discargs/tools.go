package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toejough/discargs/internal/dialect"
	"github.com/toejough/discargs/internal/job"
)

func newToolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the supported tools and their executables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, tool := range dialect.Tools() {
				j := job.FromParams(tool, tool.Dialect.NewParams(), job.WithExecutable(a.cfg.Executable(tool.Name())))
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", tool.Name(), j.ExecutablePath())
			}

			return nil
		},
	}
}

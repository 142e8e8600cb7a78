package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toejough/discargs/internal/config"
	"github.com/toejough/discargs/internal/dialect"
	"github.com/toejough/discargs/internal/grammar"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	env        config.Env
	configPath string
	toolName   string
	verbose    bool
	cfg        config.Config
}

// loadConfig reads the config file and environment. Command flags win over both.
func (a *app) loadConfig() error {
	path := a.configPath
	if path == "" {
		path = config.DefaultPath(a.env)
	}

	cfg, err := config.Load(path, a.env)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	a.cfg = cfg

	return nil
}

// tool resolves the selected tool from --tool, then the config.
func (a *app) tool() (dialect.Tool, error) {
	name := a.toolName
	if name == "" {
		name = a.cfg.Tool
	}

	if name == "" {
		return dialect.Tool{}, fmt.Errorf("%w: pass --tool or set %s", errNoTool, config.EnvTool)
	}

	tool, err := dialect.Lookup(name)
	if err != nil {
		return dialect.Tool{}, fmt.Errorf("selecting tool: %w", err)
	}

	return tool, nil
}

// trace writes the state of every flag the command can carry when --verbose is set.
func (a *app) trace(w io.Writer, p *grammar.Params) {
	if !a.verbose {
		return
	}

	d := p.Dialect()
	fmt.Fprintf(w, "trace: %s command %q\n", d.Name(), d.CommandSpelling(p.Command()))

	for _, def := range d.Flags().All() {
		if !d.Supports(def.Name, grammar.None) && !d.Supports(def.Name, p.Command()) {
			continue
		}

		fmt.Fprintf(w, "trace: %s = %s\n", def.Name, p.Flag(def.Name))
	}
}

func newRootCmd(env config.Env) *cobra.Command {
	a := &app{env: env}

	root := &cobra.Command{
		Use:   "discargs",
		Short: "Generate and check command lines for disc dumping tools",
		Long: "discargs turns a dump request into the exact argument string a disc dumping tool\n" +
			"expects, and reads such strings back, rejecting anything the tool's grammar does not allow.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "",
		"config file (default: $XDG_CONFIG_HOME/discargs/config.yaml)")
	root.PersistentFlags().StringVarP(&a.toolName, "tool", "t", "",
		"dumping tool: "+strings.Join(dialect.Names(), ", "))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "trace every flag state to stderr")

	root.AddCommand(
		newGenerateCmd(a),
		newParseCmd(a),
		newNormalizeCmd(a),
		newDescribeCmd(a),
		newToolsCmd(a),
	)

	return root
}

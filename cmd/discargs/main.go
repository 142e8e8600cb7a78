// Package main provides the discargs CLI, which generates, parses, and
// normalizes argument strings for disc dumping tools.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/toejough/discargs/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

// unexported constants.
const (
	exitFailure = 1
	exitSuccess = 0
)

// unexported variables.
var (
	errNoMatches = errors.New("no files match")
	errNoTool    = errors.New("no tool selected")
	errNoInput   = errors.New("nothing to normalize")
	// errReported marks a failure whose message was already written.
	errReported = errors.New("reported")
)

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, env config.Env) int {
	root := newRootCmd(env)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(stderr, "error:", err)
		}

		return exitFailure
	}

	return exitSuccess
}

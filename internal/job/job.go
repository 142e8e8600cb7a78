// Package job is the facade the rest of a dumping front end talks to: one
// derived parameter set, the tool it targets, and where that tool lives.
package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/toejough/discargs/internal/dialect"
	"github.com/toejough/discargs/internal/flags"
	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/media"
	"github.com/toejough/discargs/internal/preset"
	"github.com/toejough/discargs/internal/tokens"
	"github.com/toejough/discargs/internal/value"
)

// Exported variables.
var (
	ErrNoCommandLine = errors.New("no valid command line")
)

// Job holds the parameters for one dump and the tool that will run it.
// A Job is not safe for concurrent use.
type Job struct {
	tool       dialect.Tool
	params     *grammar.Params
	executable string
	validator  media.Validator
}

// FromParams wraps an existing parameter set, for example one parsed from
// hand-edited text.
func FromParams(tool dialect.Tool, p *grammar.Params, opts ...Option) *Job {
	j := &Job{tool: tool, params: p}
	for _, opt := range opts {
		opt(j)
	}

	return j
}

// New derives the starting parameters for req.
func New(tool dialect.Tool, req preset.Request, opts ...Option) *Job {
	j := &Job{tool: tool, validator: media.Catalog{}}
	for _, opt := range opts {
		opt(j)
	}

	j.params = tool.Derive(req, j.validator)

	return j
}

// CommandLine returns the executable, quoted when it holds spaces, followed by
// the argument string.
func (j *Job) CommandLine() (string, bool) {
	args, ok := j.GenerateParameters()
	if !ok {
		return "", false
	}

	return tokens.Join([]string{value.Encode(value.OfString(j.ExecutablePath())), args}), true
}

// Dialect returns the tool's grammar.
func (j *Job) Dialect() *grammar.Dialect {
	return j.tool.Dialect
}

// ExecutablePath returns the configured executable, or the tool's default name.
func (j *Job) ExecutablePath() string {
	if j.executable != "" {
		return j.executable
	}

	return j.tool.Dialect.Executable()
}

// Flag returns the state of one flag; unknown flags read as absent.
func (j *Job) Flag(name flags.Name) grammar.FlagState {
	return j.params.Flag(name)
}

// GenerateParameters returns the argument string, or false when the
// parameters cannot be written.
func (j *Job) GenerateParameters() (string, bool) {
	text, err := j.params.Generate()
	if err != nil {
		return "", false
	}

	return text, true
}

// IsDumpingCommand reports whether the selected command reads a disc.
func (j *Job) IsDumpingCommand() bool {
	return j.params.IsDumping()
}

// Params returns the parameter set. Changes to it show through the Job.
func (j *Job) Params() *grammar.Params {
	return j.params
}

// Run hands the command line to r.
func (j *Job) Run(ctx context.Context, r Runner) error {
	args, err := j.params.Generate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoCommandLine, err)
	}

	if err := r.Run(ctx, j.ExecutablePath(), args); err != nil {
		return fmt.Errorf("running %s: %w", j.tool.Name(), err)
	}

	return nil
}

// Option configures a Job.
type Option func(*Job)

// WithExecutable overrides the executable path; an empty path keeps the default.
func WithExecutable(path string) Option {
	return func(j *Job) { j.executable = path }
}

// WithValidator replaces the built-in system/media table.
func WithValidator(v media.Validator) Option {
	return func(j *Job) { j.validator = v }
}

// Runner starts the external tool. Implementations own process spawning and
// output capture.
type Runner interface {
	Run(ctx context.Context, executable, args string) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, executable, args string) error

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, executable, args string) error {
	return f(ctx, executable, args)
}

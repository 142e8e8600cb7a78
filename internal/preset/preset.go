// Package preset derives a starting parameter set from a dump request.
// Each dialect supplies a Recipe; the policy steps shared by every tool live here.
package preset

import (
	"fmt"
	"strings"

	"github.com/toejough/discargs/internal/flags"
	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/media"
	"github.com/toejough/discargs/internal/value"
)

// Exported constants.
const (
	// DefaultRetries is the reread count used when a request asks for zero.
	DefaultRetries = 20
)

// Builder sets up a parameter set and remembers the first failure, so a
// derivation can be written as a straight sequence of steps.
type Builder struct {
	params *grammar.Params
	err    error
}

// NewBuilder returns a builder for an empty parameter set of d.
func NewBuilder(d *grammar.Dialect) *Builder {
	return &Builder{params: d.NewParams()}
}

// Bool gives a boolean flag a value.
func (b *Builder) Bool(name flags.Name, v bool) {
	b.record(b.params.SetBool(name, v))
}

// Command selects the command.
func (b *Builder) Command(cmd grammar.Command) {
	b.record(b.params.SetCommand(cmd))
}

// Err returns the first failure, if any.
func (b *Builder) Err() error {
	return b.err
}

// Fail records err as if a step had failed.
func (b *Builder) Fail(err error) {
	b.record(err)
}

// Flag marks a flag present without a value.
func (b *Builder) Flag(name flags.Name) {
	b.record(b.params.Set(name))
}

// Int gives an integer flag a value.
func (b *Builder) Int(name flags.Name, n int64) {
	b.record(b.params.SetInt(name, n))
}

// Params returns the built parameter set, or an empty one (command None) when
// any step failed.
func (b *Builder) Params() *grammar.Params {
	if b.err != nil {
		return b.params.Dialect().NewParams()
	}

	return b.params
}

// Positionals sets the values the current command's positionals need; values
// for positionals the command does not take are ignored.
func (b *Builder) Positionals(values map[grammar.PositionalName]value.Value) {
	def, _ := b.params.Dialect().Command(b.params.Command())

	for _, name := range def.Positionals {
		v, ok := values[name]
		if !ok {
			b.record(fmt.Errorf("%w: %s needs %s", grammar.ErrMissingPositional, def.ID, name))

			continue
		}

		b.record(b.params.SetPositional(name, v))
	}
}

// String gives a string flag a value.
func (b *Builder) String(name flags.Name, s string) {
	b.record(b.params.SetString(name, s))
}

func (b *Builder) record(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

// Hardening lists the settings paranoid mode applies: some for every request,
// the rest keyed by media type or system.
type Hardening struct {
	Uniform  []Setting
	ByMedia  map[media.MediaType][]Setting
	BySystem map[media.System][]Setting
}

// Apply runs the settings that match req.
func (h Hardening) Apply(b *Builder, req Request) {
	for _, group := range [][]Setting{h.Uniform, h.ByMedia[req.MediaType], h.BySystem[req.System]} {
		for _, s := range group {
			s(b)
		}
	}
}

// Recipe is one tool's derivation rules.
type Recipe struct {
	Dialect *grammar.Dialect
	// Command picks the command for the request; false when the tool cannot dump it.
	Command func(Request) (grammar.Command, bool)
	// Populate sets drive, output, and speed.
	Populate func(*Builder, Request)
	// Retries applies an enabled reread count.
	Retries func(*Builder, Request, int)
	// Defaults are applied to every request, keyed like Hardening.
	Defaults Hardening
	Paranoid Hardening
}

// Derive builds the starting parameters for req. An impossible system/media
// pairing, a media type the tool cannot dump, or a value the tool cannot
// carry yields parameters with command None. It never fails otherwise.
func (r Recipe) Derive(req Request, validator media.Validator) *grammar.Params {
	b := NewBuilder(r.Dialect)

	if validator == nil || !validator.Valid(req.System, req.MediaType) {
		return b.Params()
	}

	cmd, ok := r.Command(req)
	if !ok {
		return b.Params()
	}

	b.Command(cmd)
	r.Populate(b, req)

	if n, enabled := RetryPolicy(req.Retries, DefaultRetries); enabled && r.Retries != nil {
		r.Retries(b, req, n)
	}

	r.Defaults.Apply(b, req)

	if req.Paranoid {
		r.Paranoid.Apply(b, req)
	}

	return b.Params()
}

// Request describes a dump job before any tool-specific choice is made.
type Request struct {
	System    media.System
	MediaType media.MediaType
	Drive     string
	Filename  string
	// Speed is the drive speed; nil leaves it to the tool.
	Speed    *int
	Paranoid bool
	// Retries: negative disables rereads, zero uses the tool's fallback.
	Retries int
}

// ImageName returns the output filename without directory or extension.
func (r Request) ImageName() string {
	base := r.Filename
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}

	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}

	return base
}

// ImagePath returns the directory part of the output filename, or "" when it
// has none.
func (r Request) ImagePath() string {
	i := strings.LastIndexAny(r.Filename, `/\`)
	if i < 0 {
		return ""
	}

	if i == 0 {
		return r.Filename[:1]
	}

	return r.Filename[:i]
}

// SpeedOr returns the requested speed, or fallback when none was given.
func (r Request) SpeedOr(fallback int) int {
	if r.Speed == nil {
		return fallback
	}

	return *r.Speed
}

// Setting is one step of a Hardening or Defaults table.
type Setting func(*Builder)

// Bare sets a flag present without a value.
func Bare(name flags.Name) Setting {
	return func(b *Builder) { b.Flag(name) }
}

// Int sets an integer flag.
func Int(name flags.Name, n int64) Setting {
	return func(b *Builder) { b.Int(name, n) }
}

// Text sets a string flag.
func Text(name flags.Name, s string) Setting {
	return func(b *Builder) { b.String(name, s) }
}

// True sets a boolean flag to true.
func True(name flags.Name) Setting {
	return func(b *Builder) { b.Bool(name, true) }
}

// RetryPolicy applies the retry-count convention: negative disables rereads,
// zero means fallback, and positive values are used as given.
func RetryPolicy(retries, fallback int) (count int, enabled bool) {
	switch {
	case retries < 0:
		return 0, false
	case retries == 0:
		return fallback, true
	default:
		return retries, true
	}
}

// Package dialect looks up the supported dumping tools by name.
package dialect

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/toejough/discargs/internal/dialect/aaru"
	"github.com/toejough/discargs/internal/dialect/dic"
	"github.com/toejough/discargs/internal/dialect/redumper"
	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/media"
	"github.com/toejough/discargs/internal/preset"
)

// Exported variables.
var (
	ErrUnknownTool = errors.New("unknown tool")
)

// Tool pairs a dialect with its deriver.
type Tool struct {
	Dialect *grammar.Dialect
	Derive  func(preset.Request, media.Validator) *grammar.Params
	// Aliases are extra names Lookup accepts.
	Aliases []string
}

// Name returns the dialect's name.
func (t Tool) Name() string {
	return t.Dialect.Name()
}

// Lookup finds a tool by name or alias, ignoring case.
func Lookup(name string) (Tool, error) {
	for _, t := range tools {
		if strings.EqualFold(name, t.Name()) ||
			slices.ContainsFunc(t.Aliases, func(a string) bool { return strings.EqualFold(name, a) }) {
			return t, nil
		}
	}

	return Tool{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownTool, name, strings.Join(Names(), ", "))
}

// Names returns the tool names in a stable order.
func Names() []string {
	out := make([]string, 0, len(tools))
	for _, t := range tools {
		out = append(out, t.Name())
	}

	return out
}

// Tools returns every tool in the order Names reports them.
func Tools() []Tool {
	return slices.Clone(tools)
}

// unexported variables.
var (
	//nolint:gochecknoglobals // read-only tool table
	tools = []Tool{
		{Dialect: aaru.Dialect, Derive: aaru.Derive, Aliases: []string{"aaruformat"}},
		{Dialect: dic.Dialect, Derive: dic.Derive, Aliases: []string{"discimagecreator"}},
		{Dialect: redumper.Dialect, Derive: redumper.Derive},
	}
)

package help_test

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/discargs/internal/help"
)

func TestFlagSpellings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		flag help.Flag
		want string
	}{
		{"presence", help.Flag{Long: "--pause"}, "  --pause"},
		{"valued", help.Flag{Long: "--speed", Placeholder: "<n>"}, "  --speed <n>"},
		{"equals", help.Flag{Long: "--speed", Placeholder: "<n>", Separator: '='}, "  --speed=<n>"},
		{"optional", help.Flag{Long: "/c2", Placeholder: "<n>", Optional: true}, "  /c2 [<n>]"},
		{"optional equals", help.Flag{Long: "--fill", Placeholder: "<n>", Optional: true, Separator: '='}, "  --fill[=<n>]"},
		{
			"short", help.Flag{Long: "--debug", Short: "-d", Placeholder: "<true|false>", Optional: true},
			"  -d, --debug [<true|false>]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			output := help.New("x").WithStyles(help.PlainStyles()).AddCommandFlags(tc.flag).Render()
			g.Expect(output).To(Equal("Flags:\n" + tc.want + "\n"))
		})
	}
}

func TestRenderAlignsDescriptions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	output := help.New("x").
		WithStyles(help.PlainStyles()).
		AddCommands(
			help.Command{Name: "cd", Desc: "Dump a CD", Dumping: true},
			help.Command{Name: "eject", Desc: "Eject the tray"},
		).
		Render()

	g.Expect(output).To(Equal("Commands:\n  cd     Dump a CD (dumps)\n  eject  Eject the tray\n"))
}

func TestRenderOmitsEmptySections(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	output := help.New("x").WithDescription("desc").WithUsage("x run").Render()

	g.Expect(help.StripANSI(output)).To(Equal("desc\n\nUsage:\n  x run\n"))
}

func TestRenderPositionals(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	output := help.New("x").
		WithStyles(help.PlainStyles()).
		AddPositionals(help.Positional{Name: "speed", Kind: "uint8", Desc: "Drive speed"}).
		Render()

	g.Expect(output).To(Equal("Positionals:\n  <speed>  Drive speed (uint8)\n"))
}

func TestRenderWritesTo(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var buf strings.Builder

	err := help.Render(&buf, help.New("x").AddExamples(help.Example{Title: "Basic", Code: "x run"}))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(help.StripANSI(buf.String())).To(Equal("Examples:\n  Basic:\n    x run\n"))
}

func TestProperty_RenderSectionOrderIsCorrect(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		g := NewWithT(t)

		desc := rapid.StringMatching(`[a-z]{1,12}`).Draw(t, "desc")
		output := help.StripANSI(help.New("test").
			WithDescription("about "+desc).
			WithUsage("test [flags...]").
			AddGlobalFlags(help.Flag{Long: "--debug"}).
			AddFormats(help.Format{Name: "<n>", Desc: "decimal"}).
			AddPositionals(help.Positional{Name: "file"}).
			AddCommandFlags(help.Flag{Long: "--verbose"}).
			AddCommands(help.Command{Name: "sub"}).
			AddExamples(help.Example{Title: "ex", Code: "test"}).
			Render())

		order := []string{"about ", "Usage:", "Global flags:", "Formats:", "Positionals:", "\nFlags:", "Commands:", "Examples:"}
		last := -1

		for _, header := range order {
			idx := strings.Index(output, header)
			g.Expect(idx).To(BeNumerically(">", last), header)
			last = idx
		}
	})
}

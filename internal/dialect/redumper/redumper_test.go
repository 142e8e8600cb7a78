package redumper_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/discargs/internal/dialect/redumper"
	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/grammar/grammartest"
	"github.com/toejough/discargs/internal/media"
	"github.com/toejough/discargs/internal/preset"
	"github.com/toejough/discargs/internal/value"
)

func TestDeriveCDDumpDefaults(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	speed := 48
	p := redumper.Derive(preset.Request{
		System:    media.IBMPCCompatible,
		MediaType: media.CDROM,
		Drive:     "D",
		Filename:  "out.bin",
		Speed:     &speed,
	}, media.Catalog{})

	g.Expect(p.Command()).To(Equal(redumper.CD))
	g.Expect(p.Flag(redumper.Speed).Value).To(Equal(value.OfUInt8(48)))
	g.Expect(p.Flag(redumper.Retries).Value).To(Equal(value.OfInt32(preset.DefaultRetries)))

	text, err := p.Generate()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(text).To(Equal("cd --drive=D --speed=48 --retries=20 --image-name=out"))
}

func TestDeriveYieldsNoCommand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		req  preset.Request
	}{
		{"impossible pairing", preset.Request{System: media.SegaDreamcast, MediaType: media.BluRay, Drive: "D", Filename: "a"}},
		{"media redumper cannot read", preset.Request{System: media.SegaDreamcast, MediaType: media.GDROM, Drive: "D", Filename: "a"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			p := redumper.Derive(tc.req, media.Catalog{})
			g.Expect(p.Command()).To(Equal(grammar.None))

			_, err := p.Generate()
			g.Expect(err).To(MatchError(grammar.ErrNoCommand))
		})
	}
}

func TestDeriveParanoid(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	p := redumper.Derive(preset.Request{
		System:    media.SegaSaturn,
		MediaType: media.CDROM,
		Drive:     "/dev/sr0",
		Filename:  "dumps/game.bin",
		Paranoid:  true,
		Retries:   -1,
	}, media.Catalog{})

	text, err := p.Generate()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(text).To(Equal("cd --verbose --drive=/dev/sr0 --image-path=dumps --image-name=game " +
		"--correct-offset-shift --refine-subchannel --refine-sector-mode"))
}

func TestParseRejectsUnsupportedFlag(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := redumper.Dialect.Parse("cd --retries=5")
	g.Expect(err).NotTo(HaveOccurred())

	_, err = redumper.Dialect.Parse("split --retries=5")
	g.Expect(err).To(MatchError(grammar.ErrUnsupportedFlag))
}

func TestParseRequiresEqualsForm(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := redumper.Dialect.Parse("cd --speed 8")
	g.Expect(err).To(MatchError(grammar.ErrMissingValue))

	_, err = redumper.Dialect.Parse("cd /dev/sr0")
	g.Expect(err).To(MatchError(grammar.ErrTrailingTokens))
}

func TestParseSkipFill(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	p, err := redumper.Dialect.Parse("split --skip-fill=0x55 --image-name=game")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(p.Flag(redumper.SkipFill).Value).To(Equal(value.OfUInt8(0x55)))

	_, err = redumper.Dialect.Parse("split --skip-fill=0x100")
	g.Expect(err).To(MatchError(value.ErrOutOfRange))
}

func TestPresenceFlagsForEveryCommand(t *testing.T) {
	t.Parallel()

	for _, cmd := range redumper.Dialect.Commands() {
		t.Run(cmd.Spelling, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			p, err := redumper.Dialect.Parse(cmd.Spelling + " --verbose --debug")
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(p.Flag(redumper.Verbose).Mode).To(Equal(grammar.PresentNoValue))
			g.Expect(p.Flag(redumper.DebugOutput).Mode).To(Equal(grammar.PresentNoValue))
		})
	}
}

func TestQuotedPathRoundTrip(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	p := redumper.Derive(preset.Request{
		System:    media.SonyPlayStation,
		MediaType: media.CDROM,
		Drive:     "E:",
		Filename:  "my dumps/my file.bin",
	}, media.Catalog{})

	text, err := p.Generate()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(text).To(ContainSubstring(`--image-path="my dumps" --image-name="my file"`))

	parsed, err := redumper.Dialect.Parse(text)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(parsed.Flag(redumper.ImageName).Value.Text()).To(Equal("my file"))
	g.Expect(parsed.Flag(redumper.ImagePath).Value.Text()).To(Equal("my dumps"))
}

func TestProperty_GenerateThenParseIsIdentity(t *testing.T) {
	t.Parallel()
	grammartest.CheckRoundTrip(t, redumper.Dialect)
}

func TestProperty_SupportTableIsSymmetric(t *testing.T) {
	t.Parallel()
	grammartest.CheckSymmetry(t, redumper.Dialect)
}

func TestProperty_DerivedParametersRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)
		req := preset.Request{
			System:    rapid.SampledFrom([]media.System{media.IBMPCCompatible, media.SonyPlayStation2, media.SegaSaturn}).Draw(rt, "system"),
			MediaType: media.CDROM,
			Drive:     rapid.SampledFrom([]string{"D", "/dev/sr0", "E:"}).Draw(rt, "drive"),
			Filename:  rapid.SampledFrom([]string{"out.bin", "my dumps/game.bin", `C:\Dumps\x.iso`}).Draw(rt, "file"),
			Paranoid:  rapid.Bool().Draw(rt, "paranoid"),
			Retries:   rapid.IntRange(-1, 100).Draw(rt, "retries"),
		}

		if rapid.Bool().Draw(rt, "has speed") {
			s := rapid.IntRange(1, 72).Draw(rt, "speed")
			req.Speed = &s
		}

		p := redumper.Derive(req, media.Catalog{})
		g.Expect(p.Command()).To(Equal(redumper.CD))

		_, err := p.Generate()
		g.Expect(err).NotTo(HaveOccurred())
		grammartest.RoundTrip(rt, p)
	})
}

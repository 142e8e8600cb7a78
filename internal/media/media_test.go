package media_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/discargs/internal/media"
)

func TestCatalogValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		system media.System
		media  media.MediaType
		want   bool
	}{
		{media.IBMPCCompatible, media.CDROM, true},
		{media.SegaDreamcast, media.GDROM, true},
		{media.SegaDreamcast, media.BluRay, false},
		{media.SonyPlayStation3, media.CDROM, false},
		{media.SystemNone, media.CDROM, false},
		{media.IBMPCCompatible, media.MediaNone, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.system)+"/"+string(tc.media), func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)
			g.Expect(media.Catalog{}.Valid(tc.system, tc.media)).To(Equal(tc.want))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s, err := media.ParseSystem("psx")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(s).To(Equal(media.SonyPlayStation))

	m, err := media.ParseMediaType("gd")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(m).To(Equal(media.GDROM))

	_, err = media.ParseSystem("amiga")
	g.Expect(err).To(MatchError(media.ErrUnknownSystem))

	_, err = media.ParseMediaType("laserdisc")
	g.Expect(err).To(MatchError(media.ErrUnknownMediaType))
}

func TestValidatorFunc(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var v media.Validator = media.ValidatorFunc(func(s media.System, _ media.MediaType) bool {
		return s == media.SegaSaturn
	})

	g.Expect(v.Valid(media.SegaSaturn, media.BluRay)).To(BeTrue())
	g.Expect(v.Valid(media.SegaDreamcast, media.CDROM)).To(BeFalse())
}

func TestProperty_EveryListedPairingIsValid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)
		system := rapid.SampledFrom(media.Systems()).Draw(rt, "system")
		m := rapid.SampledFrom(media.MediaTypes()).Draw(rt, "media")

		catalog := media.Catalog{}
		listed := false

		for _, candidate := range catalog.MediaFor(system) {
			if candidate == m {
				listed = true
			}
		}

		g.Expect(catalog.Valid(system, m)).To(Equal(listed))
	})
}

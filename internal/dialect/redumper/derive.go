package redumper

import (
	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/media"
	"github.com/toejough/discargs/internal/preset"
)

// Derive builds the starting disc dump parameters for req.
func Derive(req preset.Request, validator media.Validator) *grammar.Params {
	return Recipe.Derive(req, validator)
}

// Recipe holds redumper's derivation rules.
//
//nolint:gochecknoglobals // immutable derivation table
var Recipe = preset.Recipe{
	Dialect: Dialect,
	Command: func(req preset.Request) (grammar.Command, bool) {
		switch req.MediaType {
		case media.CDROM, media.DVD, media.HDDVD, media.BluRay:
			return CD, true
		default:
			return grammar.None, false
		}
	},
	Populate: func(b *preset.Builder, req preset.Request) {
		b.String(Drive, req.Drive)

		if path := req.ImagePath(); path != "" {
			b.String(ImagePath, path)
		}

		b.String(ImageName, req.ImageName())

		if req.Speed != nil {
			b.Int(Speed, int64(*req.Speed))
		}
	},
	Retries: func(b *preset.Builder, _ preset.Request, n int) {
		b.Int(Retries, int64(n))
	},
	Paranoid: preset.Hardening{
		Uniform: []preset.Setting{preset.Bare(Verbose)},
		ByMedia: map[media.MediaType][]preset.Setting{
			media.CDROM: {
				preset.Bare(RefineSubchannel),
				preset.Bare(RefineSectorMode),
			},
		},
		BySystem: map[media.System][]preset.Setting{
			media.SegaSaturn:    {preset.Bare(CorrectOffsetShift)},
			media.SegaMegaCD:    {preset.Bare(CorrectOffsetShift)},
			media.NECPCEngineCD: {preset.Bare(CorrectOffsetShift)},
		},
	},
}

package aaru

import (
	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/media"
	"github.com/toejough/discargs/internal/preset"
	"github.com/toejough/discargs/internal/value"
)

// Derive builds the starting media dump parameters for req.
func Derive(req preset.Request, validator media.Validator) *grammar.Params {
	return Recipe.Derive(req, validator)
}

// Recipe holds Aaru's derivation rules.
//
//nolint:gochecknoglobals // immutable derivation table
var Recipe = preset.Recipe{
	Dialect: Dialect,
	Command: func(preset.Request) (grammar.Command, bool) {
		// Aaru reads every supported medium through the same command.
		return MediaDump, true
	},
	Populate: func(b *preset.Builder, req preset.Request) {
		b.Positionals(map[grammar.PositionalName]value.Value{
			Device: value.OfString(req.Drive),
			Output: value.OfString(req.Filename),
		})

		if req.Speed != nil {
			b.Int(Speed, int64(*req.Speed))
		}
	},
	Retries: func(b *preset.Builder, _ preset.Request, n int) {
		b.Int(RetryPasses, int64(n))
	},
	Defaults: preset.Hardening{
		ByMedia: map[media.MediaType][]preset.Setting{
			media.CDROM: {
				preset.True(FirstPregap),
				preset.True(FixOffset),
				preset.Text(Subchannel, "any"),
			},
			media.DVD:    {preset.True(StoreEncrypted)},
			media.HDDVD:  {preset.True(StoreEncrypted)},
			media.BluRay: {preset.True(StoreEncrypted)},
		},
	},
	Paranoid: preset.Hardening{
		Uniform: []preset.Setting{
			preset.True(Debug),
			preset.True(Verbose),
			preset.True(Metadata),
		},
		ByMedia: map[media.MediaType][]preset.Setting{
			media.CDROM: {
				preset.True(FixSubchannel),
				preset.True(FixSubchannelCRC),
				preset.True(FixSubchannelPosition),
				preset.True(RetrySubchannel),
			},
			media.DVD: {preset.True(TitleKeys)},
		},
		BySystem: map[media.System][]preset.Setting{
			media.AudioCD:    {preset.True(SkipCDiReadyHole)},
			media.EnhancedCD: {preset.True(SkipCDiReadyHole)},
		},
	},
}

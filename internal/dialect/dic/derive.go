package dic

import (
	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/media"
	"github.com/toejough/discargs/internal/preset"
	"github.com/toejough/discargs/internal/value"
)

// Derive builds the starting dump parameters for req.
func Derive(req preset.Request, validator media.Validator) *grammar.Params {
	return Recipe.Derive(req, validator)
}

// Recipe holds DiscImageCreator's derivation rules.
//
//nolint:gochecknoglobals // immutable derivation table
var Recipe = preset.Recipe{
	Dialect:  Dialect,
	Command:  command,
	Populate: populate,
	// /c2 is skipped when generating for commands that do not read C2 errors.
	Retries: func(b *preset.Builder, _ preset.Request, n int) {
		b.Int(C2Opcode, int64(n))
	},
	Defaults: preset.Hardening{
		ByMedia: map[media.MediaType][]preset.Setting{
			media.GameCubeDisc: {preset.Bare(Raw)},
			media.WiiDisc:      {preset.Bare(Raw)},
		},
	},
	Paranoid: preset.Hardening{
		Uniform: []preset.Setting{preset.Bare(ScanFileProtect)},
		ByMedia: map[media.MediaType][]preset.Setting{
			media.CDROM: {
				preset.Bare(ScanSectorProtect),
				preset.Int(SubchannelReadLevel, 2),
			},
			media.GDROM: {preset.Int(SubchannelReadLevel, 2)},
			media.DVD:   {preset.Bare(CopyrightManagement)},
		},
		BySystem: map[media.System][]preset.Setting{
			media.SonyPlayStation: {preset.Bare(NoFixSubQLibCrypt)},
			media.IBMPCCompatible: {
				preset.Bare(NoFixSubQSecuROM),
				preset.Bare(Tages),
			},
			media.MicrosoftXbox:    {preset.Bare(NoSkipSS)},
			media.MicrosoftXbox360: {preset.Bare(NoSkipSS)},
		},
	},
}

func command(req preset.Request) (grammar.Command, bool) {
	switch req.MediaType {
	case media.CDROM:
		if req.System == media.SuperAudioCD {
			return SACD, true
		}

		return CompactDisc, true
	case media.DVD:
		if req.System == media.MicrosoftXbox || req.System == media.MicrosoftXbox360 {
			return XBOX, true
		}

		return DigitalVideoDisc, true
	case media.HDDVD, media.GameCubeDisc, media.WiiDisc:
		return DigitalVideoDisc, true
	case media.BluRay:
		return BluRay, true
	case media.GDROM:
		return GDROM, true
	case media.FloppyDisk:
		return Floppy, true
	case media.HardDisk:
		return Disk, true
	case media.DataCartridge:
		return Tape, true
	default:
		return grammar.None, false
	}
}

// populate fills the positionals; an absent speed becomes 0, which leaves the
// choice to the drive.
func populate(b *preset.Builder, req preset.Request) {
	speed, err := value.OfInt(value.UInt8, int64(req.SpeedOr(0)))
	if err != nil {
		b.Fail(err)

		return
	}

	b.Positionals(map[grammar.PositionalName]value.Value{
		Drive: value.OfString(req.Drive),
		File:  value.OfString(req.Filename),
		Speed: speed,
	})
}

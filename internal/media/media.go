// Package media names the systems and media types a dump request can target
// and decides which pairings are possible.
package media

import (
	"errors"
	"fmt"
	"slices"
)

// Exported variables.
var (
	ErrUnknownMediaType = errors.New("unknown media type")
	ErrUnknownSystem    = errors.New("unknown system")
)

// MediaType identifies a physical medium, e.g. "cd".
type MediaType string

// MediaType values.
const (
	MediaNone     MediaType = ""
	CDROM         MediaType = "cd"
	DVD           MediaType = "dvd"
	BluRay        MediaType = "bd"
	HDDVD         MediaType = "hddvd"
	GDROM         MediaType = "gd"
	GameCubeDisc  MediaType = "gc-disc"
	WiiDisc       MediaType = "wii-disc"
	FloppyDisk    MediaType = "floppy"
	HardDisk      MediaType = "hdd"
	DataCartridge MediaType = "tape"
)

// ParseMediaType resolves a media type name.
func ParseMediaType(name string) (MediaType, error) {
	m := MediaType(name)
	if !slices.Contains(MediaTypes(), m) {
		return MediaNone, fmt.Errorf("%w: %q", ErrUnknownMediaType, name)
	}

	return m, nil
}

// MediaTypes returns every known media type.
func MediaTypes() []MediaType {
	return []MediaType{CDROM, DVD, BluRay, HDDVD, GDROM, GameCubeDisc, WiiDisc, FloppyDisk, HardDisk, DataCartridge}
}

// System identifies the platform a disc belongs to, e.g. "psx".
type System string

// System values.
const (
	SystemNone       System = ""
	IBMPCCompatible  System = "ibmpc"
	AppleMacintosh   System = "mac"
	AudioCD          System = "audio-cd"
	BDVideo          System = "bd-video"
	DVDVideo         System = "dvd-video"
	EnhancedCD       System = "enhanced-cd"
	MicrosoftXbox    System = "xbox"
	MicrosoftXbox360 System = "xbox360"
	NECPCEngineCD    System = "pce"
	NintendoGameCube System = "gc"
	NintendoWii      System = "wii"
	SegaDreamcast    System = "dc"
	SegaMegaCD       System = "megacd"
	SegaSaturn       System = "saturn"
	SonyPlayStation  System = "psx"
	SonyPlayStation2 System = "ps2"
	SonyPlayStation3 System = "ps3"
	SonyPlayStation4 System = "ps4"
	SuperAudioCD     System = "sacd"
	TapeArchive      System = "tape"
)

// ParseSystem resolves a system name.
func ParseSystem(name string) (System, error) {
	s := System(name)
	if _, ok := catalog[s]; !ok {
		return SystemNone, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}

	return s, nil
}

// Systems returns every known system in name order.
func Systems() []System {
	out := make([]System, 0, len(catalog))
	for s := range catalog {
		out = append(out, s)
	}

	slices.Sort(out)

	return out
}

// Validator decides whether a system can come on a media type.
type Validator interface {
	Valid(system System, media MediaType) bool
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(System, MediaType) bool

// Valid calls f.
func (f ValidatorFunc) Valid(system System, media MediaType) bool {
	return f(system, media)
}

// Catalog is the built-in table of known system/media pairings.
type Catalog struct{}

// MediaFor returns the media types a system can come on.
func (Catalog) MediaFor(system System) []MediaType {
	return slices.Clone(catalog[system])
}

// Valid reports whether the pairing is in the table.
func (Catalog) Valid(system System, media MediaType) bool {
	return slices.Contains(catalog[system], media)
}

// unexported variables.
var (
	//nolint:gochecknoglobals // read-only pairing table
	catalog = map[System][]MediaType{
		IBMPCCompatible:  {CDROM, DVD, BluRay, HDDVD, FloppyDisk, HardDisk},
		AppleMacintosh:   {CDROM, DVD, BluRay, FloppyDisk, HardDisk},
		AudioCD:          {CDROM},
		BDVideo:          {BluRay},
		DVDVideo:         {DVD},
		EnhancedCD:       {CDROM},
		MicrosoftXbox:    {CDROM, DVD},
		MicrosoftXbox360: {CDROM, DVD, HDDVD},
		NECPCEngineCD:    {CDROM},
		NintendoGameCube: {GameCubeDisc},
		NintendoWii:      {WiiDisc},
		SegaDreamcast:    {CDROM, GDROM},
		SegaMegaCD:       {CDROM},
		SegaSaturn:       {CDROM},
		SonyPlayStation:  {CDROM},
		SonyPlayStation2: {CDROM, DVD},
		SonyPlayStation3: {BluRay},
		SonyPlayStation4: {BluRay},
		SuperAudioCD:     {CDROM},
		TapeArchive:      {DataCartridge},
	}
)

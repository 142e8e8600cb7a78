// Package dic describes the command line of DiscImageCreator, which writes
// positionals straight after the command and slash-prefixed flags last.
package dic

import (
	"github.com/toejough/discargs/internal/flags"
	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/value"
)

// Commands.
const (
	Audio            grammar.Command = "audio"
	BluRay           grammar.Command = "bd"
	CloseTray        grammar.Command = "closetray"
	CompactDisc      grammar.Command = "cd"
	Data             grammar.Command = "data"
	DigitalVideoDisc grammar.Command = "dvd"
	Disk             grammar.Command = "disk"
	Eject            grammar.Command = "eject"
	Floppy           grammar.Command = "fd"
	GDROM            grammar.Command = "gd"
	List             grammar.Command = "ls"
	MDS              grammar.Command = "mds"
	Merge            grammar.Command = "merge"
	Reset            grammar.Command = "reset"
	SACD             grammar.Command = "sacd"
	Start            grammar.Command = "start"
	Stop             grammar.Command = "stop"
	Sub              grammar.Command = "sub"
	Swap             grammar.Command = "swap"
	Tape             grammar.Command = "tape"
	XBOX             grammar.Command = "xbox"
)

// Flags.
const (
	AddOffset           flags.Name = "addoffset"
	AMSF                flags.Name = "amsf"
	AtariJaguar         flags.Name = "atarijaguar"
	AVDP                flags.Name = "avdp"
	BEOpcode            flags.Name = "beopcode"
	C2Opcode            flags.Name = "c2opcode"
	CopyrightManagement flags.Name = "copyright"
	D8Opcode            flags.Name = "d8opcode"
	DisableBeep         flags.Name = "disablebeep"
	Fix                 flags.Name = "fix"
	ForceUnitAccess     flags.Name = "forceunitaccess"
	MultiSectorRead     flags.Name = "multisectorread"
	MultiSession        flags.Name = "multisession"
	NoFixSubP           flags.Name = "nofixsubp"
	NoFixSubQ           flags.Name = "nofixsubq"
	NoFixSubQLibCrypt   flags.Name = "nofixsubqlibcrypt"
	NoFixSubQSecuROM    flags.Name = "nofixsubqsecurom"
	NoFixSubRtoW        flags.Name = "nofixsubrtow"
	NoSkipSS            flags.Name = "noskipss"
	PadSector           flags.Name = "padsector"
	Raw                 flags.Name = "raw"
	Resume              flags.Name = "resume"
	Reverse             flags.Name = "reverse"
	ScanAntiMod         flags.Name = "scanantimod"
	ScanFileProtect     flags.Name = "scanfileprotect"
	ScanSectorProtect   flags.Name = "scansectorprotect"
	SeventyFour         flags.Name = "seventyfour"
	SkipSector          flags.Name = "skipsector"
	SubchannelReadLevel flags.Name = "subchannelreadlevel"
	Tages               flags.Name = "tages"
	VideoNow            flags.Name = "videonow"
	VideoNowColor       flags.Name = "videonowcolor"
	VideoNowXP          flags.Name = "videonowxp"
)

// Positionals.
const (
	Drive    grammar.PositionalName = "drive"
	End      grammar.PositionalName = "end"
	File     grammar.PositionalName = "file"
	File2    grammar.PositionalName = "file2"
	Speed    grammar.PositionalName = "speed"
	StartLBA grammar.PositionalName = "start"
)

// Dialect is the DiscImageCreator grammar.
//
//nolint:gochecknoglobals // immutable dialect table
var Dialect = grammar.MustDialect(grammar.Tables{
	Name:        "dic",
	Executable:  "DiscImageCreator",
	Layout:      grammar.PositionalsThenFlags,
	Separator:   ' ',
	Commands:    commands(),
	Flags:       flagDefs(),
	Positionals: positionals(),
	Support:     support(),
})

func commands() []grammar.CommandDef {
	drive := []grammar.PositionalName{Drive}
	file := []grammar.PositionalName{File}
	driveFile := []grammar.PositionalName{Drive, File}
	disc := []grammar.PositionalName{Drive, File, Speed}
	ranged := []grammar.PositionalName{Drive, File, Speed, StartLBA, End}

	return []grammar.CommandDef{
		{ID: Audio, Spelling: "audio", Positionals: ranged, Dumping: true, Desc: "Dump a CD from start to end (LBA) as audio"},
		{ID: BluRay, Spelling: "bd", Positionals: disc, Dumping: true, Desc: "Dump a BD"},
		{ID: CloseTray, Spelling: "close", Positionals: drive, Desc: "Close the tray"},
		{ID: CompactDisc, Spelling: "cd", Positionals: disc, Dumping: true, Desc: "Dump a CD"},
		{ID: Data, Spelling: "data", Positionals: ranged, Dumping: true, Desc: "Dump a CD from start to end (LBA) as data"},
		{ID: DigitalVideoDisc, Spelling: "dvd", Positionals: disc, Dumping: true, Desc: "Dump a DVD"},
		{ID: Disk, Spelling: "disk", Positionals: driveFile, Dumping: true, Desc: "Dump a removable disk"},
		{ID: Eject, Spelling: "eject", Positionals: drive, Desc: "Eject the tray"},
		{ID: Floppy, Spelling: "fd", Positionals: driveFile, Dumping: true, Desc: "Dump a floppy disk"},
		{ID: GDROM, Spelling: "gd", Positionals: disc, Dumping: true, Desc: "Dump a HD area of GD"},
		{ID: List, Spelling: "ls", Positionals: drive, Desc: "Show drive information"},
		{ID: MDS, Spelling: "mds", Positionals: file, Desc: "Show mds file information"},
		{ID: Merge, Spelling: "merge", Positionals: []grammar.PositionalName{File, File2}, Desc: "Merge two images"},
		{ID: Reset, Spelling: "reset", Positionals: drive, Desc: "Reset the drive"},
		{ID: SACD, Spelling: "sacd", Positionals: driveFile, Dumping: true, Desc: "Dump a Super Audio CD"},
		{ID: Start, Spelling: "start", Positionals: drive, Desc: "Spin up the disc"},
		{ID: Stop, Spelling: "stop", Positionals: drive, Desc: "Spin down the disc"},
		{ID: Sub, Spelling: "sub", Positionals: file, Desc: "Parse a sub file"},
		{ID: Swap, Spelling: "swap", Positionals: disc, Dumping: true, Desc: "Dump a CD using a swap trick"},
		{ID: Tape, Spelling: "tape", Positionals: file, Desc: "Parse a tape image"},
		{ID: XBOX, Spelling: "xbox", Positionals: driveFile, Dumping: true, Desc: "Dump an Xbox or Xbox 360 disc"},
	}
}

func flagDefs() []flags.Def {
	presence := func(name flags.Name, long, desc string) flags.Def {
		return flags.Def{Name: name, Long: long, Kind: value.Presence, Desc: desc}
	}

	optional := func(name flags.Name, long string, kind value.Kind, desc string) flags.Def {
		return flags.Def{Name: name, Long: long, Kind: kind, Optional: true, Desc: desc}
	}

	return []flags.Def{
		{Name: AddOffset, Long: "/a", Kind: value.Int32, Desc: "Add CD offset manually (only audio CD)"},
		presence(AMSF, "/p", "Dump AMSF from 00:00:00 to 00:01:74"),
		presence(AtariJaguar, "/aj", "Atari Jaguar CD"),
		presence(AVDP, "/avdp", "Use the anchor volume descriptor pointer as file length"),
		optional(BEOpcode, "/be", value.String, "Use 0xbe as the opcode for reading CD: raw or pack"),
		optional(C2Opcode, "/c2", value.Int32, "Continue reading CD to recover C2 error existing sector"),
		presence(CopyrightManagement, "/c", "Log copyright management information"),
		presence(D8Opcode, "/d8", "Use 0xd8 as the opcode for reading CD forcibly"),
		presence(DisableBeep, "/q", "Disable beep"),
		{Name: Fix, Long: "/fix", Kind: value.Int32, Range: value.AtLeast(0), Desc: "Fix the size of the last sector"},
		optional(ForceUnitAccess, "/f", value.Int32, "Use ForceUnitAccess flag to delete the drive cache"),
		optional(MultiSectorRead, "/mr", value.Int32, "Read the next sector as well"),
		presence(MultiSession, "/ms", "Read the lead-out of the 1st session and the lead-in of the 2nd session"),
		presence(NoFixSubP, "/np", "Do not fix SubP"),
		presence(NoFixSubQ, "/nq", "Do not fix SubQ"),
		presence(NoFixSubQLibCrypt, "/nl", "Do not fix SubQ (PSX LibCrypt)"),
		presence(NoFixSubQSecuROM, "/ns", "Do not fix SubQ (SecuROM)"),
		presence(NoFixSubRtoW, "/nr", "Do not fix SubRtoW"),
		optional(NoSkipSS, "/nss", value.Int32, "Do not skip reading the security sector"),
		{Name: PadSector, Long: "/ps", Kind: value.UInt8, Desc: "Set the padding byte for unreadable sectors"},
		presence(Raw, "/raw", "Dump a DVD with raw mode"),
		presence(Resume, "/re", "Resume a DVD dump"),
		presence(Reverse, "/r", "Read CD from the end to the start"),
		presence(ScanAntiMod, "/am", "Scan anti-mod string"),
		optional(ScanFileProtect, "/sf", value.Int32, "Scan file to detect protect"),
		presence(ScanSectorProtect, "/ss", "Scan sector to detect protect"),
		presence(SeventyFour, "/74", "Read 74 minute disc using swap trick"),
		{Name: SkipSector, Long: "/sk", Kind: value.Int32, Range: value.AtLeast(0), Desc: "Skip sectors"},
		{
			Name: SubchannelReadLevel, Long: "/s", Kind: value.Int8, Range: value.Between(0, 2),
			Desc: "Set the subchannel read level: 0 no read, 1 read, 2 read and retry",
		},
		presence(Tages, "/t", "Scan for TAGES"),
		optional(VideoNow, "/vn", value.Int32, "Dump a VideoNow disc"),
		presence(VideoNowColor, "/vnc", "Dump a VideoNow Color disc"),
		presence(VideoNowXP, "/vnx", "Dump a VideoNow XP disc"),
	}
}

func positionals() []grammar.PositionalDef {
	return []grammar.PositionalDef{
		{Name: Drive, Kind: value.String, Desc: "Drive letter or path"},
		{Name: End, Kind: value.Int32, Range: value.AtLeast(0), Desc: "Last LBA to read"},
		{Name: File, Kind: value.String, Desc: "Output or input file"},
		{Name: File2, Kind: value.String, Desc: "Second input file"},
		{Name: Speed, Kind: value.UInt8, Range: value.Between(0, 72), Desc: "Drive speed, 0 for the drive default"},
		{Name: StartLBA, Kind: value.Int32, Range: value.AtLeast(0), Desc: "First LBA to read"},
	}
}

func support() map[flags.Name][]grammar.Command {
	cdLike := []grammar.Command{Audio, CompactDisc, Data, GDROM, Swap}
	cdSwap := []grammar.Command{CompactDisc, Swap}
	reading := []grammar.Command{Audio, BluRay, CompactDisc, Data, DigitalVideoDisc, GDROM, Swap, XBOX}
	dvd := []grammar.Command{DigitalVideoDisc}

	return map[flags.Name][]grammar.Command{
		AddOffset:           {Audio, CompactDisc, Data},
		AMSF:                {CompactDisc},
		AtariJaguar:         {CompactDisc},
		AVDP:                dvd,
		BEOpcode:            cdLike,
		C2Opcode:            cdLike,
		CopyrightManagement: dvd,
		D8Opcode:            cdLike,
		DisableBeep: {
			Audio, BluRay, CompactDisc, Data, DigitalVideoDisc, Disk, Floppy, GDROM, SACD, Swap, XBOX,
		},
		Fix:                 dvd,
		ForceUnitAccess:     reading,
		MultiSectorRead:     cdLike,
		MultiSession:        cdSwap,
		NoFixSubP:           cdLike,
		NoFixSubQ:           cdLike,
		NoFixSubQLibCrypt:   cdSwap,
		NoFixSubQSecuROM:    cdSwap,
		NoFixSubRtoW:        cdLike,
		NoSkipSS:            {DigitalVideoDisc, XBOX},
		PadSector:           cdLike,
		Raw:                 dvd,
		Resume:              {DigitalVideoDisc, XBOX},
		Reverse:             {Audio, Data},
		ScanAntiMod:         cdSwap,
		ScanFileProtect:     {Audio, CompactDisc, Data, DigitalVideoDisc, Swap},
		ScanSectorProtect:   {CompactDisc, Data, Swap},
		SeventyFour:         {Swap},
		SkipSector:          {Audio, CompactDisc, Data},
		SubchannelReadLevel: cdLike,
		Tages:               cdSwap,
		VideoNow:            {CompactDisc},
		VideoNowColor:       {CompactDisc},
		VideoNowXP:          {CompactDisc},
	}
}

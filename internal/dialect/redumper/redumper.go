// Package redumper describes the command line of redumper, which writes every
// value as --name=value and takes no positional arguments.
package redumper

import (
	"github.com/toejough/discargs/internal/flags"
	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/value"
)

// Commands.
const (
	CD         grammar.Command = "cd"
	Debug      grammar.Command = "debug"
	Dump       grammar.Command = "dump"
	DumpExtra  grammar.Command = "dump-extra"
	DVDKey     grammar.Command = "dvdkey"
	Eject      grammar.Command = "eject"
	Hash       grammar.Command = "hash"
	Info       grammar.Command = "info"
	Protection grammar.Command = "protection"
	Refine     grammar.Command = "refine"
	Rings      grammar.Command = "rings"
	Skeleton   grammar.Command = "skeleton"
	Split      grammar.Command = "split"
	Subchannel grammar.Command = "subchannel"
	Verify     grammar.Command = "verify"
)

// Flags.
const (
	AsusSkipLeadout       flags.Name = "asus-skip-leadout"
	AudioSilenceThreshold flags.Name = "audio-silence-threshold"
	CorrectOffsetShift    flags.Name = "correct-offset-shift"
	DebugOutput           flags.Name = "debug"
	DisableCDText         flags.Name = "disable-cdtext"
	Drive                 flags.Name = "drive"
	DriveC2Shift          flags.Name = "drive-c2-shift"
	DrivePregapStart      flags.Name = "drive-pregap-start"
	DriveReadMethod       flags.Name = "drive-read-method"
	DriveReadOffset       flags.Name = "drive-read-offset"
	DriveSectorOrder      flags.Name = "drive-sector-order"
	DriveType             flags.Name = "drive-type"
	DumpReadSize          flags.Name = "dump-read-size"
	DumpWriteOffset       flags.Name = "dump-write-offset"
	ForceOffset           flags.Name = "force-offset"
	ForceQTOC             flags.Name = "force-qtoc"
	ForceSplit            flags.Name = "force-split"
	ForceUnscrambled      flags.Name = "force-unscrambled"
	ImageName             flags.Name = "image-name"
	ImagePath             flags.Name = "image-path"
	ISO9660Trim           flags.Name = "iso9660-trim"
	LBAEnd                flags.Name = "lba-end"
	LBAStart              flags.Name = "lba-start"
	LeaveUnchanged        flags.Name = "leave-unchanged"
	LegacySubs            flags.Name = "legacy-subs"
	OffsetShiftRelocate   flags.Name = "offset-shift-relocate"
	OverreadLeadout       flags.Name = "overread-leadout"
	Overwrite             flags.Name = "overwrite"
	PlextorLeadinRetries  flags.Name = "plextor-leadin-retries"
	PlextorSkipLeadin     flags.Name = "plextor-skip-leadin"
	RefineSectorMode      flags.Name = "refine-sector-mode"
	RefineSubchannel      flags.Name = "refine-subchannel"
	Retries               flags.Name = "retries"
	Skip                  flags.Name = "skip"
	SkipFill              flags.Name = "skip-fill"
	Speed                 flags.Name = "speed"
	Verbose               flags.Name = "verbose"
)

// Dialect is the redumper grammar.
//
//nolint:gochecknoglobals // immutable dialect table
var Dialect = grammar.MustDialect(grammar.Tables{
	Name:       "redumper",
	Executable: "redumper",
	Layout:     grammar.FlagsThenPositionals,
	Separator:  '=',
	Commands:   commands(),
	Flags:      flagDefs(),
	Support:    support(),
})

func commands() []grammar.CommandDef {
	return []grammar.CommandDef{
		{ID: CD, Spelling: "cd", Dumping: true, Desc: "Dump, refine, split and describe a disc in one go"},
		{ID: Dump, Spelling: "dump", Dumping: true, Desc: "Dump a disc"},
		{ID: DumpExtra, Spelling: "dump-extra", Dumping: true, Desc: "Dump lead-in and lead-out areas"},
		{ID: Refine, Spelling: "refine", Dumping: true, Desc: "Reread sectors that failed to dump"},
		{ID: Verify, Spelling: "verify", Dumping: true, Desc: "Compare an existing dump with the disc"},
		{ID: DVDKey, Spelling: "dvdkey", Desc: "Extract DVD CSS keys"},
		{ID: Eject, Spelling: "eject", Desc: "Eject the drive tray"},
		{ID: Protection, Spelling: "protection", Desc: "Scan a dump for copy protection"},
		{ID: Split, Spelling: "split", Desc: "Split a dump into tracks"},
		{ID: Hash, Spelling: "hash", Desc: "Hash the split tracks"},
		{ID: Info, Spelling: "info", Desc: "Describe the dump"},
		{ID: Skeleton, Spelling: "skeleton", Desc: "Write a compressible skeleton of the dump"},
		{ID: Rings, Spelling: "rings", Desc: "Scan the disc for rings"},
		{ID: Subchannel, Spelling: "subchannel", Desc: "Print the subchannel"},
		{ID: Debug, Spelling: "debug", Desc: "Developer diagnostics"},
	}
}

func flagDefs() []flags.Def {
	presence := func(name flags.Name, desc string) flags.Def {
		return flags.Def{Name: name, Long: "--" + string(name), Kind: value.Presence, Desc: desc}
	}

	text := func(name flags.Name, desc string) flags.Def {
		return flags.Def{Name: name, Long: "--" + string(name), Kind: value.String, Desc: desc}
	}

	number := func(name flags.Name, kind value.Kind, bounds *value.Range, desc string) flags.Def {
		return flags.Def{Name: name, Long: "--" + string(name), Kind: kind, Range: bounds, Desc: desc}
	}

	return []flags.Def{
		presence(Verbose, "Verbose output"),
		presence(DebugOutput, "Debug output"),
		text(Drive, "Drive to use, first available drive with disc if not provided"),
		number(Speed, value.UInt8, nil, "Drive read speed, optimal drive speed will be used if not provided"),
		number(Retries, value.Int32, value.AtLeast(0), "Number of sector retries in case of SCSI/C2 error"),
		text(ImagePath, "Dump files base directory"),
		text(ImageName, "Dump files prefix, autogenerated in dump mode if not provided"),
		presence(Overwrite, "Overwrite existing dump files"),

		text(DriveType, "Override drive type: GENERIC, PLEXTOR, LG_ASU8A, LG_ASU8B, LG_ASU8C, LG_ASU3, LG_ASU2"),
		number(DriveReadOffset, value.Int32, nil, "Override drive read offset"),
		number(DriveC2Shift, value.Int32, nil, "Override drive C2 shift"),
		number(DrivePregapStart, value.Int32, nil, "Override drive pre-gap start LBA"),
		text(DriveReadMethod, "Override drive read method: BE, D8, BE_CDDA"),
		text(DriveSectorOrder, "Override drive sector order: DATA_C2_SUB, DATA_SUB_C2, DATA_SUB, DATA_C2"),

		presence(PlextorSkipLeadin, "Skip dumping lead-in using negative range"),
		number(PlextorLeadinRetries, value.Int32, value.AtLeast(0), "Maximum number of lead-in retries per session"),
		presence(AsusSkipLeadout, "Skip extracting lead-out from drive cache"),
		presence(DisableCDText, "Disable CD-TEXT reading"),

		number(ForceOffset, value.Int32, nil, "Override offset autodetection and use supplied value"),
		number(AudioSilenceThreshold, value.Int32, value.Between(0, 1<<15-1), "Maximum absolute sample value to treat as silence"),
		presence(CorrectOffsetShift, "Correct disc write offset shift"),
		presence(OffsetShiftRelocate, "Don't merge offset groups with non-matching LBA"),
		presence(ForceSplit, "Fail on sector errors while splitting"),
		presence(LeaveUnchanged, "Don't replace erroneous sectors with generated ones"),
		presence(ForceQTOC, "Force QTOC based track split"),
		number(SkipFill, value.UInt8, nil, "Fill byte value for skipped sectors"),
		presence(ISO9660Trim, "Trim each ISO9660 data track to the filesystem size"),

		number(LBAStart, value.Int32, nil, "LBA to start dumping from"),
		number(LBAEnd, value.Int32, nil, "LBA to stop dumping at, everything before this value is dumped"),
		presence(RefineSubchannel, "Refine subchannel"),
		presence(RefineSectorMode, "Refine sectors whose mode could not be determined"),
		text(Skip, "LBA ranges of sectors to skip, e.g. 100-200:3000-4000"),
		number(DumpWriteOffset, value.Int32, nil, "Write offset for data discs"),
		number(DumpReadSize, value.Int32, value.AtLeast(1), "Number of sectors to read at once on initial dump"),
		presence(OverreadLeadout, "Read lead-out sectors while dumping"),
		presence(ForceUnscrambled, "Store data sectors unscrambled"),
		presence(LegacySubs, "Replicate the legacy subchannel layout"),
	}
}

func support() map[flags.Name][]grammar.Command {
	all := []grammar.Command{
		CD, Dump, DumpExtra, Refine, Verify, DVDKey, Eject, Protection, Split, Hash, Info, Skeleton, Rings, Subchannel, Debug,
	}
	reading := []grammar.Command{CD, Dump, DumpExtra, Refine, Verify, DVDKey, Rings}
	drive := []grammar.Command{CD, Dump, DumpExtra, Refine, Verify, DVDKey, Eject, Rings}
	dumping := []grammar.Command{CD, Dump, DumpExtra, Refine}
	image := []grammar.Command{
		CD, Dump, DumpExtra, Refine, Verify, DVDKey, Protection, Split, Hash, Info, Skeleton, Rings, Subchannel, Debug,
	}
	config := []grammar.Command{CD, Dump, DumpExtra, Refine, Verify, Rings}
	leadin := []grammar.Command{CD, Dump, Refine}
	splitting := []grammar.Command{CD, Split}
	ranges := []grammar.Command{CD, Dump, DumpExtra, Refine, Verify, Debug}
	initial := []grammar.Command{CD, Dump}

	return map[flags.Name][]grammar.Command{
		Verbose:     all,
		DebugOutput: all,
		Drive:       drive,
		Speed:       reading,
		Retries:     dumping,
		ImagePath:   image,
		ImageName:   image,
		Overwrite:   {CD, Dump, DumpExtra, Refine, Split, Skeleton},

		DriveType:        config,
		DriveReadOffset:  config,
		DriveC2Shift:     config,
		DrivePregapStart: config,
		DriveReadMethod:  config,
		DriveSectorOrder: config,

		PlextorSkipLeadin:    leadin,
		PlextorLeadinRetries: leadin,
		AsusSkipLeadout:      leadin,
		DisableCDText:        leadin,

		ForceOffset:           splitting,
		AudioSilenceThreshold: splitting,
		CorrectOffsetShift:    splitting,
		OffsetShiftRelocate:   splitting,
		ForceSplit:            splitting,
		LeaveUnchanged:        splitting,
		ForceQTOC:             splitting,
		SkipFill:              {CD, Dump, Split},
		ISO9660Trim:           splitting,

		LBAStart:         ranges,
		LBAEnd:           ranges,
		RefineSubchannel: leadin,
		RefineSectorMode: {CD, Refine},
		Skip:             leadin,
		DumpWriteOffset:  initial,
		DumpReadSize:     initial,
		OverreadLeadout:  initial,
		ForceUnscrambled: initial,
		LegacySubs:       {CD, Split, Subchannel},
	}
}

// Package aaru describes the command line of the Aaru data preservation suite.
package aaru

import (
	"github.com/toejough/discargs/internal/flags"
	"github.com/toejough/discargs/internal/grammar"
	"github.com/toejough/discargs/internal/value"
)

// Commands.
const (
	DatabaseStats      grammar.Command = "database-stats"
	DatabaseUpdate     grammar.Command = "database-update"
	DeviceInfo         grammar.Command = "device-info"
	DeviceList         grammar.Command = "device-list"
	DeviceReport       grammar.Command = "device-report"
	FilesystemExtract  grammar.Command = "filesystem-extract"
	FilesystemList     grammar.Command = "filesystem-list"
	ImageChecksum      grammar.Command = "image-checksum"
	ImageCompare       grammar.Command = "image-compare"
	ImageConvert       grammar.Command = "image-convert"
	ImageCreateSidecar grammar.Command = "image-create-sidecar"
	ImageDecode        grammar.Command = "image-decode"
	ImageEntropy       grammar.Command = "image-entropy"
	ImageInfo          grammar.Command = "image-info"
	ImagePrint         grammar.Command = "image-print"
	ImageVerify        grammar.Command = "image-verify"
	MediaDump          grammar.Command = "media-dump"
	MediaInfo          grammar.Command = "media-info"
	MediaScan          grammar.Command = "media-scan"
	Remote             grammar.Command = "remote"
)

// Flags.
const (
	Adler32               flags.Name = "adler32"
	BlockSize             flags.Name = "block-size"
	CICMXML               flags.Name = "cicm-xml"
	Clear                 flags.Name = "clear"
	ClearAll              flags.Name = "clear-all"
	Comments              flags.Name = "comments"
	Count                 flags.Name = "count"
	CRC16                 flags.Name = "crc16"
	CRC32                 flags.Name = "crc32"
	CRC64                 flags.Name = "crc64"
	Creator               flags.Name = "creator"
	Debug                 flags.Name = "debug"
	DiskTags              flags.Name = "disk-tags"
	DriveManufacturer     flags.Name = "drive-manufacturer"
	DriveModel            flags.Name = "drive-model"
	DriveRevision         flags.Name = "drive-revision"
	DriveSerial           flags.Name = "drive-serial"
	DuplicatedSectors     flags.Name = "duplicated-sectors"
	Encoding              flags.Name = "encoding"
	FirstPregap           flags.Name = "first-pregap"
	FixOffset             flags.Name = "fix-offset"
	FixSubchannel         flags.Name = "fix-subchannel"
	FixSubchannelCRC      flags.Name = "fix-subchannel-crc"
	FixSubchannelPosition flags.Name = "fix-subchannel-position"
	Fletcher16            flags.Name = "fletcher16"
	Fletcher32            flags.Name = "fletcher32"
	Force                 flags.Name = "force"
	Format                flags.Name = "format"
	GenerateSubchannels   flags.Name = "generate-subchannels"
	IBGLog                flags.Name = "ibg-log"
	Length                flags.Name = "length"
	LongFormat            flags.Name = "long-format"
	LongSectors           flags.Name = "long-sectors"
	MD5                   flags.Name = "md5"
	Metadata              flags.Name = "metadata"
	MHDDLog               flags.Name = "mhdd-log"
	Namespace             flags.Name = "namespace"
	Options               flags.Name = "options"
	OutputPrefix          flags.Name = "output-prefix"
	Pause                 flags.Name = "pause"
	Persistent            flags.Name = "persistent"
	Private               flags.Name = "private"
	Resume                flags.Name = "resume"
	RetryPasses           flags.Name = "retry-passes"
	RetrySubchannel       flags.Name = "retry-subchannel"
	SectorTags            flags.Name = "sector-tags"
	SeparatedTracks       flags.Name = "separated-tracks"
	SHA1                  flags.Name = "sha1"
	SHA256                flags.Name = "sha256"
	SHA384                flags.Name = "sha384"
	SHA512                flags.Name = "sha512"
	Skip                  flags.Name = "skip"
	SkipCDiReadyHole      flags.Name = "skip-cdiready-hole"
	SpamSum               flags.Name = "spamsum"
	Speed                 flags.Name = "speed"
	Start                 flags.Name = "start"
	StopOnError           flags.Name = "stop-on-error"
	StoreEncrypted        flags.Name = "store-encrypted"
	Subchannel            flags.Name = "subchannel"
	Tape                  flags.Name = "tape"
	TitleKeys             flags.Name = "title-keys"
	TrapDisc              flags.Name = "trap-disc"
	Trim                  flags.Name = "trim"
	UseBufferedReads      flags.Name = "use-buffered-reads"
	Verbose               flags.Name = "verbose"
	VerifyDisc            flags.Name = "verify-disc"
	VerifySectors         flags.Name = "verify-sectors"
	WholeDisc             flags.Name = "whole-disc"
	XAttrs                flags.Name = "xattrs"
)

// Positionals.
const (
	Device grammar.PositionalName = "device"
	Host   grammar.PositionalName = "host"
	Input  grammar.PositionalName = "input"
	Input2 grammar.PositionalName = "input2"
	Output grammar.PositionalName = "output"
)

// Dialect is the Aaru grammar.
//
//nolint:gochecknoglobals // immutable dialect table
var Dialect = grammar.MustDialect(grammar.Tables{
	Name:        "aaru",
	Executable:  "aaru",
	Layout:      grammar.FlagsThenPositionals,
	Separator:   ' ',
	FoldBool:    true,
	Commands:    commands(),
	Flags:       flagDefs(),
	Positionals: positionals(),
	Support:     support(),
})

func commands() []grammar.CommandDef {
	dev := []grammar.PositionalName{Device}
	in := []grammar.PositionalName{Input}
	inOut := []grammar.PositionalName{Input, Output}

	return []grammar.CommandDef{
		{ID: DatabaseStats, Spelling: "database stats", Desc: "Shows statistics from the local database"},
		{ID: DatabaseUpdate, Spelling: "database update", Desc: "Updates the local database"},
		{ID: DeviceInfo, Spelling: "device info", Positionals: dev, Desc: "Gets information about a device"},
		{ID: DeviceList, Spelling: "device list", Desc: "Lists all connected devices"},
		{ID: DeviceReport, Spelling: "device report", Positionals: dev, Desc: "Tests the device capabilities"},
		{ID: FilesystemExtract, Spelling: "filesystem extract", Positionals: inOut, Desc: "Extracts all files in a filesystem"},
		{ID: FilesystemList, Spelling: "filesystem list", Positionals: in, Desc: "Lists files in a filesystem"},
		{ID: ImageChecksum, Spelling: "image checksum", Positionals: in, Desc: "Checksums an image"},
		{
			ID: ImageCompare, Spelling: "image compare", Positionals: []grammar.PositionalName{Input, Input2},
			Desc: "Compares two images",
		},
		{ID: ImageConvert, Spelling: "image convert", Positionals: inOut, Desc: "Converts one image to another format"},
		{ID: ImageCreateSidecar, Spelling: "image create-sidecar", Positionals: in, Desc: "Creates a metadata sidecar"},
		{ID: ImageDecode, Spelling: "image decode", Positionals: in, Desc: "Decodes and pretty prints disk and/or sector tags"},
		{ID: ImageEntropy, Spelling: "image entropy", Positionals: in, Desc: "Calculates entropy and/or duplicated sectors"},
		{ID: ImageInfo, Spelling: "image info", Positionals: in, Desc: "Identifies an image and shows its information"},
		{ID: ImagePrint, Spelling: "image print", Positionals: in, Desc: "Prints a sector, in hexadecimal values"},
		{ID: ImageVerify, Spelling: "image verify", Positionals: in, Desc: "Verifies an image integrity"},
		{
			ID: MediaDump, Spelling: "media dump", Positionals: []grammar.PositionalName{Device, Output},
			Dumping: true, Desc: "Dumps the media inserted on a device to a media image",
		},
		{ID: MediaInfo, Spelling: "media info", Positionals: dev, Desc: "Gets information about the media inserted on a device"},
		{ID: MediaScan, Spelling: "media scan", Positionals: dev, Desc: "Scans the media inserted on a device"},
		{ID: Remote, Spelling: "remote", Positionals: []grammar.PositionalName{Host}, Desc: "Tests connection to a remote server"},
	}
}

func flagDefs() []flags.Def {
	boolean := func(name flags.Name, short, desc string) flags.Def {
		return flags.Def{Name: name, Long: "--" + string(name), Short: short, Kind: value.Bool, Desc: desc}
	}

	text := func(name flags.Name, short, desc string) flags.Def {
		return flags.Def{Name: name, Long: "--" + string(name), Short: short, Kind: value.String, Desc: desc}
	}

	number := func(name flags.Name, short string, kind value.Kind, bounds *value.Range, desc string) flags.Def {
		return flags.Def{Name: name, Long: "--" + string(name), Short: short, Kind: kind, Range: bounds, Desc: desc}
	}

	return []flags.Def{
		// global
		boolean(Debug, "-d", "Shows debug output from plugins"),
		boolean(Verbose, "-v", "Shows verbose output"),
		{Name: Pause, Long: "--pause", Kind: value.Presence, Desc: "Pauses before exiting"},

		// checksum
		boolean(Adler32, "", "Calculates Adler-32"),
		boolean(CRC16, "", "Calculates CRC16"),
		boolean(CRC32, "", "Calculates CRC32"),
		boolean(CRC64, "", "Calculates CRC64"),
		boolean(Fletcher16, "", "Calculates Fletcher-16"),
		boolean(Fletcher32, "", "Calculates Fletcher-32"),
		boolean(MD5, "", "Calculates MD5"),
		boolean(SHA1, "", "Calculates SHA1"),
		boolean(SHA256, "", "Calculates SHA256"),
		boolean(SHA384, "", "Calculates SHA384"),
		boolean(SHA512, "", "Calculates SHA512"),
		boolean(SpamSum, "", "Calculates SpamSum fuzzy hash"),
		boolean(SeparatedTracks, "", "Checksums each track separately"),
		boolean(WholeDisc, "-w", "Checksums the whole disc"),
		boolean(DuplicatedSectors, "", "Calculates how many sectors are duplicated"),

		// image
		number(BlockSize, "-b", value.Int32, value.AtLeast(0), "Only used for tapes, indicates block size"),
		boolean(Tape, "", "When used indicates that input is a folder containing alphabetically sorted files"),
		text(Comments, "", "Image comments"),
		number(Count, "-c", value.Int32, value.AtLeast(1), "How many sectors to convert at once"),
		text(Creator, "", "Who (person) created the image"),
		text(DriveManufacturer, "", "Manufacturer of the drive used to read the media"),
		text(DriveModel, "", "Model of the drive used to read the media"),
		text(DriveRevision, "", "Firmware revision of the drive used to read the media"),
		text(DriveSerial, "", "Serial number of the drive used to read the media"),
		boolean(DiskTags, "", "Decode disk tags"),
		boolean(SectorTags, "", "Decode sector tags"),
		number(Start, "", value.Int64, value.AtLeast(0), "Starting sector"),
		number(Length, "-l", value.Int64, value.AtLeast(0), "How many sectors to process"),
		boolean(LongSectors, "", "Use long sectors"),
		boolean(VerifyDisc, "", "Verify disc image if supported"),
		boolean(VerifySectors, "", "Verify all sectors if supported"),

		// media dump
		text(CICMXML, "-x", "Take metadata from existing CICM XML sidecar"),
		text(Encoding, "-e", "Name of character encoding to use"),
		boolean(FirstPregap, "", "Try to read first track pregap"),
		boolean(FixOffset, "", "Fix audio tracks offset"),
		boolean(FixSubchannel, "", "Try to fix subchannel"),
		boolean(FixSubchannelCRC, "", "Fix subchannel CRC even when it cannot be checked"),
		boolean(FixSubchannelPosition, "", "Store subchannel according to the sector they describe"),
		boolean(Force, "-f", "Continue dumping whatever happens"),
		text(Format, "-t", "Format of the output image"),
		boolean(GenerateSubchannels, "", "Generate missing subchannels"),
		boolean(Metadata, "", "Enables creating CICM XML sidecar"),
		text(Options, "-O", "Comma separated name=value pairs of options to pass to the output image plugin"),
		boolean(Persistent, "", "Try to recover partial or incorrect data"),
		boolean(Private, "", "Do not store paths and serial numbers in log or metadata"),
		boolean(Resume, "-r", "Create or use resume mapfile"),
		number(RetryPasses, "-p", value.Int16, value.AtLeast(0), "How many retry passes to do"),
		boolean(RetrySubchannel, "", "Retry subchannel"),
		number(Skip, "-k", value.Int32, value.AtLeast(0), "When an unreadable sector is found skip this many sectors"),
		boolean(SkipCDiReadyHole, "", "Skip the hole between data and audio in a CD-i Ready disc"),
		number(Speed, "", value.UInt8, nil, "Speed to dump"),
		boolean(StopOnError, "-s", "Stop media dump on first error"),
		boolean(StoreEncrypted, "", "Store encrypted data as is"),
		text(Subchannel, "", "Subchannel to dump: any, rw, rw-or-pq, pq, none"),
		boolean(TitleKeys, "", "Try to read the title keys from CSS encrypted DVDs"),
		boolean(Trim, "", "Trim errors from skipped sectors"),

		// device, media, filesystem
		text(OutputPrefix, "", "Prefix for saving binary information"),
		boolean(TrapDisc, "", "Does a device report using a trap disc"),
		text(IBGLog, "", "Write a log of the scan in the format used by ImgBurn"),
		text(MHDDLog, "-m", "Write a log of the scan in the format used by MHDD"),
		boolean(UseBufferedReads, "", "For MMC devices, use buffered reads"),
		boolean(LongFormat, "", "Uses long format"),
		text(Namespace, "-n", "Namespace to use for filenames"),
		boolean(XAttrs, "", "Extract extended attributes if present"),

		// database
		boolean(Clear, "", "Clear existing main database"),
		boolean(ClearAll, "", "Clear existing main and local database"),
	}
}

func positionals() []grammar.PositionalDef {
	return []grammar.PositionalDef{
		{Name: Device, Kind: value.String, Desc: "Device path"},
		{Name: Host, Kind: value.String, Desc: "aaruremote host"},
		{Name: Input, Kind: value.String, Desc: "Input image path"},
		{Name: Input2, Kind: value.String, Desc: "Second input image path"},
		{Name: Output, Kind: value.String, Desc: "Output image path"},
	}
}

func support() map[flags.Name][]grammar.Command {
	checksum := []grammar.Command{ImageChecksum}
	dump := []grammar.Command{MediaDump}
	convert := []grammar.Command{ImageConvert}
	tracks := []grammar.Command{ImageChecksum, ImageEntropy}
	ranged := []grammar.Command{ImageDecode, ImagePrint}
	fs := []grammar.Command{FilesystemExtract, FilesystemList}

	return map[flags.Name][]grammar.Command{
		Debug:   {grammar.None},
		Verbose: {grammar.None},
		Pause:   {grammar.None},

		Adler32:           checksum,
		CRC16:             checksum,
		CRC32:             checksum,
		CRC64:             checksum,
		Fletcher16:        checksum,
		Fletcher32:        checksum,
		MD5:               checksum,
		SHA1:              checksum,
		SHA256:            checksum,
		SHA384:            checksum,
		SHA512:            checksum,
		SpamSum:           checksum,
		SeparatedTracks:   tracks,
		WholeDisc:         tracks,
		DuplicatedSectors: {ImageEntropy},

		BlockSize:         {ImageCreateSidecar},
		Tape:              {ImageCreateSidecar},
		Comments:          convert,
		Count:             convert,
		Creator:           convert,
		DriveManufacturer: convert,
		DriveModel:        convert,
		DriveRevision:     convert,
		DriveSerial:       convert,
		DiskTags:          {ImageDecode},
		SectorTags:        {ImageDecode},
		Start:             ranged,
		Length:            ranged,
		LongSectors:       {ImagePrint},
		VerifyDisc:        {ImageVerify},
		VerifySectors:     {ImageVerify},

		CICMXML:               {MediaDump, ImageConvert},
		Encoding:              {MediaDump, ImageCreateSidecar, FilesystemExtract, FilesystemList},
		FirstPregap:           dump,
		FixOffset:             dump,
		FixSubchannel:         dump,
		FixSubchannelCRC:      dump,
		FixSubchannelPosition: dump,
		Force:                 {MediaDump, ImageConvert},
		Format:                {MediaDump, ImageConvert},
		GenerateSubchannels:   dump,
		Metadata:              dump,
		Options:               {MediaDump, ImageConvert, FilesystemExtract, FilesystemList},
		Persistent:            dump,
		Private:               dump,
		Resume:                dump,
		RetryPasses:           dump,
		RetrySubchannel:       dump,
		Skip:                  dump,
		SkipCDiReadyHole:      dump,
		Speed:                 dump,
		StopOnError:           dump,
		StoreEncrypted:        dump,
		Subchannel:            dump,
		TitleKeys:             dump,
		Trim:                  dump,

		OutputPrefix:     {DeviceInfo, MediaInfo},
		TrapDisc:         {DeviceReport},
		IBGLog:           {MediaScan},
		MHDDLog:          {MediaScan},
		UseBufferedReads: {MediaScan},
		LongFormat:       {FilesystemList},
		Namespace:        fs,
		XAttrs:           {FilesystemExtract},

		Clear:    {DatabaseUpdate},
		ClearAll: {DatabaseUpdate},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toejough/discargs/internal/job"
	"github.com/toejough/discargs/internal/media"
	"github.com/toejough/discargs/internal/preset"
)

type generateOpts struct {
	system         string
	media          string
	drive          string
	file           string
	speed          int
	retries        int
	paranoid       bool
	withExecutable bool
}

func (a *app) generate(cmd *cobra.Command, o generateOpts) error {
	tool, err := a.tool()
	if err != nil {
		return err
	}

	system, err := media.ParseSystem(o.system)
	if err != nil {
		return err
	}

	mediaType, err := media.ParseMediaType(o.media)
	if err != nil {
		return err
	}

	req := preset.Request{
		System:    system,
		MediaType: mediaType,
		Drive:     o.drive,
		Filename:  o.file,
		Speed:     a.cfg.Speed,
		Paranoid:  a.cfg.Paranoid,
		Retries:   a.cfg.Retries,
	}

	set := cmd.Flags()
	if set.Changed("speed") {
		speed := o.speed
		req.Speed = &speed
	}

	if set.Changed("retries") {
		req.Retries = o.retries
	}

	if set.Changed("paranoid") {
		req.Paranoid = o.paranoid
	}

	j := job.New(tool, req, job.WithExecutable(a.cfg.Executable(tool.Name())))
	a.trace(cmd.ErrOrStderr(), j.Params())

	text, ok := j.GenerateParameters()
	if o.withExecutable {
		text, ok = j.CommandLine()
	}

	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), "no valid command line")

		return errReported
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)

	return nil
}

func newGenerateCmd(a *app) *cobra.Command {
	var o generateOpts

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Print the argument string for a dump",
		Example: `  discargs generate --tool redumper --system psx --media cd --drive D --file dumps/game.bin`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd, o)
		},
	}

	set := cmd.Flags()
	set.StringVar(&o.system, "system", "", "system the disc belongs to (e.g. ibmpc, psx, saturn)")
	set.StringVar(&o.media, "media", "", "media type (e.g. cd, dvd, bd, gd)")
	set.StringVar(&o.drive, "drive", "", "drive letter or device path")
	set.StringVar(&o.file, "file", "", "output image path")
	set.IntVar(&o.speed, "speed", 0, "drive speed (default: the tool decides)")
	set.IntVar(&o.retries, "retries", 0, "reread count: negative disables, 0 uses the tool default")
	set.BoolVar(&o.paranoid, "paranoid", false, "add the tool's extra checks")
	set.BoolVar(&o.withExecutable, "with-executable", false, "prefix the executable path")

	for _, name := range []string{"system", "media", "drive", "file"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err) // names above are declared on set
		}
	}

	return cmd
}

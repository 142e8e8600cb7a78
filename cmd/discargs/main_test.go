package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/toejough/discargs/internal/config"
)

func TestGenerate(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, stdout, stderr := invoke(t, nil,
		"generate", "--tool", "redumper", "--system", "psx", "--media", "cd",
		"--drive", "D", "--file", "out.bin", "--speed", "48")

	g.Expect(stderr).To(BeEmpty())
	g.Expect(code).To(Equal(exitSuccess))
	g.Expect(stdout).To(Equal("cd --drive=D --speed=48 --retries=20 --image-name=out\n"))
}

func TestGenerateInvalidCombination(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, stdout, stderr := invoke(t, nil,
		"generate", "--tool", "aaru", "--system", "dc", "--media", "bd", "--drive", "D", "--file", "out.bin")

	g.Expect(code).To(Equal(exitFailure))
	g.Expect(stdout).To(BeEmpty())
	g.Expect(stderr).To(Equal("no valid command line\n"))
}

func TestGenerateUsesConfigFileAndEnv(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "discargs.yaml")
	g.Expect(os.WriteFile(path, []byte(
		"tool: aaru\nretries: -1\nexecutables:\n  dic: /opt/dic/DiscImageCreator\n"), 0o600)).To(Succeed())

	code, stdout, _ := invoke(t, map[string]string{config.EnvTool: "dic"},
		"generate", "--config", path, "--system", "ibmpc", "--media", "cd",
		"--drive", "D", "--file", "out.bin", "--with-executable")

	g.Expect(code).To(Equal(exitSuccess))
	g.Expect(stdout).To(Equal("/opt/dic/DiscImageCreator cd D out.bin 0\n"))

	code, stdout, _ = invoke(t, map[string]string{config.EnvSpeed: "8"},
		"generate", "--config", path, "--system", "ibmpc", "--media", "cd",
		"--drive", "D", "--file", "out.bin", "--retries=0")

	g.Expect(code).To(Equal(exitSuccess))
	g.Expect(stdout).To(Equal(
		"media dump --first-pregap true --fix-offset true --retry-passes 20 --speed 8 --subchannel any D out.bin\n"))
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no tool", []string{"generate", "--system", "psx", "--media", "cd", "--drive", "D", "--file", "a"}, "no tool selected"},
		{"unknown tool", []string{"generate", "-t", "cdrdao", "--system", "psx", "--media", "cd", "--drive", "D", "--file", "a"}, "unknown tool"},
		{"unknown system", []string{"generate", "-t", "aaru", "--system", "amiga", "--media", "cd", "--drive", "D", "--file", "a"}, "unknown system"},
		{"missing flag", []string{"generate", "-t", "aaru", "--system", "psx", "--media", "cd"}, "required flag"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			code, _, stderr := invoke(t, nil, tc.args...)
			g.Expect(code).To(Equal(exitFailure))
			g.Expect(stderr).To(ContainSubstring(tc.want))
		})
	}
}

func TestGenerateMarksRequiredFlags(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var cmd *cobra.Command

	g.Expect(func() { cmd = newGenerateCmd(&app{}) }).NotTo(Panic())

	for _, name := range []string{"system", "media", "drive", "file"} {
		f := cmd.Flags().Lookup(name)
		g.Expect(f).NotTo(BeNil(), name)
		g.Expect(f.Annotations).To(HaveKeyWithValue(cobra.BashCompOneRequiredFlag, []string{"true"}), name)
	}
}

func TestGenerateVerboseTrace(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, _, stderr := invoke(t, nil,
		"generate", "-v", "--tool", "redumper", "--system", "psx", "--media", "cd",
		"--drive", "D", "--file", "out.bin", "--speed", "48")

	g.Expect(code).To(Equal(exitSuccess))
	g.Expect(stderr).To(ContainSubstring(`trace: redumper command "cd"`))
	g.Expect(stderr).To(ContainSubstring("trace: speed = present (uint8 48)"))
	g.Expect(stderr).To(ContainSubstring("trace: overwrite = absent"))
}

func TestParse(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, stdout, _ := invoke(t, nil, "parse", "--tool", "aaru", "--", "media", "dump", "--speed", "8", "D", "out")

	g.Expect(code).To(Equal(exitSuccess))
	g.Expect(stdout).To(Equal("command: media dump\nflags:\n  speed: present (uint8 8)\n" +
		"positionals:\n  device: D\n  output: out\n"))
}

func TestParseRejectsBadArguments(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, stdout, stderr := invoke(t, nil, "parse", "--tool", "dic", "--", "dvd", "D", "a.iso", "4", "/ss")

	g.Expect(code).To(Equal(exitFailure))
	g.Expect(stdout).To(BeEmpty())
	g.Expect(stderr).To(ContainSubstring("flag not supported by command"))
}

func TestParseKeepsArgumentsWithSpaces(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, stdout, stderr := invoke(t, nil, "parse", "--tool", "aaru", "--", "media", "dump", "D", "my file.bin")

	g.Expect(stderr).To(BeEmpty())
	g.Expect(code).To(Equal(exitSuccess))
	g.Expect(stdout).To(ContainSubstring(`output: "my file.bin"`))

	code, stdout, stderr = invoke(t, nil, "parse", "--tool", "redumper", "--", "cd", "--drive=D", "--image-name=my disc")

	g.Expect(stderr).To(BeEmpty())
	g.Expect(code).To(Equal(exitSuccess))
	g.Expect(stdout).To(ContainSubstring(`image-name: present (string "my disc")`))
}

func TestNormalizeArgumentsWithSpaces(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, stdout, stderr := invoke(t, nil, "normalize", "--check", "--tool", "aaru", "--", "media", "dump", "D", "my file.bin")

	g.Expect(stderr).To(BeEmpty())
	g.Expect(code).To(Equal(exitSuccess))
	g.Expect(stdout).To(BeEmpty())
}

func TestNormalizeArguments(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, stdout, _ := invoke(t, nil, "normalize", "--tool", "redumper", "--", "cd", "--speed=0x10", "--drive=D")

	g.Expect(code).To(Equal(exitSuccess))
	g.Expect(stdout).To(ContainSubstring("-cd --speed=0x10 --drive=D"))
	g.Expect(stdout).To(ContainSubstring("+cd --drive=D --speed=16"))

	code, _, _ = invoke(t, nil, "normalize", "--check", "--tool", "redumper", "--", "cd", "--speed=0x10", "--drive=D")
	g.Expect(code).To(Equal(exitFailure))

	code, stdout, _ = invoke(t, nil, "normalize", "--check", "--tool", "redumper", "--", "cd", "--drive=D", "--speed=16")
	g.Expect(code).To(Equal(exitSuccess))
	g.Expect(stdout).To(BeEmpty())
}

func TestNormalizeGlob(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	canonical := filepath.Join(dir, "a.args")
	messy := filepath.Join(dir, "b.args")

	g.Expect(os.WriteFile(canonical, []byte("# already fine\ncd D out.bin 8 /c2 20\n"), 0o600)).To(Succeed())
	g.Expect(os.WriteFile(messy, []byte("cd D out.bin 0x8 /q\ncd D\n"), 0o600)).To(Succeed())

	code, stdout, stderr := invoke(t, nil, "normalize", "--tool", "dic", "--glob", filepath.Join(dir, "*.args"))

	g.Expect(code).To(Equal(exitFailure))
	g.Expect(stdout).NotTo(ContainSubstring(canonical))
	g.Expect(stdout).To(ContainSubstring(messy + " (normalized)"))
	g.Expect(stdout).To(ContainSubstring("+cd D out.bin 8 /q"))
	g.Expect(stderr).To(ContainSubstring(messy + ":2: parsing: missing positional argument"))

	code, _, stderr = invoke(t, nil, "normalize", "--tool", "dic", "--glob", filepath.Join(dir, "*.none"))
	g.Expect(code).To(Equal(exitFailure))
	g.Expect(stderr).To(ContainSubstring("no files match"))

	code, _, stderr = invoke(t, nil, "normalize", "--tool", "dic")
	g.Expect(code).To(Equal(exitFailure))
	g.Expect(stderr).To(ContainSubstring("nothing to normalize"))
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, stdout, _ := invoke(t, nil, "describe", "--tool", "aaru")
	g.Expect(code).To(Equal(exitSuccess))
	g.Expect(stdout).To(ContainSubstring("Commands:"))
	g.Expect(stdout).To(ContainSubstring("Dump a data CD with the default settings"))
	g.Expect(stdout).To(ContainSubstring("aaru media dump --first-pregap true"))

	code, stdout, _ = invoke(t, nil, "describe", "--tool", "aaru", "media", "dump")
	g.Expect(code).To(Equal(exitSuccess))
	g.Expect(stdout).To(ContainSubstring("<device>"))

	code, _, stderr := invoke(t, nil, "describe", "--tool", "aaru", "media", "eat")
	g.Expect(code).To(Equal(exitFailure))
	g.Expect(stderr).To(ContainSubstring("unknown command"))
}

func TestTools(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, stdout, _ := invoke(t, nil, "tools")
	g.Expect(code).To(Equal(exitSuccess))
	g.Expect(stdout).To(Equal("aaru       aaru\ndic        DiscImageCreator\nredumper   redumper\n"))
}

// invoke runs discargs with an isolated environment: only vars, plus a
// config home with no config file in it.
func invoke(t *testing.T, vars map[string]string, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	env := map[string]string{"XDG_CONFIG_HOME": t.TempDir()}
	for k, v := range vars {
		env[k] = v
	}

	var out, errOut bytes.Buffer

	code = run(args, &out, &errOut, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})

	return code, out.String(), errOut.String()
}

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/discargs/internal/config"
)

func TestDecode(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg, err := config.Decode(strings.NewReader(`
tool: dic
executables:
  DIC: 'C:\Tools\DiscImageCreator.exe'
  redumper: /usr/local/bin/redumper
speed: 8
retries: -1
paranoid: true
`))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Tool).To(Equal("dic"))
	g.Expect(cfg.Speed).To(HaveValue(Equal(8)))
	g.Expect(cfg.Retries).To(Equal(-1))
	g.Expect(cfg.Paranoid).To(BeTrue())
	g.Expect(cfg.Executable("dic")).To(Equal(`C:\Tools\DiscImageCreator.exe`))
	g.Expect(cfg.Executable("Redumper")).To(Equal("/usr/local/bin/redumper"))
	g.Expect(cfg.Executable("aaru")).To(BeEmpty())
}

func TestDecodeEmptyAndInvalid(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg, err := config.Decode(strings.NewReader(""))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Speed).To(BeNil())

	_, err = config.Decode(strings.NewReader("tool: aaru\nspeeed: 4\n"))
	g.Expect(err).To(MatchError(config.ErrInvalidFile))

	_, err = config.Decode(strings.NewReader("speed: fast\n"))
	g.Expect(err).To(MatchError(config.ErrInvalidFile))
}

func TestLoadAppliesEnvOverFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	g.Expect(os.WriteFile(path, []byte("tool: aaru\nspeed: 4\nretries: 3\n"), 0o600)).To(Succeed())

	cfg, err := config.Load(path, envOf(map[string]string{
		config.EnvTool:     "redumper",
		config.EnvSpeed:    "16",
		config.EnvParanoid: "true",
	}))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Tool).To(Equal("redumper"))
	g.Expect(cfg.Speed).To(HaveValue(Equal(16)))
	g.Expect(cfg.Retries).To(Equal(3))
	g.Expect(cfg.Paranoid).To(BeTrue())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), envOf(nil))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg).To(Equal(config.Config{}))
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Parallel()

	for _, key := range []string{config.EnvSpeed, config.EnvRetries, config.EnvParanoid} {
		t.Run(key, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			_, err := config.Load("", envOf(map[string]string{key: "lots"}))
			g.Expect(err).To(MatchError(config.ErrInvalidEnv))
			g.Expect(err.Error()).To(ContainSubstring(key))
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := config.DefaultPath(envOf(map[string]string{"XDG_CONFIG_HOME": "/home/me/.config"}))
	g.Expect(path).To(Equal(filepath.Join("/home/me/.config", "discargs", "config.yaml")))
}

func envOf(vars map[string]string) config.Env {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

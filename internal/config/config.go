// Package config loads discargs settings: a YAML file first, then DISCARGS_*
// environment overrides. Command line flags are applied last by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Exported constants.
const (
	EnvParanoid = "DISCARGS_PARANOID"
	EnvRetries  = "DISCARGS_RETRIES"
	EnvSpeed    = "DISCARGS_SPEED"
	EnvTool     = "DISCARGS_TOOL"
)

// Exported variables.
var (
	ErrInvalidEnv  = errors.New("invalid environment override")
	ErrInvalidFile = errors.New("invalid config file")
)

// Config holds the settings a dump request starts from.
type Config struct {
	Tool string `yaml:"tool"`
	// Executables maps a tool name to the path of its executable.
	Executables map[string]string `yaml:"executables"`
	// Speed is nil when the tool should pick.
	Speed    *int `yaml:"speed"`
	Retries  int  `yaml:"retries"`
	Paranoid bool `yaml:"paranoid"`
}

// Executable returns the configured path for tool, or "".
func (c Config) Executable(tool string) string {
	return c.Executables[strings.ToLower(tool)]
}

// Env reads one environment variable; os.LookupEnv fits.
type Env func(key string) (string, bool)

// DefaultPath returns $XDG_CONFIG_HOME/discargs/config.yaml, falling back to
// the platform's user config directory.
func DefaultPath(env Env) string {
	if dir, ok := env("XDG_CONFIG_HOME"); ok && dir != "" {
		return filepath.Join(dir, "discargs", "config.yaml")
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "discargs", "config.yaml")
}

// Load reads the file at path, when it exists, and applies env overrides.
// A missing file yields the defaults.
func Load(path string, env Env) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)

		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("reading config: %w", err)
		default:
			cfg, err = Decode(bytes.NewReader(data))
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(env); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode reads YAML settings. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	if len(cfg.Executables) > 0 {
		normalized := make(map[string]string, len(cfg.Executables))
		for tool, path := range cfg.Executables {
			normalized[strings.ToLower(tool)] = path
		}

		cfg.Executables = normalized
	}

	return cfg, nil
}

func (c *Config) applyEnv(env Env) error {
	if env == nil {
		return nil
	}

	if v, ok := env(EnvTool); ok && v != "" {
		c.Tool = v
	}

	if v, ok := env(EnvSpeed); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvSpeed, v)
		}

		c.Speed = &n
	}

	if v, ok := env(EnvRetries); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvRetries, v)
		}

		c.Retries = n
	}

	if v, ok := env(EnvParanoid); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvParanoid, v)
		}

		c.Paranoid = b
	}

	return nil
}

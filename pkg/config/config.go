// Package config loads licensetracker settings from TOML, YAML or JSON files.
//
// # Search order
//
// [Find] picks the first of:
//
//  1. the path given explicitly (the --config flag)
//  2. $LICENSETRACKER_CONFIG
//  3. licensetracker.toml, config.toml, config.yaml, config.yml, config.json
//     in the working directory
//
// An explicit or environment path must exist. When no file is found the
// defaults from [Default] apply.
//
// # Format
//
// The decoder is chosen by file extension. Keys are the same in every format:
//
//	extra_rows     = ["approved_by", "notes"]
//	output_dir     = "output"
//	workers        = 4
//	timeout        = "10s"
//	pypi_url       = "https://pypi.org/pypi"
//	github_api_url = "https://api.github.com"
//
// Unknown keys are rejected in an explicit or environment path and in
// licensetracker.toml. The shared names (config.toml, config.yaml, ...) may
// belong to other tools, so unknown keys in them are ignored.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/licensetracker/pkg/errors"
	"github.com/matzehuels/licensetracker/pkg/export"
	"github.com/matzehuels/licensetracker/pkg/integrations"
	"github.com/matzehuels/licensetracker/pkg/integrations/github"
	"github.com/matzehuels/licensetracker/pkg/integrations/pypi"
)

// EnvPath names the environment variable holding a config file path.
const EnvPath = "LICENSETRACKER_CONFIG"

// DefaultWorkers is the default number of packages analyzed concurrently.
const DefaultWorkers = 4

// ownName is the config file name only licensetracker reads.
const ownName = "licensetracker.toml"

// Names looked up in the working directory, in order.
var searchNames = []string{
	ownName,
	"config.toml",
	"config.yaml",
	"config.yml",
	"config.json",
}

// Config holds every tunable of a run.
type Config struct {
	ExtraRows    []string `toml:"extra_rows" yaml:"extra_rows" json:"extra_rows"`             // Blank report rows appended to every dependency
	OutputDir    string   `toml:"output_dir" yaml:"output_dir" json:"output_dir"`             // Directory for text reports
	Workers      int      `toml:"workers" yaml:"workers" json:"workers"`                      // Concurrent analyses
	Timeout      Duration `toml:"timeout" yaml:"timeout" json:"timeout"`                      // Per-request HTTP timeout
	PyPIURL      string   `toml:"pypi_url" yaml:"pypi_url" json:"pypi_url"`                   // Package index API root
	GitHubAPIURL string   `toml:"github_api_url" yaml:"github_api_url" json:"github_api_url"` // Source host API root
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ExtraRows:    []string{},
		OutputDir:    export.DefaultDir,
		Workers:      DefaultWorkers,
		Timeout:      Duration(integrations.DefaultTimeout),
		PyPIURL:      pypi.DefaultBaseURL,
		GitHubAPIURL: github.DefaultAPIURL,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "timeout must be positive, got %s", c.Timeout)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "output_dir cannot be empty")
	}
	if err := errors.ValidateURL(c.PyPIURL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "pypi_url")
	}
	if err := errors.ValidateURL(c.GitHubAPIURL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "github_api_url")
	}
	for i, row := range c.ExtraRows {
		if strings.TrimSpace(row) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "extra_rows[%d] is blank", i)
		}
	}
	return nil
}

// Find returns the config file to load from dir, or "" when none exists.
// explicit takes precedence over $LICENSETRACKER_CONFIG; either must exist.
func Find(dir, explicit string) (string, error) {
	path, _, err := find(dir, explicit)
	return path, err
}

// find is [Find] that also reports whether unknown keys in the file are an error.
func find(dir, explicit string) (path string, strict bool, err error) {
	for _, p := range []string{explicit, os.Getenv(EnvPath)} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			return "", false, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", p)
		}
		return p, true, nil
	}
	for _, name := range searchNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, name == ownName, nil
		}
	}
	return "", false, nil
}

// Load finds and loads the config for dir. It returns the path that was read,
// or "" when the defaults apply.
func Load(dir, explicit string) (*Config, string, error) {
	path, strict, err := find(dir, explicit)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		cfg := Default()
		return &cfg, "", nil
	}
	cfg, err := loadFile(path, strict)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// LoadFile reads a config file, filling unset keys from [Default]. Unknown
// keys are an error.
func LoadFile(path string) (*Config, error) {
	return loadFile(path, true)
}

func loadFile(path string, strict bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	cfg := Default()
	if err := decode(path, data, &cfg, strict); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config, strict bool) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); strict && len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
		return nil
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(strict)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return err
		}
		return nil
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		if strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// Encode writes cfg in the format matching ext (".toml", ".yaml" or ".json").
func Encode(w io.Writer, cfg *Config, ext string) error {
	switch strings.ToLower(ext) {
	case ".toml", "toml":
		return toml.NewEncoder(w).Encode(cfg)
	case ".yaml", ".yml", "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case ".json", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// Duration is a time.Duration written as a string such as "10s" in every
// config format.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// String implements fmt.Stringer.
func (d Duration) String() string { return time.Duration(d).String() }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Package config loads tslex settings from tslex.toml or a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/palantir/tslint-sub000/internal/charclass"
	"github.com/palantir/tslint-sub000/internal/format"
)

// FileName is the config file Find looks for.
const FileName = "tslex.toml"

type Config struct {
	// Language selects the identifier tables: "es5" or "es3".
	Language       string `toml:"language" yaml:"language"`
	MaxDiagnostics int    `toml:"max_diagnostics" yaml:"max_diagnostics"`
	// Jobs bounds the files scanned in parallel; 0 means GOMAXPROCS.
	Jobs       int    `toml:"jobs" yaml:"jobs"`
	Indent     int    `toml:"indent" yaml:"indent"`
	UseTabs    bool   `toml:"use_tabs" yaml:"use_tabs"`
	Intern     bool   `toml:"intern" yaml:"intern"`
	CheckRegex bool   `toml:"check_regex" yaml:"check_regex"`
	LogLevel   string `toml:"log_level" yaml:"log_level"`
	Color      string `toml:"color" yaml:"color"`

	// Path is the file the config was loaded from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Language:       charclass.ES5.String(),
		MaxDiagnostics: 100,
		Indent:         4,
		Intern:         true,
		LogLevel:       "warn",
		Color:          "auto",
	}
}

// Load reads path on top of the defaults. The format follows the
// extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%s: unsupported config extension %q", path, ext)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find walks up from startDir to locate tslex.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Resolve loads explicit when set, otherwise the nearest tslex.toml above
// startDir, otherwise the defaults.
func Resolve(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) Validate() error {
	if _, err := charclass.ParseVersion(c.Language); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	if c.MaxDiagnostics < 0 || c.MaxDiagnostics > 1<<16-1 {
		return fmt.Errorf("max_diagnostics must be in [0, 65535], got %d", c.MaxDiagnostics)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if c.Indent < 0 || c.Indent > 16 {
		return fmt.Errorf("indent must be in [0, 16], got %d", c.Indent)
	}
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("color must be auto, on or off, got %q", c.Color)
	}
	return nil
}

// Version returns the parsed language version. Call after Validate.
func (c Config) Version() charclass.Version {
	v, err := charclass.ParseVersion(c.Language)
	if err != nil {
		return charclass.ES5
	}
	return v
}

// EffectiveJobs resolves Jobs == 0 to GOMAXPROCS.
func (c Config) EffectiveJobs() int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

// FormatOptions maps the indentation settings onto the printer.
func (c Config) FormatOptions() format.Options {
	return format.Options{IndentWidth: c.Indent, UseTabs: c.UseTabs}
}

// ToYAML serializes the configuration.
func (c Config) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

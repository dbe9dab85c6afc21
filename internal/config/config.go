// Package config loads the compiler settings from bootc.toml or bootc.yaml.
//
// Every setting has a default, so a missing file is not an error. The file
// format follows the extension: .toml is read with BurntSushi/toml, .yaml
// and .yml with yaml.v3.
//
// Example bootc.toml:
//
//	requires = ">= 0.3"
//
//	[diagnostics]
//	color = "auto"
//	context = true
//
//	[parser]
//	rule = "program"
//	resolve_operators = true
//
//	[log]
//	level = "info"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hassan/bootc/internal/diag"
	"github.com/hassan/bootc/internal/version"
)

// Format is the configuration file format.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Filenames are the names Discover looks for, in order.
var Filenames = []string{"bootc.toml", "bootc.yaml", "bootc.yml"}

// ErrIncompatible is returned when the requires constraint rejects the
// running compiler version.
var ErrIncompatible = errors.New("configuration requires a different compiler version")

// Config holds all compiler settings.
type Config struct {
	// Requires is an optional semantic version constraint, e.g. ">= 0.3, < 1".
	Requires string `toml:"requires" yaml:"requires"`

	Diagnostics Diagnostics `toml:"diagnostics" yaml:"diagnostics"`
	Parser      Parser      `toml:"parser" yaml:"parser"`
	Log         Log         `toml:"log" yaml:"log"`

	// Path is the file the configuration was loaded from; empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

// Diagnostics controls how diagnostics are printed.
type Diagnostics struct {
	// Color is auto, always or never.
	Color string `toml:"color" yaml:"color"`

	// Context prints the offending source line under every diagnostic.
	Context bool `toml:"context" yaml:"context"`
}

// Parser controls what the parse command does.
type Parser struct {
	// Rule is the entry rule: program, stmt, expr or cexpr.
	Rule string `toml:"rule" yaml:"rule"`

	// ResolveOperators runs the operator resolution pass after parsing.
	ResolveOperators bool `toml:"resolve_operators" yaml:"resolve_operators"`
}

// Log controls the structured logger.
type Log struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
}

// Rules are the valid values of Parser.Rule.
var Rules = []string{"program", "stmt", "expr", "cexpr"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Diagnostics: Diagnostics{Color: string(diag.ColorAuto), Context: true},
		Parser:      Parser{Rule: "program"},
		Log:         Log{Level: "warn"},
	}
}

// detectFormat determines the configuration format from the file extension.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads and validates the configuration file at path. Settings absent
// from the file keep their defaults.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(content, detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes content over the defaults and validates the result. Keys
// that match no setting are an error.
func Parse(content []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			return nil, fmt.Errorf("unknown settings: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		// An empty document leaves the defaults.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover looks for one of Filenames in dir and loads the first found.
// When there is none it returns Default().
func Discover(dir string) (*Config, error) {
	for _, name := range Filenames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return Load(path)
	}
	return Default(), nil
}

// Validate checks every setting and the version constraint.
func (c *Config) Validate() error {
	if _, err := diag.ParseColorMode(c.Diagnostics.Color); err != nil {
		return fmt.Errorf("diagnostics.color: %w", err)
	}

	if !validRule(c.Parser.Rule) {
		return fmt.Errorf("parser.rule: invalid rule %q (want one of %s)", c.Parser.Rule, strings.Join(Rules, ", "))
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	if c.Requires != "" {
		ok, err := version.Satisfies(c.Requires)
		if err != nil {
			return fmt.Errorf("requires: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: %q, running %s", ErrIncompatible, c.Requires, version.Version)
		}
	}
	return nil
}

// ColorMode returns the parsed diagnostics color mode.
func (c *Config) ColorMode() diag.ColorMode {
	mode, err := diag.ParseColorMode(c.Diagnostics.Color)
	if err != nil {
		return diag.ColorAuto
	}
	return mode
}

// LogLevel returns the slog level named by Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: invalid level %q", c.Log.Level)
	}
	return level, nil
}

func validRule(rule string) bool {
	for _, r := range Rules {
		if r == rule {
			return true
		}
	}
	return false
}

// Package config provides persistent configuration for the lunar-almanac CLI.
//
// Configuration is stored as TOML at ~/.config/lunar-almanac/config.toml
// (XDG-compliant). The merge priority is: CLI flags > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	cerrors "cloudeng.io/errors"
	"github.com/BurntSushi/toml"

	"github.com/smokyabdulrahman/lunar-almanac/internal/almanac"
)

const (
	configDirName  = "lunar-almanac"
	configFileName = "config.toml"
)

// Bounds for the default list length.
const (
	MinDays = 1
	MaxDays = 366
)

// ValidKeys lists all config keys that can be set via `config set`.
var ValidKeys = []string{
	"week_start",
	"glyphs",
	"output",
	"format",
	"days",
}

// OutputModes lists the accepted values of the output key.
var OutputModes = []string{"text", "json", "yaml"}

// Config holds all user-configurable settings.
// Zero values mean "not set" (use defaults).
type Config struct {
	WeekStart string `toml:"week_start,omitempty" json:"week_start,omitempty" yaml:"week_start,omitempty"` // "sunday" or "monday"
	Glyphs    string `toml:"glyphs,omitempty" json:"glyphs,omitempty" yaml:"glyphs,omitempty"`             // "emoji" or "ascii"
	Output    string `toml:"output,omitempty" json:"output,omitempty" yaml:"output,omitempty"`             // "text", "json" or "yaml"
	Format    string `toml:"format,omitempty" json:"format,omitempty" yaml:"format,omitempty"`             // status-line format mode or template
	Days      *int   `toml:"days,omitempty" json:"days,omitempty" yaml:"days,omitempty"`                   // pointer so we can distinguish "not set" from 0
}

// Defaults returns a Config with all default values applied.
func Defaults() Config {
	days := 7
	return Config{
		WeekStart: "sunday",
		Glyphs:    almanac.Emoji.String(),
		Output:    "text",
		Format:    almanac.FormatGlyphAndTitle,
		Days:      &days,
	}
}

// Dir returns the config directory path.
// It respects $XDG_CONFIG_HOME if set, otherwise uses ~/.config/.
func Dir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file from disk.
// If the file does not exist, it returns an empty Config (not an error).
// If the file exists but is not valid TOML, has unknown keys or holds
// invalid values, it returns an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	return LoadFrom(path)
}

// LoadFrom reads the config from a specific file path.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("invalid config file %s: unknown keys %s; valid keys: %s",
			path, strings.Join(keys, ", "), strings.Join(ValidKeys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	return c.SaveTo(path)
}

// SaveTo writes the config to a specific file path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reset deletes the config file.
func Reset() error {
	path, err := Path()
	if err != nil {
		return err
	}

	return ResetAt(path)
}

// ResetAt deletes the config file at a specific path.
func ResetAt(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete config file: %w", err)
	}
	return nil
}

// Validate checks every set key and reports all invalid values at once.
func (c *Config) Validate() error {
	var errs cerrors.M
	var scratch Config
	for _, key := range ValidKeys {
		value, err := c.Get(key)
		if err != nil {
			errs.Append(err)
			continue
		}
		if value == "" {
			continue
		}
		errs.Append(scratch.Set(key, value))
	}
	return errs.Err()
}

// Set sets a config key to the given value.
// It validates the key name and parses the value into the correct type.
func (c *Config) Set(key, value string) error {
	switch key {
	case "week_start":
		v := strings.ToLower(strings.TrimSpace(value))
		if v != "sunday" && v != "monday" {
			return fmt.Errorf("invalid week_start %q: must be \"sunday\" or \"monday\"", value)
		}
		c.WeekStart = v
	case "glyphs":
		g, err := almanac.ParseGlyphSet(value)
		if err != nil {
			return err
		}
		c.Glyphs = g.String()
	case "output":
		v := strings.ToLower(strings.TrimSpace(value))
		if !contains(OutputModes, v) {
			return fmt.Errorf("invalid output %q: must be one of %s", value, strings.Join(OutputModes, ", "))
		}
		c.Output = v
	case "format":
		if err := ValidateFormat(value); err != nil {
			return err
		}
		c.Format = value
	case "days":
		v, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid days %q: must be an integer", value)
		}
		if v < MinDays || v > MaxDays {
			return fmt.Errorf("invalid days %q: must be between %d and %d", value, MinDays, MaxDays)
		}
		c.Days = &v
	default:
		return fmt.Errorf("unknown config key %q; valid keys: %s", key, strings.Join(ValidKeys, ", "))
	}

	return nil
}

// Get returns the string value of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "week_start":
		return c.WeekStart, nil
	case "glyphs":
		return c.Glyphs, nil
	case "output":
		return c.Output, nil
	case "format":
		return c.Format, nil
	case "days":
		if c.Days == nil {
			return "", nil
		}
		return strconv.Itoa(*c.Days), nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// ValidateFormat accepts a built-in format mode or a parseable Go template.
func ValidateFormat(value string) error {
	if strings.Contains(value, "{{") {
		if _, err := template.New("format").Parse(value); err != nil {
			return fmt.Errorf("invalid format template %q: %w", value, err)
		}
		return nil
	}
	if !contains(almanac.Formats, value) {
		formats := append([]string(nil), almanac.Formats...)
		sort.Strings(formats)
		return fmt.Errorf("invalid format %q: must be a Go template or one of %s", value, strings.Join(formats, ", "))
	}
	return nil
}

// DaysOrDefault returns the days value, falling back to the given default.
func (c *Config) DaysOrDefault(def int) int {
	if c.Days != nil {
		return *c.Days
	}
	return def
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

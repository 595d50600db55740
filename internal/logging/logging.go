// Package logging configures the zerolog logger shared by the binaries.
//
// Logs go to stderr through a console writer so they never mix with the
// almanac output on stdout. The level defaults to warn, --verbose lowers it
// to debug and the environment overrides both.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "LUNAR_ALMANAC_LOG_LEVEL"
	EnvLogTimestamp = "LUNAR_ALMANAC_LOG_TIMESTAMP"
	EnvLogNoColor   = "LUNAR_ALMANAC_LOG_NOCOLOR"
)

// Config controls the logger.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

// DefaultConfig returns the configuration before environment overrides.
func DefaultConfig(verbose bool) Config {
	cfg := Config{Level: zerolog.WarnLevel}
	if verbose {
		cfg.Level = zerolog.DebugLevel
		cfg.Timestamp = true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}
	return cfg
}

// New returns a console logger writing to w.
func New(w io.Writer, verbose bool) zerolog.Logger {
	cfg := DefaultConfig(verbose)
	applyEnvOverrides(&cfg)
	return NewWithConfig(w, cfg)
}

// NewWithConfig returns a console logger writing to w configured by cfg.
func NewWithConfig(w io.Writer, cfg Config) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !cfg.Timestamp {
		output.PartsExclude = []string{zerolog.TimestampFieldName}
	}

	ctx := zerolog.New(output).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

// Init configures the global logger on stderr and returns it.
func Init(verbose bool) zerolog.Logger {
	logger := New(os.Stderr, verbose)
	log.Logger = logger
	return logger
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.WarnLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.WarnLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

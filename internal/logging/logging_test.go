package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogTimestamp, "")
	t.Setenv(EnvLogNoColor, "")
}

func TestDefaultConfig(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, DefaultConfig(false).Level)
	assert.False(t, DefaultConfig(false).Timestamp)

	verbose := DefaultConfig(true)
	assert.Equal(t, zerolog.DebugLevel, verbose.Level)
	assert.True(t, verbose.Timestamp)
}

func TestNew_DefaultLevelHidesDebug(t *testing.T) {
	clearEnv(t)
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestNew_VerboseShowsDebug(t *testing.T) {
	clearEnv(t)
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug().Str("date", "2026-10-18").Msg("computed")

	out := buf.String()
	assert.Contains(t, out, "computed")
	assert.Contains(t, out, "2026-10-18")
}

func TestNew_EnvOverridesVerbose(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "error")
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Warn().Msg("quiet")
	assert.Empty(t, buf.String())
}

func TestNewWithConfig_NoTimestamp(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(&buf, Config{Level: zerolog.InfoLevel, NoColor: true})

	logger.Info().Msg("plain")

	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line)
	assert.True(t, strings.HasPrefix(line, "INF"), "line %q should start with the level", line)
	assert.NotContains(t, line, "\x1b[")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.WarnLevel, false},
		{"trace", zerolog.TraceLevel, true},
		{"DEBUG", zerolog.DebugLevel, true},
		{" info ", zerolog.InfoLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.WarnLevel, false},
	}
	for _, tt := range tests {
		got, ok := parseLevel(tt.raw)
		assert.Equal(t, tt.want, got, "parseLevel(%q)", tt.raw)
		assert.Equal(t, tt.ok, ok, "parseLevel(%q) ok", tt.raw)
	}
}

func TestParseBool(t *testing.T) {
	v, ok := parseBool("true")
	assert.True(t, v)
	assert.True(t, ok)

	_, ok = parseBool("")
	assert.False(t, ok)

	_, ok = parseBool("maybe")
	assert.False(t, ok)
}

func TestApplyEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvLogTimestamp, "true")
	t.Setenv(EnvLogNoColor, "1")

	cfg := DefaultConfig(false)
	applyEnvOverrides(&cfg)

	assert.Equal(t, zerolog.InfoLevel, cfg.Level)
	assert.True(t, cfg.Timestamp)
	assert.True(t, cfg.NoColor)
}

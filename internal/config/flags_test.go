package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogLevel_Set tests the Set method of LogLevel
func TestLogLevel_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    string
	}{
		{name: "debug", input: "debug", expected: "debug"},
		{name: "upper case", input: "WARN", expected: "warn"},
		{name: "padded", input: "  error ", expected: "error"},
		{name: "numeric", input: "1", expected: "info"},
		{name: "unknown", input: "loud", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l LogLevel
			err := l.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, l.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l.String())
		})
	}
}

// TestParseFlags_Empty verifies that no flags yield a zero config.
func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &LauncherConfig{}, cfg)
}

// TestParseFlags_AllFlags verifies every flag lands in its field.
func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-log-level", "warn",
		"-log-file", "launcher.log",
		"-log-console",
		"-dump",
		"-view",
		"-write-default",
		"-force",
	})
	require.NoError(t, err)

	assert.Equal(t, Log{Level: "warn", File: "launcher.log", Console: true}, cfg.Log)
	assert.Equal(t, Maintenance{Dump: true, View: true, WriteDefault: true, Force: true}, cfg.Maintenance)
}

// TestParseFlags_InvalidLevel verifies that a bad level is a parse error.
func TestParseFlags_InvalidLevel(t *testing.T) {
	cfg, err := parseFlags([]string{"-log-level", "loud"})
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

// TestLog_ZerologLevel verifies conversion to zerolog levels.
func TestLog_ZerologLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, Log{Level: "warn"}.ZerologLevel())
	assert.Equal(t, zerolog.InfoLevel, Log{Level: "nonsense"}.ZerologLevel())
}

func TestParseFlags_Help(t *testing.T) {
	for _, arg := range []string{"-h", "-help"} {
		t.Run(arg, func(t *testing.T) {
			_, err := parseFlags([]string{arg})
			require.Error(t, err)
			assert.True(t, IsHelpRequested(err))
		})
	}
}

func TestGetLauncherConfig_HelpRequested(t *testing.T) {
	_, err := GetLauncherConfig([]string{"-h"})
	require.Error(t, err)
	assert.True(t, IsHelpRequested(err))
	assert.False(t, IsHelpRequested(ErrInvalidLogConfigs))
}

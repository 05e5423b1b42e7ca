package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "padding = 4096\nunsync = false\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 4096, cfg.Padding)
	require.False(t, cfg.Unsync)
}

func TestLoadConfigPartial(t *testing.T) {
	// Unset keys keep the library defaults.
	path := writeConfig(t, "padding = 16\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.Padding)
	require.Equal(t, defaultConfig().Unsync, cfg.Unsync)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "paddding = 16\n")

	_, err := loadConfig(path)
	require.ErrorContains(t, err, "unknown key")
}

func TestLoadConfigRejectsNegativePadding(t *testing.T) {
	path := writeConfig(t, "padding = -1\n")

	_, err := loadConfig(path)
	require.ErrorContains(t, err, "padding")
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestParseVersion(t *testing.T) {
	for in, want := range map[string]byte{"2.2": 2, "2.3": 3, "2.4": 4} {
		v, ok := parseVersion(in)
		require.True(t, ok, in)
		require.Equal(t, want, byte(v), in)
	}

	_, ok := parseVersion("2.5")
	require.False(t, ok)
}

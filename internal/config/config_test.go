package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvAPIBaseURL, "")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultAPIBaseURL, c.APIBaseURL)
	require.Equal(t, "info", c.LogLevel)
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvAPIBaseURL, "")

	require.NoError(t, Save(Config{APIBaseURL: "https://deck.example.com", LogLevel: "debug"}))

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://deck.example.com", c.APIBaseURL)
	require.Equal(t, "debug", c.LogLevel)
}

func TestEnvOverridesStoredBaseURL(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, Save(Config{APIBaseURL: "https://stored.example.com"}))

	t.Setenv(EnvAPIBaseURL, "https://env.example.com")
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://env.example.com", c.APIBaseURL)
}

func TestConfigFilePermissions(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, Save(Config{APIBaseURL: "https://deck.example.com"}))

	info, err := os.Stat(filepath.Join(dir, "userdeck", "config.json"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

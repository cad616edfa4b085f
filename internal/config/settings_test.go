package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GITSYNC_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSyncConfig(), settings.SyncConfig())
}

func TestLoadSettings_AppliesOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GITSYNC_HOME", home)

	content := `{
		"cache_ttl_ms": 2500,
		"debounce_ms": 0,
		"max_concurrent_operations": 4,
		"watch_ignore": "vendor, .git",
		"log_level": "warn"
	}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "warn", settings.LogLevel)

	cfg := settings.SyncConfig()
	assert.Equal(t, 2500*time.Millisecond, cfg.CacheTTL)
	assert.Equal(t, DefaultDebounce, cfg.Debounce, "zero is ignored")
	assert.Equal(t, 4, cfg.MaxConcurrentOperations)
	assert.Equal(t, []string{"vendor", ".git"}, cfg.WatchIgnore)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GITSYNC_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()
	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	t.Setenv("GITSYNC_HOME", filepath.Join(t.TempDir(), "nested"))
	ttl := 1234

	require.NoError(t, SaveSettings(&Settings{CacheTTLMs: &ttl}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, settings.CacheTTLMs)
	assert.Equal(t, 1234, *settings.CacheTTLMs)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "repos"), ExpandPath("~/repos"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}

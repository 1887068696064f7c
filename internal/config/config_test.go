package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskger", "config.toml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	assert.Equal(t, "q", cfg.Keys.Quit)

	// the file was written and loads back identically
	_, err = os.Stat(path)
	require.NoError(t, err)
	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
base_url = "https://tasks.example.com/api/tasks"
timeout_seconds = 5
debug_log = "/tmp/taskger.log"

[keys]
quit = "Q"
add = "n"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "https://tasks.example.com/api/tasks", cfg.BaseURL)
	assert.Equal(t, 5, cfg.TimeoutSeconds)
	assert.Equal(t, "/tmp/taskger.log", cfg.DebugLog)
	assert.Equal(t, "Q", cfg.Keys.Quit)
	assert.Equal(t, "n", cfg.Keys.Add)
	// keys absent from the file keep their defaults
	assert.Equal(t, "e", cfg.Keys.Edit)
}

func TestLoadOrCreateBackfillsEmptyValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`base_url = ""`), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`base_url = [`), 0o644))

	_, err := LoadOrCreate(path)
	assert.Error(t, err)
}

func TestResolveConfigPathHonorsEnv(t *testing.T) {
	t.Setenv("TASKGER_CONFIG", "/etc/taskger/config.toml")
	assert.Equal(t, "/etc/taskger/config.toml", ResolveConfigPath())
}

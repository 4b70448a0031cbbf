package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlstage/crew-engine/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "crew.db", cfg.Database.Path)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 1920, cfg.Upload.MaxDimension)
	assert.Equal(t, 85, cfg.Upload.Quality)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
database:
  path: ":memory:"
upload:
  max_dimension: 1280
logger:
  level: debug
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, 1280, cfg.Upload.MaxDimension)
	// unset keys keep their defaults
	assert.Equal(t, 85, cfg.Upload.Quality)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CREW_SERVER_PORT", "7777")
	t.Setenv("CREW_DATABASE_PATH", ":memory:")
	t.Setenv("CREW_LOGGER_LEVEL", "warn")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o644))
	t.Setenv("CREW_SERVER_PORT", "7777")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7777, cfg.Server.Port)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: -1\n"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

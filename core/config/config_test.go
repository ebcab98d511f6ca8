package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Export.Enabled)
	assert.True(t, cfg.Export.SortData)
	assert.True(t, cfg.Export.MergeStorage)
	assert.False(t, cfg.Export.TimestampedCopy)
	assert.Equal(t, "./exports", cfg.Export.FilesPath)
	assert.Equal(t, "file", cfg.Export.Destination)
	assert.Equal(t, 32, cfg.Export.QueueSize)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("EXPORT_MERGE_STORAGE", "false")
	t.Setenv("EXPORT_TIMESTAMPED_COPY", "true")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.False(t, cfg.Export.MergeStorage)
	assert.True(t, cfg.Export.TimestampedCopy)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("EXPORT_FILES_PATH=/data/profiles\nLOG_LEVEL=debug\n"), 0o644)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("EXPORT_FILES_PATH")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/data/profiles", cfg.Export.FilesPath)
	assert.Equal(t, "debug", cfg.Log.Level)
}

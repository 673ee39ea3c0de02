package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devrev/recordstore/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Store.InitialCapacity)
	assert.Equal(t, 16, cfg.Store.BTreeDegree)
	assert.Equal(t, "developers.dat", cfg.Snapshot.Path)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9090, cfg.Metrics.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
store:
  initial_capacity: 8
snapshot:
  path: /tmp/devs.dat
metrics:
  enabled: true
  port: 9100
logging:
  level: debug
  format: console
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Store.InitialCapacity)
	assert.Equal(t, 16, cfg.Store.BTreeDegree)
	assert.Equal(t, "/tmp/devs.dat", cfg.Snapshot.Path)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9100, cfg.Metrics.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("RECORDSTORE_SNAPSHOT_PATH", "/data/override.dat")
	t.Setenv("RECORDSTORE_LOG_LEVEL", "warn")

	path := writeConfig(t, "snapshot:\n  path: file.dat\n")
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/override.dat", cfg.Snapshot.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "negative capacity", content: "store:\n  initial_capacity: -1\n"},
		{name: "degree too small", content: "store:\n  btree_degree: 1\n"},
		{name: "port out of range", content: "metrics:\n  port: 70000\n"},
		{name: "unknown level", content: "logging:\n  level: verbose\n"},
		{name: "unknown format", content: "logging:\n  format: xml\n"},
		{name: "malformed yaml", content: "store: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

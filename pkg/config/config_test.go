package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TestEnvironmentDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.DatabaseFilePath)
	assert.Equal(t, 0, cfg.ServerPort)
	assert.Equal(t, 5, cfg.DatabaseConnectRetryCount)
	assert.Equal(t, 5*time.Second, cfg.DatabaseBusyTimeout)
	assert.Equal(t, "https://www.googleapis.com/books/v1", cfg.GoogleBooksBaseURL)
	assert.NotEmpty(t, cfg.Hostname)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("READSHELF_SERVER_PORT", "8123")
	t.Setenv("READSHELF_DATABASE_FILE_PATH", "/tmp/override.sqlite")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8123, cfg.ServerPort)
	assert.Equal(t, "/tmp/override.sqlite", cfg.DatabaseFilePath)
}

func TestNew_ConfigFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "readshelf.yaml")
	err := os.WriteFile(path, []byte("server_port: 9321\ndatabase_debug: true\n"), 0600)
	require.NoError(t, err)

	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CONFIG_FILE", path)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9321, cfg.ServerPort)
	assert.True(t, cfg.DatabaseDebug)
}

func TestNew_EnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "readshelf.yaml")
	err := os.WriteFile(path, []byte("server_port: 9321\n"), 0600)
	require.NoError(t, err)

	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("READSHELF_SERVER_PORT", "9999")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.ServerPort)
}

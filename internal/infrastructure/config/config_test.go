package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ":8790", cfg.HTTP.Addr)
	assert.Equal(t, SQLitePath(dir), cfg.SQLite.Path)
	assert.Equal(t, 43200, cfg.Auth.TokenTTLSeconds)
	assert.Empty(t, cfg.Auth.Secret)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0o755))

	content := `
http:
  addr: ":9000"
sqlite:
  path: "/tmp/custom.db"
auth:
  secret: "file-secret"
`
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, "/tmp/custom.db", cfg.SQLite.Path)
	assert.Equal(t, "file-secret", cfg.Auth.Secret)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0o755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("http: ["), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RELATIONS_HTTP_ADDR", ":7777")
	t.Setenv("RELATIONS_AUTH_SECRET", "env-secret")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ":7777", cfg.HTTP.Addr)
	assert.Equal(t, "env-secret", cfg.Auth.Secret)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, Exists(dir))

	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0o755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("{}"), 0o644))
	assert.True(t, Exists(dir))
}

func TestSQLitePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/base", DefaultConfigDir, DefaultDatabaseFile), SQLitePath("/base"))
}

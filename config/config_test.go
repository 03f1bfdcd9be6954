package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/melkeydev/sqltypes/ddl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sqltypes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
schema:
  file: db/schema.yaml
  dialect: sqlite
server:
  name: schema-tools
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "db/schema.yaml", cfg.Schema.File)
	assert.Equal(t, "sqlite", cfg.Schema.Dialect)
	assert.Equal(t, "schema-tools", cfg.Server.Name)
	assert.Equal(t, "0.1.0", cfg.Server.Version)

	d, err := cfg.Schema.GetDialect()
	require.NoError(t, err)
	assert.Equal(t, ddl.SQLite, d)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "schema.yaml", cfg.Schema.File)
	assert.Equal(t, "postgres", cfg.Schema.Dialect)
}

func TestLoadConfig_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name        string
		path        func(t *testing.T) string
		errContains string
	}{
		{"missing explicit file", func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "nope.yaml")
		}, "failed to read config file"},
		{"bad yaml", func(t *testing.T) string {
			return writeConfig(t, "schema: [\n")
		}, "failed to parse config"},
		{"bad dialect", func(t *testing.T) string {
			return writeConfig(t, "schema:\n  dialect: oracle\n")
		}, "unsupported dialect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

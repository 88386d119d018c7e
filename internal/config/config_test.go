package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, SourceDir, cfg.Source)
	assert.Equal(t, "dist", cfg.OutDir)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "US", cfg.PhoneRegion)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.GreaterOrEqual(t, cfg.Concurrency, 1)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("out_dir: public_html\nconcurrency: 2\nlog:\n  level: debug\n"), 0o644))

	t.Setenv("PAGESMITH_LOCALE", "fr")
	t.Setenv("PAGESMITH_SERVER_ADDR", ":9000")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "public_html", cfg.OutDir)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := chdirTemp(t)

	_, err := Load(viper.New(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{Source: SourceDir, DataDir: "data", OutDir: "dist", Concurrency: 1, Locale: "en"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unknown source", func(c *Config) { c.Source = "ftp" }, true},
		{"sqlite without path", func(c *Config) { c.Source = SourceSQLite; c.SQLitePath = "" }, true},
		{"sqlite with path", func(c *Config) { c.Source = SourceSQLite; c.SQLitePath = "x.db" }, false},
		{"no out dir", func(c *Config) { c.OutDir = "" }, true},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, true},
		{"no locale", func(c *Config) { c.Locale = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

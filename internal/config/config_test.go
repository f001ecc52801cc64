package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(FileEnv, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, "8080", cfg.Port)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docdesk.yaml")
	yamlDoc := `
port: "9000"
docs_path: /srv/docs.json
watch_docs: false
viewport_width: 1600
fetch_timeout: 3s
ws_origin_patterns: ["example.com"]
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))
	t.Setenv("PORT", "9100")
	t.Setenv("WS_ORIGIN_PATTERNS", "a.test, b.test,")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "/srv/docs.json", cfg.DocsPath)
	assert.False(t, cfg.WatchDocs)
	assert.Equal(t, 1600, cfg.ViewportWidth)
	assert.Equal(t, 800, cfg.ViewportHeight)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, []string{"a.test", "b.test"}, cfg.WSOriginPatterns)
}

func TestLoad_FileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docdesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))
	t.Setenv(FileEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_BadFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [1, 2"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidEnvKeepsFallback(t *testing.T) {
	t.Setenv(FileEnv, "")
	t.Setenv("MAX_NOTICES", "lots")
	t.Setenv("WATCH_DOCS", "maybe")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxNotices)
	assert.True(t, cfg.WatchDocs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Port = "http" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"no store", func(c *Config) { c.DocsPath = ""; c.DocsURL = "" }},
		{"zero viewport", func(c *Config) { c.ViewportWidth = 0 }},
		{"min larger than viewport", func(c *Config) { c.MinWindowHeight = 5000 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

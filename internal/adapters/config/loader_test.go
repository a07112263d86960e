package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/adapters/config"
	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/var/cache/test")

	loader := &config.Loader{Path: filepath.Join(t.TempDir(), "absent.yaml")}
	settings, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "make.py", settings.Script)
	assert.Equal(t, "/var/cache/test/mk/cache", settings.CacheFile)
	assert.Empty(t, settings.LogLevel)
	assert.Equal(t, domain.DefaultProbeTools(), settings.Tools)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	loader := &config.Loader{Path: filepath.Join(t.TempDir(), "absent.yaml"), Explicit: true}
	_, err := loader.Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
script: build.py
cache_file: /tmp/mk-test/cache
log_level: debug
tools:
  - name: pdm
    cmd: [pdm, venv, --path, in-project]
    parse: last-line
  - name: poetry
    cmd: [poetry, env, info, --path]
    hint: This usually means there is no venv.
    empty: No venv found for current working directory.
`)

	settings, err := (&config.Loader{Path: path, Explicit: true}).Load()
	require.NoError(t, err)

	assert.Equal(t, "build.py", settings.Script)
	assert.Equal(t, "/tmp/mk-test/cache", settings.CacheFile)
	assert.Equal(t, "debug", settings.LogLevel)
	require.Len(t, settings.Tools, 2)

	assert.Equal(t, domain.ProbeTool{
		Name:    "pdm",
		Command: []string{"pdm", "venv", "--path", "in-project"},
		Parse:   domain.ParseLastLine,
	}, settings.Tools[0])
	assert.Equal(t, domain.ParseTrim, settings.Tools[1].Parse)
	assert.Equal(t, "This usually means there is no venv.", settings.Tools[1].Hint)
	assert.Equal(t, "No venv found for current working directory.", settings.Tools[1].EmptyMessage)
}

func TestLoad_ExpandsHomeInCacheFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, "cache_file: ~/.cache/mewo_mk/cache\n")

	settings, err := (&config.Loader{Path: path}).Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".cache", "mewo_mk", "cache"), settings.CacheFile)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "tools: [unterminated\n")

	_, err := (&config.Loader{Path: path}).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestLoad_InvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "script with directory", content: "script: scripts/make.py\n"},
		{name: "tool without command", content: "tools:\n  - name: uv\n"},
		{name: "tool without name", content: "tools:\n  - cmd: [uv]\n"},
		{name: "unknown parse rule", content: "tools:\n  - name: uv\n    cmd: [uv]\n    parse: json\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := (&config.Loader{Path: path}).Load()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
		})
	}
}

func TestNewLoader_HonoursEnvironment(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "/etc/mk.yaml")
	loader := config.NewLoader()
	assert.Equal(t, "/etc/mk.yaml", loader.Path)
	assert.True(t, loader.Explicit)

	t.Setenv(config.EnvConfigPath, "")
	loader = config.NewLoader()
	assert.Empty(t, loader.Path)
	assert.False(t, loader.Explicit)
}

func TestDefaults(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/var/cache/test")

	settings, err := config.Defaults()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScript, settings.Script)
	assert.Equal(t, "/var/cache/test/mk/cache", settings.CacheFile)
	assert.Len(t, settings.Tools, 2)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = config.ExpandPath("~/x/y")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x", "y"), got)

	got, err = config.ExpandPath("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}

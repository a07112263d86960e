package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/adapters/logger"
	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
)

func testSettings(t *testing.T) *domain.Settings {
	t.Helper()

	return &domain.Settings{
		Script:    domain.DefaultScript,
		CacheFile: filepath.Join(t.TempDir(), "cache"),
		LogLevel:  "warn",
		Tools:     domain.DefaultProbeTools(),
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, proj string)
		expectedExit int
		expectedErr  func(proj string) string
	}{
		{
			name: "script exit status is mirrored",
			setup: func(t *testing.T, proj string) {
				t.Helper()
				envPath := filepath.Join(proj, ".venv")
				writeScript(t, filepath.Join(proj, "tools", "uv"), `echo "`+envPath+`"`)
				writeScript(t, domain.InterpreterPath(envPath), `exit 5`)
				require.NoError(t, os.WriteFile(filepath.Join(proj, domain.DefaultScript), nil, 0o600))
			},
			expectedExit: 5,
		},
		{
			name: "missing script",
			setup: func(t *testing.T, _ string) {
				t.Helper()
			},
			expectedExit: 1,
			expectedErr: func(proj string) string {
				return "mk: ✗ cannot find 'make.py' file: script not found path=" + filepath.Join(proj, domain.DefaultScript) + "\n"
			},
		},
		{
			name: "no environment",
			setup: func(t *testing.T, proj string) {
				t.Helper()
				writeScript(t, filepath.Join(proj, "tools", "uv"), `exit 1`)
				writeScript(t, filepath.Join(proj, "tools", "poetry"), `echo`)
				require.NoError(t, os.WriteFile(filepath.Join(proj, domain.DefaultScript), nil, 0o600))
			},
			expectedExit: 1,
			expectedErr: func(string) string {
				return "mk: ✗ No venv found for current working directory.\n"
			},
		},
		{
			name: "terminal tool failure carries stderr",
			setup: func(t *testing.T, proj string) {
				t.Helper()
				writeScript(t, filepath.Join(proj, "tools", "uv"), `exit 1`)
				writeScript(t, filepath.Join(proj, "tools", "poetry"), `echo "Poetry could not find a pyproject.toml file" >&2; exit 1`)
				require.NoError(t, os.WriteFile(filepath.Join(proj, domain.DefaultScript), nil, 0o600))
			},
			expectedExit: 1,
			expectedErr: func(string) string {
				return "mk: ✗ command 'poetry env info --path' returned exit status 1. This usually means there is no venv. " +
					`exit_code=1 stderr="Poetry could not find a pyproject.toml file"` + "\n"
			},
		},
		{
			name: "multi-line uv output falls back to poetry",
			setup: func(t *testing.T, proj string) {
				t.Helper()
				envPath := filepath.Join(proj, "poetry-env")
				writeScript(t, filepath.Join(proj, "tools", "uv"), `echo "Using CPython 3.12.4"; echo "`+proj+`/.venv"`)
				writeScript(t, filepath.Join(proj, "tools", "poetry"), `echo "`+envPath+`"`)
				writeScript(t, domain.InterpreterPath(envPath), `exit 7`)
				require.NoError(t, os.WriteFile(filepath.Join(proj, domain.DefaultScript), nil, 0o600))
			},
			expectedExit: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			proj := t.TempDir()
			t.Chdir(proj)
			t.Setenv("PATH", filepath.Join(proj, "tools")+string(os.PathListSeparator)+"/usr/bin:/bin")
			tt.setup(t, proj)

			var stderr bytes.Buffer
			code := run([]string{"build"}, &stderr,
				graft.DisableCache(),
				graft.PatchValue[*domain.Settings](testSettings(t)),
				graft.PatchValue[ports.Logger](logger.NewWithWriter(&stderr, logger.DefaultLevel)),
			)

			assert.Equal(t, tt.expectedExit, code)
			want := ""
			if tt.expectedErr != nil {
				want = tt.expectedErr(proj)
			}
			assert.Equal(t, want, stderr.String())
		})
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log_level: loud\n"), 0o600))
	t.Setenv("MK_CONFIG", configPath)

	var stderr bytes.Buffer
	code := run(nil, &stderr, graft.DisableCache())

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "mk: ✗ ")
	assert.Contains(t, stderr.String(), domain.ErrInvalidConfig.Error())
	assert.Contains(t, stderr.String(), "log_level=loud")
}

func writeScript(t *testing.T, path, body string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	//nolint:gosec // test fixture must be executable
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
}

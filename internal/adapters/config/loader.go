// Package config provides the settings loader for mk.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// AppName names the per-user cache and config directories.
	AppName = "mk"
	// ConfigFileName is the file looked up in the user config directory.
	ConfigFileName = "config.yaml"
	// CacheFileName is the environment cache inside the user cache directory.
	CacheFileName = "cache"
	// EnvConfigPath overrides the location of the config file.
	EnvConfigPath = "MK_CONFIG"
)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	// Path is the config file to read. An empty Path selects the default location.
	Path string
	// Explicit marks Path as user-provided; a missing explicit file is an error.
	Explicit bool
}

// NewLoader creates a Loader honouring MK_CONFIG, falling back to the user config directory.
func NewLoader() *Loader {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return &Loader{Path: path, Explicit: true}
	}
	return &Loader{}
}

// Load reads the config file and merges it over the defaults.
func (l *Loader) Load() (*domain.Settings, error) {
	path := l.Path
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, zerr.Wrap(domain.ErrHomeDir, err.Error())
		}
		path = filepath.Join(dir, AppName, ConfigFileName)
	}

	var file Configfile
	//nolint:gosec // path is provided by the user
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, err.Error()), "path", path)
		}
	case errors.Is(err, fs.ErrNotExist) && !l.Explicit:
		// No config file: defaults only.
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, err.Error()), "path", path)
	}

	settings, err := file.toSettings()
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return settings, nil
}

// Defaults returns the settings used when no config file exists.
func Defaults() (*domain.Settings, error) {
	return Configfile{}.toSettings()
}

func (c Configfile) toSettings() (*domain.Settings, error) {
	settings := &domain.Settings{
		Script:   c.Script,
		LogLevel: c.LogLevel,
	}

	if settings.Script == "" {
		settings.Script = domain.DefaultScript
	}
	if strings.ContainsRune(settings.Script, '/') || strings.ContainsRune(settings.Script, filepath.Separator) {
		err := zerr.Wrap(domain.ErrInvalidConfig, "script must be a file name in the project directory")
		return nil, zerr.With(err, "script", settings.Script)
	}

	cacheFile, err := resolveCacheFile(c.CacheFile)
	if err != nil {
		return nil, err
	}
	settings.CacheFile = cacheFile

	if len(c.Tools) == 0 {
		settings.Tools = domain.DefaultProbeTools()
		return settings, nil
	}

	settings.Tools = make([]domain.ProbeTool, 0, len(c.Tools))
	for _, dto := range c.Tools {
		tool := domain.ProbeTool{
			Name:         dto.Name,
			Command:      dto.Cmd,
			Parse:        domain.ParseRule(dto.Parse),
			Hint:         dto.Hint,
			EmptyMessage: dto.Empty,
		}
		if tool.Parse == "" {
			tool.Parse = domain.ParseTrim
		}
		if err := tool.Validate(); err != nil {
			return nil, err
		}
		settings.Tools = append(settings.Tools, tool)
	}

	return settings, nil
}

func resolveCacheFile(configured string) (string, error) {
	if configured == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return "", zerr.Wrap(domain.ErrHomeDir, err.Error())
		}
		return filepath.Join(dir, AppName, CacheFileName), nil
	}

	expanded, err := ExpandPath(configured)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidConfig, err.Error()), "cache_file", configured)
	}
	return abs, nil
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(domain.ErrHomeDir, err.Error())
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// Package app implements the application layer for mk.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	resolver ports.EnvResolver
	launcher ports.Launcher
	logger   ports.Logger
	script   string
}

// New creates a new App instance that runs script from the working directory.
func New(resolver ports.EnvResolver, launcher ports.Launcher, logger ports.Logger, script string) *App {
	return &App{
		resolver: resolver,
		launcher: launcher,
		logger:   logger,
		script:   script,
	}
}

// Run resolves the working directory's environment and runs the script with args.
// It returns the script's exit status. Preconditions are checked before any
// resolution work, so a failing precondition leaves the cache untouched.
func (a *App) Run(ctx context.Context, args []string) (int, error) {
	dir, err := os.Getwd()
	if err != nil {
		return 0, zerr.Wrap(domain.ErrWorkingDir, err.Error())
	}

	scriptPath := filepath.Join(dir, a.script)
	if _, err := os.Stat(scriptPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err := zerr.Wrap(domain.ErrScriptNotFound, fmt.Sprintf("cannot find '%s' file", a.script))
			return 0, zerr.With(err, "path", scriptPath)
		}
		return 0, zerr.With(zerr.Wrap(err, "cannot inspect script"), "path", scriptPath)
	}

	searchPath, ok := os.LookupEnv("PATH")
	if !ok {
		return 0, domain.ErrPathUnset
	}

	envPath, err := a.resolver.Resolve(ctx, dir)
	if err != nil {
		return 0, err
	}
	a.logger.Debug(fmt.Sprintf("using environment %s", envPath))

	return a.launcher.Launch(ctx, ports.LaunchRequest{
		EnvPath:    envPath,
		Dir:        dir,
		Script:     a.script,
		Args:       args,
		SearchPath: searchPath,
	})
}

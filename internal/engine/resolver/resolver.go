// Package resolver maps a project directory to its virtual environment.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.EnvResolver on top of the environment cache and
// an ordered chain of discovery tools.
type Resolver struct {
	cache    ports.EnvCache
	verifier ports.EnvVerifier
	prober   ports.Prober
	tools    []domain.ProbeTool
	logger   ports.Logger
}

// NewResolver creates a new Resolver. The last entry of tools is terminal.
func NewResolver(
	cache ports.EnvCache,
	verifier ports.EnvVerifier,
	prober ports.Prober,
	tools []domain.ProbeTool,
	logger ports.Logger,
) *Resolver {
	return &Resolver{
		cache:    cache,
		verifier: verifier,
		prober:   prober,
		tools:    tools,
		logger:   logger,
	}
}

// Resolve returns the environment path for directory.
// A live cached path is returned without running any tool. Otherwise the
// discovery chain runs and its result is appended to the cache.
func (r *Resolver) Resolve(ctx context.Context, directory string) (string, error) {
	cached, found, err := r.cache.Load(directory)
	if err != nil {
		return "", err
	}

	if found {
		if r.verifier.IsLive(cached) {
			r.logger.Debug(fmt.Sprintf("cache hit for %s: %s", directory, cached))
			return cached, nil
		}
		r.logger.Debug(fmt.Sprintf("cached environment %s is stale", cached))
	} else {
		r.logger.Debug(fmt.Sprintf("no cached environment for %s", directory))
	}

	envPath, err := r.discover(ctx, directory)
	if err != nil {
		return "", err
	}

	if err := r.cache.Append(directory, envPath); err != nil {
		return "", err
	}

	return envPath, nil
}

func (r *Resolver) discover(ctx context.Context, directory string) (string, error) {
	if len(r.tools) == 0 {
		return "", zerr.With(zerr.Wrap(domain.ErrNoProbeTools, "cannot resolve environment"), "directory", directory)
	}

	last := len(r.tools) - 1
	for _, tool := range r.tools[:last] {
		envPath, err := r.prober.Probe(ctx, directory, tool)
		if err == nil {
			r.logger.Debug(fmt.Sprintf("%s reported %s", tool.Name, envPath))
			return envPath, nil
		}
		r.logger.Debug(unavailable(tool, err))
	}

	tool := r.tools[last]
	envPath, err := r.prober.Probe(ctx, directory, tool)
	if err != nil {
		return "", terminalError(directory, tool, err)
	}
	r.logger.Debug(fmt.Sprintf("%s reported %s", tool.Name, envPath))
	return envPath, nil
}

func unavailable(tool domain.ProbeTool, err error) string {
	msg := fmt.Sprintf("%s unavailable: %v", tool.Name, err)
	var toolErr *domain.ToolError
	if errors.As(err, &toolErr) && toolErr.Stderr != "" {
		msg += fmt.Sprintf(" (stderr: %s)", toolErr.Stderr)
	}
	return msg
}

// terminalError turns the last tool's failure into the user-facing diagnostic.
// The tool's exit code and stderr ride along as metadata.
func terminalError(directory string, tool domain.ProbeTool, err error) error {
	resErr := &domain.ResolutionError{Directory: directory, Cause: err}

	switch {
	case errors.Is(err, domain.ErrToolEmptyOutput):
		resErr.Message = tool.EmptyMessage
	case errors.Is(err, domain.ErrToolFailed):
		resErr.Hint = tool.Hint
	}

	var toolErr *domain.ToolError
	if !errors.As(err, &toolErr) {
		return resErr
	}

	var out error = resErr
	if toolErr.Status != "" {
		out = zerr.With(out, "exit_code", toolErr.ExitCode)
	}
	if toolErr.Stderr != "" {
		out = zerr.With(out, "stderr", toolErr.Stderr)
	}
	return out
}

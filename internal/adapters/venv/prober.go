// Package venv runs external tools that report a project's virtual environment.
package venv

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/mk/internal/core/domain"
)

// Prober implements ports.Prober by executing each tool as a subprocess.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Probe runs tool in dir and parses its standard output into an environment path.
// Standard error is captured for diagnostics and never shown to the user directly.
func (p *Prober) Probe(ctx context.Context, dir string, tool domain.ProbeTool) (string, error) {
	if err := tool.Validate(); err != nil {
		return "", &domain.ToolError{Tool: tool, Err: domain.ErrToolNotFound, Cause: err}
	}

	//nolint:gosec // tool commands come from the built-in chain or the user's config
	cmd := exec.CommandContext(ctx, tool.Command[0], tool.Command[1:]...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &domain.ToolError{
				Tool:     tool,
				Err:      domain.ErrToolFailed,
				Cause:    exitErr,
				Status:   exitErr.String(),
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return "", &domain.ToolError{Tool: tool, Err: domain.ErrToolNotFound, Cause: err}
	}

	envPath := tool.ParseOutput(output)
	switch {
	case envPath == "":
		return "", &domain.ToolError{
			Tool:   tool,
			Err:    domain.ErrToolEmptyOutput,
			Stderr: strings.TrimSpace(stderr.String()),
		}
	case strings.ContainsAny(envPath, "\r\n"):
		// A path with a line break would corrupt the line-oriented cache.
		return "", &domain.ToolError{
			Tool:   tool,
			Err:    domain.ErrToolMultiLine,
			Stderr: strings.TrimSpace(stderr.String()),
		}
	}

	return envPath, nil
}

package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ParseRule selects how a discovery tool's standard output becomes a path.
type ParseRule string

const (
	// ParseTrim uses the whole output with surrounding whitespace removed.
	ParseTrim ParseRule = "trim"
	// ParseLastLine uses the last non-blank line of the output.
	ParseLastLine ParseRule = "last-line"
)

// ProbeTool describes one external command in the environment discovery chain.
type ProbeTool struct {
	// Name identifies the tool in diagnostics.
	Name string
	// Command is the program followed by its arguments.
	Command []string
	// Parse is the output parsing rule; empty means ParseTrim.
	Parse ParseRule
	// Hint is appended to the diagnostic when the tool is the last resort and fails.
	Hint string
	// EmptyMessage replaces the diagnostic when the tool succeeds without a path.
	EmptyMessage string
}

// CommandLine returns the invocation as it would be typed in a shell.
func (t ProbeTool) CommandLine() string {
	return strings.Join(t.Command, " ")
}

// Validate checks that the descriptor can be executed.
func (t ProbeTool) Validate() error {
	if t.Name == "" {
		return zerr.Wrap(ErrInvalidConfig, "discovery tool without a name")
	}
	if len(t.Command) == 0 || t.Command[0] == "" {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "discovery tool without a command"), "tool", t.Name)
	}
	switch t.Parse {
	case "", ParseTrim, ParseLastLine:
		return nil
	default:
		err := zerr.With(zerr.Wrap(ErrInvalidConfig, "unknown parse rule"), "tool", t.Name)
		return zerr.With(err, "parse", string(t.Parse))
	}
}

// ParseOutput extracts the environment path from the tool's standard output.
func (t ProbeTool) ParseOutput(stdout []byte) string {
	out := string(stdout)
	if t.Parse != ParseLastLine {
		return strings.TrimSpace(out)
	}
	lines := strings.Split(out, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// DefaultProbeTools returns the built-in chain: uv first, poetry as the last resort.
func DefaultProbeTools() []ProbeTool {
	return []ProbeTool{
		{
			Name:    "uv",
			Command: []string{"uv", "run", "python", "-c", "import os; print(os.environ['VIRTUAL_ENV'])"},
			Parse:   ParseTrim,
		},
		{
			Name:         "poetry",
			Command:      []string{"poetry", "env", "info", "--path"},
			Parse:        ParseTrim,
			Hint:         "This usually means there is no venv.",
			EmptyMessage: "No venv found for current working directory.",
		},
	}
}

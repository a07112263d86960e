package domain

import (
	"fmt"
	"strings"
)

// ToolError describes a discovery tool run that produced no usable path.
// Err is the failure class: ErrToolNotFound, ErrToolFailed, ErrToolEmptyOutput
// or ErrToolMultiLine.
type ToolError struct {
	Tool     ProbeTool
	Err      error
	Cause    error
	Status   string
	ExitCode int
	Stderr   string
}

// Error returns the diagnostic for the failed run.
func (e *ToolError) Error() string {
	switch {
	case e.Status != "":
		return fmt.Sprintf("command '%s' returned %s", e.Tool.CommandLine(), e.Status)
	case e.Cause != nil:
		return fmt.Sprintf("failed to execute '%s': %v", e.Tool.CommandLine(), e.Cause)
	default:
		return fmt.Sprintf("command '%s': %v", e.Tool.CommandLine(), e.Err)
	}
}

// Unwrap exposes the failure class and the underlying cause.
func (e *ToolError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// ResolutionError reports that the last tool of the discovery chain failed.
// It matches ErrNoEnvironment as well as the underlying tool error.
type ResolutionError struct {
	Directory string
	Cause     error
	Hint      string
	Message   string
}

// Error returns a one-line diagnostic including the tool's hint.
func (e *ResolutionError) Error() string {
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if msg == "" {
		msg = ErrNoEnvironment.Error()
	}
	if e.Hint != "" {
		msg = strings.TrimRight(msg, ".") + ". " + e.Hint
	}
	return msg
}

// Unwrap exposes both ErrNoEnvironment and the tool error to errors.Is.
func (e *ResolutionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrNoEnvironment}
	}
	return []error{ErrNoEnvironment, e.Cause}
}

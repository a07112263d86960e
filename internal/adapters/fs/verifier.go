// Package fs provides filesystem checks on virtual environments.
package fs

import (
	"os"

	"go.trai.ch/mk/internal/core/domain"
)

// Verifier implements ports.EnvVerifier by inspecting the environment's interpreter.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// IsLive reports whether <envPath>/bin/python exists and is executable.
// Any stat failure counts as not live.
func (v *Verifier) IsLive(envPath string) bool {
	if envPath == "" {
		return false
	}
	return isExecutable(domain.InterpreterPath(envPath))
}

func isExecutable(file string) bool {
	d, err := os.Stat(file)
	if err != nil {
		return false
	}
	m := d.Mode()
	return !m.IsDir() && m&0o111 != 0
}

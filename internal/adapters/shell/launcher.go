// Package shell provides the interpreter launcher adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
)

// signalExitBase is added to the signal number when the child is killed by a signal.
const signalExitBase = 128

// Launcher implements ports.Launcher using os/exec.
type Launcher struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewLauncher creates a Launcher wired to the process's standard streams.
func NewLauncher() *Launcher {
	return NewLauncherWithStreams(os.Stdin, os.Stdout, os.Stderr)
}

// NewLauncherWithStreams creates a Launcher with the given standard streams.
func NewLauncherWithStreams(stdin io.Reader, stdout, stderr io.Writer) *Launcher {
	return &Launcher{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Launch runs the script under the environment's interpreter and waits for it.
// The environment's bin directory is prepended to PATH so that subprocesses of
// the script resolve to the same interpreter.
//
// The child is not bound to ctx: an interrupt reaches it through the terminal's
// process group, and the launcher waits to report its status.
func (l *Launcher) Launch(_ context.Context, req ports.LaunchRequest) (int, error) {
	interpreter := domain.InterpreterPath(req.EnvPath)
	args := append([]string{req.Script}, req.Args...)

	cmd := exec.Command(interpreter, args...) //nolint:gosec,noctx // interpreter comes from a verified environment
	cmd.Dir = req.Dir
	cmd.Env = launchEnvironment(os.Environ(), domain.PrependPath(domain.BinDir(req.EnvPath), req.SearchPath))
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	if err := cmd.Start(); err != nil {
		err = zerr.Wrap(domain.ErrSpawnFailed, err.Error())
		return 0, zerr.With(err, "interpreter", interpreter)
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitCode(exitErr), nil
	}

	return 0, zerr.With(zerr.Wrap(err, "waiting for interpreter"), "interpreter", interpreter)
}

// exitCode maps the child's termination to a process exit status,
// following the shell convention for signals.
func exitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return signalExitBase + int(status.Signal())
	}
	return exitErr.ExitCode()
}

// launchEnvironment copies sysEnv with PATH replaced by searchPath.
func launchEnvironment(sysEnv []string, searchPath string) []string {
	env := make([]string, 0, len(sysEnv)+1)
	for _, entry := range sysEnv {
		if k, _, ok := strings.Cut(entry, "="); ok && k == "PATH" {
			continue
		}
		env = append(env, entry)
	}
	return append(env, "PATH="+searchPath)
}

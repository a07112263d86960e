package ports

import "context"

// Launcher runs a script under an environment's interpreter.
//
//go:generate go run go.uber.org/mock/mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Launch runs the request's script under the environment's interpreter.
	// It blocks until the child terminates and returns its exit status.
	Launch(ctx context.Context, req LaunchRequest) (exitCode int, err error)
}

// LaunchRequest describes a single interpreter invocation.
type LaunchRequest struct {
	// EnvPath is the root of the resolved virtual environment.
	EnvPath string
	// Dir is the working directory of the child.
	Dir string
	// Script is passed to the interpreter as its first argument.
	Script string
	// Args are forwarded verbatim after the script.
	Args []string
	// SearchPath is the inherited PATH the environment's bin directory is prepended to.
	SearchPath string
}

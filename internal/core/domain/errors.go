package domain

import "go.trai.ch/zerr"

var (
	// ErrScriptNotFound is returned when the target script is missing from the working directory.
	ErrScriptNotFound = zerr.New("script not found")

	// ErrWorkingDir is returned when the current working directory cannot be determined.
	ErrWorkingDir = zerr.New("cannot read the current directory")

	// ErrHomeDir is returned when the user's home, cache or config directory cannot be determined.
	ErrHomeDir = zerr.New("cannot read home dir")

	// ErrPathUnset is returned when the PATH variable is missing from the environment.
	ErrPathUnset = zerr.New("cannot read PATH from environment")

	// ErrCacheIO is returned when the environment cache cannot be read or written.
	ErrCacheIO = zerr.New("environment cache unavailable")

	// ErrToolNotFound is returned when a discovery tool cannot be started.
	ErrToolNotFound = zerr.New("discovery tool could not be started")

	// ErrToolFailed is returned when a discovery tool exits with a non-zero status.
	ErrToolFailed = zerr.New("discovery tool failed")

	// ErrToolEmptyOutput is returned when a discovery tool succeeds but reports no path.
	ErrToolEmptyOutput = zerr.New("discovery tool returned no path")

	// ErrToolMultiLine is returned when a discovery tool's parsed output spans more than one line.
	ErrToolMultiLine = zerr.New("discovery tool returned more than one line")

	// ErrNoEnvironment is returned when no virtual environment could be resolved.
	ErrNoEnvironment = zerr.New("no virtual environment found")

	// ErrNoProbeTools is returned when the fallback chain is empty.
	ErrNoProbeTools = zerr.New("no discovery tools configured")

	// ErrSpawnFailed is returned when the interpreter process cannot be started.
	ErrSpawnFailed = zerr.New("failed to execute process")

	// ErrInvalidConfig is returned when the configuration file is malformed.
	ErrInvalidConfig = zerr.New("invalid configuration")
)

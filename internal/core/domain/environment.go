package domain

import (
	"os"
	"path/filepath"
)

// InterpreterName is the executable expected inside an environment's bin directory.
const InterpreterName = "python"

// BinDir returns the executable directory of the environment rooted at envPath.
func BinDir(envPath string) string {
	return filepath.Join(envPath, "bin")
}

// InterpreterPath returns the interpreter of the environment rooted at envPath.
func InterpreterPath(envPath string) string {
	return filepath.Join(BinDir(envPath), InterpreterName)
}

// PrependPath places dir in front of the search path so it shadows every other entry.
func PrependPath(dir, searchPath string) string {
	if searchPath == "" {
		return dir
	}
	return dir + string(os.PathListSeparator) + searchPath
}

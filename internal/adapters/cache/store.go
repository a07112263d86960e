// Package cache implements the append-only environment cache.
package cache

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Store implements ports.EnvCache on a flat text file with one
// "<directory> <environment-path>" record per line.
//
// The file is opened for the duration of each Load or Append call only.
// Records are never rewritten, so a directory may appear several times;
// the last record wins.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at the given path.
// The file and its parent directory are created on the first Append.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the location of the cache file.
func (s *Store) Path() string {
	return s.path
}

// Load scans every record and returns the last environment path recorded for directory.
func (s *Store) Load(directory string) (string, bool, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, s.ioError(err, "failed to open environment cache")
	}
	defer func() { _ = f.Close() }()

	var (
		envPath string
		found   bool
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if candidate, ok := domain.MatchCacheLine(scanner.Text(), directory); ok {
			envPath, found = candidate, true
		}
	}
	if err := scanner.Err(); err != nil {
		return "", false, s.ioError(err, "failed to read environment cache")
	}

	return envPath, found, nil
}

// Append adds a record for directory at the end of the cache file.
func (s *Store) Append(directory, envPath string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return s.ioError(err, "failed to create cache directory")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return s.ioError(err, "failed to open environment cache for writing")
	}

	entry := domain.CacheEntry{Directory: directory, EnvironmentPath: envPath}
	if _, err := f.WriteString(entry.Line() + "\n"); err != nil {
		_ = f.Close()
		return s.ioError(err, "failed to write environment cache")
	}

	if err := f.Close(); err != nil {
		return s.ioError(err, "failed to close environment cache")
	}
	return nil
}

func (s *Store) ioError(cause error, msg string) error {
	err := zerr.Wrap(domain.ErrCacheIO, msg+": "+cause.Error())
	return zerr.With(err, "path", s.path)
}

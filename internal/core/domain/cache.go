package domain

import "strings"

// CacheEntry maps a project directory to the virtual environment resolved for it.
type CacheEntry struct {
	Directory       string
	EnvironmentPath string
}

// Line renders the entry in the cache file format: "<directory> <environment-path>".
func (e CacheEntry) Line() string {
	return e.Directory + " " + e.EnvironmentPath
}

// MatchCacheLine reports the environment path stored in line for directory.
// A line matches when it starts with the directory followed by a single space
// and carries a non-empty remainder.
func MatchCacheLine(line, directory string) (string, bool) {
	rest, ok := strings.CutPrefix(line, directory+" ")
	if !ok {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", false
	}
	return rest, true
}

package ports

// EnvCache defines the persisted mapping from project directories to environment paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type EnvCache interface {
	// Load returns the most recently recorded environment path for directory.
	// found is false when nothing was recorded; a missing store is not an error.
	Load(directory string) (envPath string, found bool, err error)

	// Append records a new mapping. Existing records are never rewritten.
	Append(directory, envPath string) error
}

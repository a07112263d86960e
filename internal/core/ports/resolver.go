package ports

import "context"

// EnvResolver maps a project directory to its virtual environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type EnvResolver interface {
	// Resolve returns a usable environment path for directory, never an empty one.
	Resolve(ctx context.Context, directory string) (string, error)
}

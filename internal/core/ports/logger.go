// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging.
// Debug traces resolution steps; Error reports a fatal error with its metadata.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Error(err error)
}

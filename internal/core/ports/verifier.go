package ports

// EnvVerifier decides whether a recorded environment can still be used.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type EnvVerifier interface {
	// IsLive reports whether the environment at envPath contains an executable interpreter.
	IsLive(envPath string) bool
}

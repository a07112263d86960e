package ports

import (
	"context"

	"go.trai.ch/mk/internal/core/domain"
)

// Prober runs external environment discovery tools.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type Prober interface {
	// Probe runs tool in dir and returns the environment path it reports.
	// Failures are returned as *domain.ToolError.
	Probe(ctx context.Context, dir string, tool domain.ProbeTool) (string, error)
}

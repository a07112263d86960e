package venv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/internal/core/ports"
)

// ProberNodeID is the unique identifier for the discovery tool prober Graft node.
const ProberNodeID graft.ID = "adapter.venv.prober"

func init() {
	graft.Register(graft.Node[ports.Prober]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Prober, error) {
			return NewProber(), nil
		},
	})
}

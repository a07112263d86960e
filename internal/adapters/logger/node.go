package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/internal/adapters/config"
	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			level, err := ParseLevel(settings.LogLevel)
			if err != nil {
				return nil, err
			}
			return NewWithWriter(os.Stderr, level), nil
		},
	})
}

package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/internal/adapters/cache"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/venv"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.EnvResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			fs.VerifierNodeID,
			venv.ProberNodeID,
			config.SettingsNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.EnvResolver, error) {
			store, err := graft.Dep[ports.EnvCache](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.EnvVerifier](ctx)
			if err != nil {
				return nil, err
			}

			prober, err := graft.Dep[ports.Prober](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(store, verifier, prober, settings.Tools, log), nil
		},
	})
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}

// NewApp resolves the dependency graph and returns the configured Components.
// Nodes are registered by importing the wiring package.
func NewApp(ctx context.Context, opts ...graft.Option) (*Components, error) {
	components, _, err := graft.ExecuteFor[*Components](ctx, opts...)
	if err != nil {
		return nil, err
	}
	return components, nil
}

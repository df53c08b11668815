package app

import (
	"go.trai.ch/pkgraph/internal/adapters/progress" //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgraph/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Progress *progress.Recorder
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, prog *progress.Recorder) *Components {
	return &Components{
		App:      app,
		Logger:   logger,
		Progress: prog,
	}
}

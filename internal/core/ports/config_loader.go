package ports

import "go.trai.ch/pkgraph/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration file starting at cwd and walking up.
	Load(cwd string) (*domain.Workspace, error)
}

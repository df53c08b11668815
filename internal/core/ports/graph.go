package ports

import "go.trai.ch/pkgraph/internal/core/domain"

// Graph is the read side of a loaded package graph.
//
// The unfiltered accessors return the graph's own collections and must be treated as
// read-only. The ByName variants return fresh slices.
//
//go:generate mockgen -source=graph.go -destination=mocks/mock_graph.go -package=mocks
type Graph interface {
	Packages() []*domain.Package
	Provides() []*domain.Provides
	Requires() []*domain.Depends
	Upgrades() []*domain.Depends
	Conflicts() []*domain.Depends

	PackagesByName(name string) []*domain.Package
	ProvidesByName(name string) []*domain.Provides
	RequiresByName(name string) []*domain.Depends
	UpgradesByName(name string) []*domain.Depends
	ConflictsByName(name string) []*domain.Depends

	Package(id domain.PackageID) (*domain.Package, error)
	Provide(id domain.ProvidesID) (*domain.Provides, error)
	Depend(id domain.DependsID) (*domain.Depends, error)

	Stats() domain.Stats
}

// GraphHasher computes a stable fingerprint of a loaded graph.
type GraphHasher interface {
	Fingerprint(g Graph) (string, error)
}

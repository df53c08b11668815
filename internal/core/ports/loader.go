// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/google/uuid"
	"go.trai.ch/pkgraph/internal/core/domain"
)

// Builder is the construction protocol a graph hands to a loader during one load cycle.
// It is only valid until the loader's Load or LoadFileProvides call returns.
//
//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type Builder interface {
	// BuildPackage returns the package for pkg, reusing an existing instance when another
	// loader already built one with the same descriptor and relation records.
	BuildPackage(pkg domain.PackageDescriptor, rel domain.Relations) (*domain.Package, error)

	// BuildFileProvides attaches a file capability to pkg. Requires of pkg on the same
	// file name are dropped as already satisfied.
	BuildFileProvides(pkg *domain.Package, prv domain.ProvidesDescriptor) error

	// Progress returns the sink loaders report their steps to.
	Progress() Progress
}

// Loader is a source of package metadata driven by a graph.
type Loader interface {
	domain.Source

	// Reset forgets every package the loader built.
	Reset()
	// Unload releases loader resources. Loaders without external resources just Reset.
	Unload()
	// LoadSteps is the number of progress steps Load will report. It is advisory.
	LoadSteps() int
	// Load parses the loader's source and builds its packages through b.
	Load(ctx context.Context, b Builder) error
	// LoadFileProvides registers file capabilities, restricted to the given file names.
	LoadFileProvides(ctx context.Context, b Builder, names map[string]struct{}) error

	// Packages returns the packages built by the loader in the current cycle.
	Packages() []*domain.Package
	// AppendPackage records pkg as built by the loader.
	AppendPackage(pkg *domain.Package)
	// Info returns descriptive metadata the loader keeps about pkg, or nil.
	Info(pkg *domain.Package) map[string]string

	// Owner returns the ID of the graph the loader is attached to, or uuid.Nil.
	Owner() uuid.UUID
	// SetOwner attaches the loader to a graph. uuid.Nil detaches it.
	SetOwner(owner uuid.UUID)
}

// LoaderFactory creates the loader serving a configured channel.
type LoaderFactory interface {
	NewLoader(root string, ch domain.ChannelConfig) (Loader, error)
}

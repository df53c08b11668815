// Package loader provides building blocks for ports.Loader implementations.
package loader

import (
	"context"

	"github.com/google/uuid"
	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/pkgraph/internal/core/ports"
)

// Base implements the bookkeeping half of ports.Loader. Embedders supply Load and, when they
// ship file lists, LoadFileProvides.
//
// Unload calls Base.Reset; embedders overriding Reset must override Unload as well.
type Base struct {
	id        string
	channel   domain.Channel
	installed bool
	owner     uuid.UUID
	packages  []*domain.Package
}

// NewBase creates a Base for the source id reading from ch.
func NewBase(id string, ch domain.Channel, installed bool) Base {
	return Base{id: id, channel: ch, installed: installed}
}

// SourceID returns the loader identity.
func (b *Base) SourceID() string { return b.id }

// Channel returns the channel the loader reads from.
func (b *Base) Channel() domain.Channel { return b.channel }

// Installed reports whether the loader describes installed packages.
func (b *Base) Installed() bool { return b.installed }

// SetInstalled changes the installed flag applied to packages built from now on.
func (b *Base) SetInstalled(installed bool) { b.installed = installed }

// Reset forgets the built packages.
func (b *Base) Reset() { b.packages = nil }

// Unload is Reset.
func (b *Base) Unload() { b.Reset() }

// LoadSteps reports no progress steps.
func (b *Base) LoadSteps() int { return 0 }

// LoadFileProvides resolves no file capabilities.
func (b *Base) LoadFileProvides(context.Context, ports.Builder, map[string]struct{}) error {
	return nil
}

// Packages returns the packages built in the current cycle.
func (b *Base) Packages() []*domain.Package { return b.packages }

// AppendPackage records pkg as built by the loader.
func (b *Base) AppendPackage(pkg *domain.Package) { b.packages = append(b.packages, pkg) }

// Info returns nil.
func (b *Base) Info(*domain.Package) map[string]string { return nil }

// Owner returns the ID of the graph the loader is attached to.
func (b *Base) Owner() uuid.UUID { return b.owner }

// SetOwner attaches the loader to a graph.
func (b *Base) SetOwner(owner uuid.UUID) { b.owner = owner }

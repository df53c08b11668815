package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// PackageID references a Package stored in an Arena.
type PackageID struct {
	slot uint32
	gen  uint32
}

// Valid reports whether the ID was issued by an arena.
func (id PackageID) Valid() bool { return id.gen != 0 }

func (id PackageID) String() string { return fmt.Sprintf("pkg#%d.%d", id.slot, id.gen) }

// ProvidesID references a Provides record stored in an Arena.
type ProvidesID struct {
	slot uint32
	gen  uint32
}

// Valid reports whether the ID was issued by an arena.
func (id ProvidesID) Valid() bool { return id.gen != 0 }

func (id ProvidesID) String() string { return fmt.Sprintf("prv#%d.%d", id.slot, id.gen) }

// DependsID references a Depends record stored in an Arena.
type DependsID struct {
	slot uint32
	gen  uint32
}

// Valid reports whether the ID was issued by an arena.
func (id DependsID) Valid() bool { return id.gen != 0 }

func (id DependsID) String() string { return fmt.Sprintf("dep#%d.%d", id.slot, id.gen) }

// Arena stores every record of one graph. Records are addressed by generation-checked IDs;
// Reset starts a new generation so that IDs handed out before it no longer resolve.
type Arena struct {
	gen      uint32
	packages []*Package
	provides []*Provides
	depends  []*Depends
}

// NewArena creates an empty arena at its first generation.
func NewArena() *Arena {
	return &Arena{gen: 1}
}

// Generation returns the current generation.
func (a *Arena) Generation() uint32 {
	return a.gen
}

// AddPackage stores p and assigns its ID.
func (a *Arena) AddPackage(p *Package) PackageID {
	//nolint:gosec // slot count is bounded by memory long before uint32
	id := PackageID{slot: uint32(len(a.packages)), gen: a.gen}
	p.id = id
	a.packages = append(a.packages, p)
	return id
}

// AddProvides stores p and assigns its ID.
func (a *Arena) AddProvides(p *Provides) ProvidesID {
	//nolint:gosec // slot count is bounded by memory long before uint32
	id := ProvidesID{slot: uint32(len(a.provides)), gen: a.gen}
	p.id = id
	a.provides = append(a.provides, p)
	return id
}

// AddDepends stores d and assigns its ID.
func (a *Arena) AddDepends(d *Depends) DependsID {
	//nolint:gosec // slot count is bounded by memory long before uint32
	id := DependsID{slot: uint32(len(a.depends)), gen: a.gen}
	d.id = id
	a.depends = append(a.depends, d)
	return id
}

// Package resolves id.
func (a *Arena) Package(id PackageID) (*Package, error) {
	if err := a.check(id.slot, id.gen, len(a.packages)); err != nil {
		return nil, zerr.With(err, "id", id.String())
	}
	return a.packages[id.slot], nil
}

// Provides resolves id.
func (a *Arena) Provides(id ProvidesID) (*Provides, error) {
	if err := a.check(id.slot, id.gen, len(a.provides)); err != nil {
		return nil, zerr.With(err, "id", id.String())
	}
	return a.provides[id.slot], nil
}

// Depends resolves id.
func (a *Arena) Depends(id DependsID) (*Depends, error) {
	if err := a.check(id.slot, id.gen, len(a.depends)); err != nil {
		return nil, zerr.With(err, "id", id.String())
	}
	return a.depends[id.slot], nil
}

// MustPackage resolves an ID that the caller obtained from this arena in the current generation.
func (a *Arena) MustPackage(id PackageID) *Package {
	p, err := a.Package(id)
	if err != nil {
		panic(err)
	}
	return p
}

// MustProvides resolves an ID that the caller obtained from this arena in the current generation.
func (a *Arena) MustProvides(id ProvidesID) *Provides {
	p, err := a.Provides(id)
	if err != nil {
		panic(err)
	}
	return p
}

// MustDepends resolves an ID that the caller obtained from this arena in the current generation.
func (a *Arena) MustDepends(id DependsID) *Depends {
	d, err := a.Depends(id)
	if err != nil {
		panic(err)
	}
	return d
}

// Owns reports whether p is the record stored under its own ID.
func (a *Arena) Owns(p *Package) bool {
	if p == nil {
		return false
	}
	stored, err := a.Package(p.id)
	return err == nil && stored == p
}

// Len returns the number of stored packages, provides and depends records.
func (a *Arena) Len() (packages, provides, depends int) {
	return len(a.packages), len(a.provides), len(a.depends)
}

// Reset drops every record and advances the generation.
func (a *Arena) Reset() {
	clear(a.packages)
	clear(a.provides)
	clear(a.depends)
	a.packages = a.packages[:0]
	a.provides = a.provides[:0]
	a.depends = a.depends[:0]
	a.gen++
	if a.gen == 0 {
		a.gen = 1
	}
}

func (a *Arena) check(slot, gen uint32, n int) error {
	switch {
	case gen == 0:
		return zerr.Wrap(ErrUnknownReference, "zero ID")
	case gen != a.gen:
		return zerr.Wrap(ErrStaleReference, "ID belongs to another load cycle")
	case int(slot) >= n:
		return zerr.Wrap(ErrUnknownReference, "slot out of range")
	}
	return nil
}

package cache

import "go.trai.ch/pkgraph/internal/core/domain"

// Packages returns every package in the graph. The slice is owned by the cache.
func (c *Cache) Packages() []*domain.Package { return c.packages }

// Provides returns every capability in the graph. The slice is owned by the cache.
func (c *Cache) Provides() []*domain.Provides { return c.provides }

// Requires returns every requires constraint. The slice is owned by the cache.
func (c *Cache) Requires() []*domain.Depends { return c.requires }

// Upgrades returns every upgrades constraint. The slice is owned by the cache.
func (c *Cache) Upgrades() []*domain.Depends { return c.upgrades }

// Conflicts returns every conflicts constraint. The slice is owned by the cache.
func (c *Cache) Conflicts() []*domain.Depends { return c.conflicts }

// PackagesByName returns the packages named name.
func (c *Cache) PackagesByName(name string) []*domain.Package {
	var out []*domain.Package
	for _, p := range c.packages {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out
}

// ProvidesByName returns the capabilities named name.
func (c *Cache) ProvidesByName(name string) []*domain.Provides {
	var out []*domain.Provides
	for _, p := range c.provides {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out
}

// RequiresByName returns the requires constraints named name.
func (c *Cache) RequiresByName(name string) []*domain.Depends {
	return dependsByName(c.requires, name)
}

// UpgradesByName returns the upgrades constraints named name.
func (c *Cache) UpgradesByName(name string) []*domain.Depends {
	return dependsByName(c.upgrades, name)
}

// ConflictsByName returns the conflicts constraints named name.
func (c *Cache) ConflictsByName(name string) []*domain.Depends {
	return dependsByName(c.conflicts, name)
}

// Package resolves a package ID issued in the current load cycle.
func (c *Cache) Package(id domain.PackageID) (*domain.Package, error) {
	return c.arena.Package(id)
}

// Provide resolves a capability ID issued in the current load cycle.
func (c *Cache) Provide(id domain.ProvidesID) (*domain.Provides, error) {
	return c.arena.Provides(id)
}

// Depend resolves a constraint ID issued in the current load cycle.
func (c *Cache) Depend(id domain.DependsID) (*domain.Depends, error) {
	return c.arena.Depends(id)
}

func dependsByName(deps []*domain.Depends, name string) []*domain.Depends {
	var out []*domain.Depends
	for _, d := range deps {
		if d.Name == name {
			out = append(out, d)
		}
	}
	return out
}

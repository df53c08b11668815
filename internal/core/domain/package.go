package domain

import (
	"slices"
	"strings"
)

// Package is a named, versioned unit offered by one or more loaders.
//
// Relation lists hold IDs into the graph's arena and are shared with the graph-level
// collections. Identity is the (Name, Version) pair, but two packages are only Equal when
// their relation lists reference the same records.
type Package struct {
	id      PackageID
	backend Backend

	Name    string
	Version string

	Provides  []ProvidesID
	Requires  []DependsID
	Upgrades  []DependsID
	Conflicts []DependsID

	Installed    bool
	Essential    bool
	PriorityBias int

	loaders []Source
}

// NewPackage creates a detached package record. A nil backend selects BaseBackend.
func NewPackage(desc PackageDescriptor, backend Backend) *Package {
	if backend == nil {
		backend = BaseBackend{}
	}
	return &Package{backend: backend, Name: desc.Name, Version: desc.Version}
}

// ID returns the arena ID, or the zero ID if the package was never stored.
func (p *Package) ID() PackageID { return p.id }

// Format returns the package format tag.
func (p *Package) Format() string { return p.backend.Format() }

// Descriptor returns the structural key the package was built from.
func (p *Package) Descriptor() PackageDescriptor {
	return PackageDescriptor{Format: p.Format(), Name: p.Name, Version: p.Version}
}

// Loaders returns the sources that contributed this package.
func (p *Package) Loaders() []Source { return p.loaders }

// AddLoader records s as a contributor. It returns false if s was already recorded.
func (p *Package) AddLoader(s Source) bool {
	for _, l := range p.loaders {
		if l.SourceID() == s.SourceID() {
			return false
		}
	}
	p.loaders = append(p.loaders, s)
	return true
}

// HasLoader reports whether the source with the given ID contributed the package.
func (p *Package) HasLoader(id string) bool {
	return slices.ContainsFunc(p.loaders, func(s Source) bool { return s.SourceID() == id })
}

// ResetLoaders forgets every contributing source.
func (p *Package) ResetLoaders() { p.loaders = nil }

// String renders the package as "name-version".
func (p *Package) String() string { return p.Name + "-" + p.Version }

// Compare orders packages by the raw bytes of name, then version.
func (p *Package) Compare(other *Package) int {
	if c := strings.Compare(p.Name, other.Name); c != 0 {
		return c
	}
	return strings.Compare(p.Version, other.Version)
}

// Equal reports whether both packages share name, version, format and exactly the same
// relation records, irrespective of order.
func (p *Package) Equal(other *Package) bool {
	if p == other {
		return true
	}
	if other == nil || p.Name != other.Name || p.Version != other.Version || p.Format() != other.Format() {
		return false
	}
	return sameSet(p.Provides, other.Provides) &&
		sameSet(p.Requires, other.Requires) &&
		sameSet(p.Upgrades, other.Upgrades) &&
		sameSet(p.Conflicts, other.Conflicts)
}

// Coexists reports whether p may be installed next to other. Packages of the same name only
// coexist when their versions differ.
func (p *Package) Coexists(other *Package) bool {
	return p.Version != other.Version
}

// Matches reports whether the package satisfies relation and version under its format.
func (p *Package) Matches(relation, version string) bool {
	return p.backend.MatchesPackage(p, relation, version)
}

// AvailableElsewhere reports whether some contributing source is not an installed-system source,
// meaning the package could be fetched again.
func (p *Package) AvailableElsewhere() bool {
	return slices.ContainsFunc(p.loaders, func(s Source) bool { return !s.Installed() })
}

// Priority returns the configured priority for the package. Without a policy entry it is the
// highest priority among the channels of its loaders plus the package bias.
func (p *Package) Priority(policy PriorityPolicy) int {
	if policy != nil {
		if prio, ok := policy.PackagePriority(p); ok {
			return prio
		}
	}

	best, found := 0, false
	for _, l := range p.loaders {
		ch := l.Channel()
		if ch == nil {
			continue
		}
		if prio := ch.Priority(); !found || prio > best {
			best, found = prio, true
		}
	}
	return best + p.PriorityBias
}

func sameSet[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !slices.Contains(b, v) {
			return false
		}
	}
	for _, v := range b {
		if !slices.Contains(a, v) {
			return false
		}
	}
	return true
}

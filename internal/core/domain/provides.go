package domain

import "strings"

// Provides is a capability offered by one or more packages.
type Provides struct {
	id      ProvidesID
	backend Backend

	Name    string
	Version string

	// Packages lists the packages offering the capability.
	Packages []PackageID

	RequiredBy   Relation[DependsID]
	UpgradedBy   Relation[DependsID]
	ConflictedBy Relation[DependsID]
}

// NewProvides creates a detached capability record. A nil backend selects BaseBackend.
func NewProvides(desc ProvidesDescriptor, backend Backend) *Provides {
	if backend == nil {
		backend = BaseBackend{}
	}
	return &Provides{backend: backend, Name: desc.Name, Version: desc.Version}
}

// ID returns the arena ID.
func (p *Provides) ID() ProvidesID { return p.id }

// Format returns the format tag.
func (p *Provides) Format() string { return p.backend.Format() }

// Descriptor returns the structural key the capability was built from.
func (p *Provides) Descriptor() ProvidesDescriptor {
	return ProvidesDescriptor{Format: p.Format(), Name: p.Name, Version: p.Version}
}

// By returns the relation joining p to constraints of kind k.
func (p *Provides) By(k Kind) *Relation[DependsID] {
	switch k {
	case KindUpgrades:
		return &p.UpgradedBy
	case KindConflicts:
		return &p.ConflictedBy
	default:
		return &p.RequiredBy
	}
}

// Reset drops package back references and empties linked relations.
func (p *Provides) Reset() {
	p.Packages = p.Packages[:0]
	p.RequiredBy.Clear()
	p.UpgradedBy.Clear()
	p.ConflictedBy.Clear()
}

// Compare orders capabilities by name, version bytes and format tag.
func (p *Provides) Compare(other *Provides) int {
	if c := strings.Compare(p.Name, other.Name); c != 0 {
		return c
	}
	if c := strings.Compare(p.Version, other.Version); c != 0 {
		return c
	}
	return strings.Compare(p.Format(), other.Format())
}

// String renders the capability as "name" or "name = version".
func (p *Provides) String() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + " = " + p.Version
}

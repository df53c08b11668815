package domain

import "strings"

// Kind distinguishes the three constraint variants.
type Kind uint8

const (
	// KindRequires is a dependency that must be satisfied.
	KindRequires Kind = iota
	// KindUpgrades marks packages the declaring package supersedes.
	KindUpgrades
	// KindConflicts marks packages that cannot be installed alongside.
	KindConflicts
)

// Kinds lists every constraint kind in declaration order.
var Kinds = [...]Kind{KindRequires, KindUpgrades, KindConflicts}

func (k Kind) String() string {
	switch k {
	case KindRequires:
		return "requires"
	case KindUpgrades:
		return "upgrades"
	case KindConflicts:
		return "conflicts"
	default:
		return "unknown"
	}
}

// Depends is a constraint declared by packages against capabilities.
type Depends struct {
	id      DependsID
	backend Backend

	Kind     Kind
	Name     string
	Relation string
	Version  string

	// Packages lists the packages declaring the constraint.
	Packages []PackageID

	ProvidedBy Relation[ProvidesID]
}

// NewDepends creates a detached constraint record. A nil backend selects BaseBackend.
func NewDepends(kind Kind, desc DependsDescriptor, backend Backend) *Depends {
	if backend == nil {
		backend = BaseBackend{}
	}
	return &Depends{
		backend:  backend,
		Kind:     kind,
		Name:     desc.Name,
		Relation: desc.Relation,
		Version:  desc.Version,
	}
}

// ID returns the arena ID.
func (d *Depends) ID() DependsID { return d.id }

// Format returns the format tag.
func (d *Depends) Format() string { return d.backend.Format() }

// Descriptor returns the structural key the constraint was built from.
func (d *Depends) Descriptor() DependsDescriptor {
	return DependsDescriptor{Format: d.Format(), Name: d.Name, Relation: d.Relation, Version: d.Version}
}

// MatchNames returns the capability names the constraint may be satisfied by.
func (d *Depends) MatchNames() []string { return d.backend.MatchNames(d) }

// Matches reports whether p satisfies the constraint.
func (d *Depends) Matches(p *Provides) bool { return d.backend.Matches(d, p) }

// IsFileName reports whether the constraint names a file path.
func (d *Depends) IsFileName() bool { return strings.HasPrefix(d.Name, "/") }

// Reset drops package back references and empties the linked relation.
func (d *Depends) Reset() {
	d.Packages = d.Packages[:0]
	d.ProvidedBy.Clear()
}

// Compare orders constraints by name, then kind and format tag. Versions do not take part.
func (d *Depends) Compare(other *Depends) int {
	if c := strings.Compare(d.Name, other.Name); c != 0 {
		return c
	}
	if d.Kind != other.Kind {
		if d.Kind < other.Kind {
			return -1
		}
		return 1
	}
	return strings.Compare(d.Format(), other.Format())
}

// String renders the constraint as "name" or "name relation version".
func (d *Depends) String() string {
	if d.Relation == "" {
		return d.Name
	}
	return d.Name + " " + d.Relation + " " + d.Version
}

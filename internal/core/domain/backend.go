package domain

// Backend supplies the format-specific behaviour of records built for one package format.
// The graph never interprets versions itself; every relation question is delegated here.
type Backend interface {
	// Format is the tag carried by every record the backend is attached to.
	Format() string
	// MatchNames returns the capability names d may be satisfied by.
	MatchNames(d *Depends) []string
	// Matches reports whether p satisfies d.
	Matches(d *Depends, p *Provides) bool
	// MatchesPackage reports whether pkg satisfies the relation and version.
	MatchesPackage(pkg *Package, relation, version string) bool
}

// BaseBackend is the backend of the empty format. Constraints match nothing and only
// ever name themselves.
type BaseBackend struct{}

var _ Backend = BaseBackend{}

// Format returns the empty format tag.
func (BaseBackend) Format() string { return "" }

// MatchNames returns the constraint's own name.
func (BaseBackend) MatchNames(d *Depends) []string { return []string{d.Name} }

// Matches always reports false.
func (BaseBackend) Matches(*Depends, *Provides) bool { return false }

// MatchesPackage always reports false.
func (BaseBackend) MatchesPackage(*Package, string, string) bool { return false }

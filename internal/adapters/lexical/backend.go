// Package lexical implements a package format whose versions are ordered byte-wise.
package lexical

import (
	"strings"

	"go.trai.ch/pkgraph/internal/core/domain"
)

// Format is the format tag of the lexical backend.
const Format = "lexical"

// Backend resolves constraints by comparing version strings in byte order.
type Backend struct{}

var _ domain.Backend = Backend{}

// Format returns "lexical".
func (Backend) Format() string { return Format }

// MatchNames returns the constraint's own name.
func (Backend) MatchNames(d *domain.Depends) []string {
	return []string{d.Name}
}

// Matches reports whether p satisfies d. A constraint without relation accepts any
// version; a versioned one needs a versioned capability.
func (Backend) Matches(d *domain.Depends, p *domain.Provides) bool {
	if d.Name != p.Name {
		return false
	}
	if d.Relation == "" {
		return true
	}
	if p.Version == "" {
		return false
	}
	return Satisfies(p.Version, d.Relation, d.Version)
}

// MatchesPackage reports whether the version of pkg satisfies relation and version.
func (Backend) MatchesPackage(pkg *domain.Package, relation, version string) bool {
	if relation == "" {
		return true
	}
	return Satisfies(pkg.Version, relation, version)
}

// ValidRelation reports whether relation is understood by the backend. The empty relation
// is valid and matches any version.
func ValidRelation(relation string) bool {
	switch relation {
	case "", "=", "==", "!=", "<", "<=", ">", ">=":
		return true
	default:
		return false
	}
}

// Satisfies evaluates "have relation want". Unknown relations never match.
func Satisfies(have, relation, want string) bool {
	c := strings.Compare(have, want)
	switch relation {
	case "=", "==":
		return c == 0
	case "!=":
		return c != 0
	case "<":
		return c < 0
	case "<=":
		return c <= 0
	case ">":
		return c > 0
	case ">=":
		return c >= 0
	default:
		return false
	}
}

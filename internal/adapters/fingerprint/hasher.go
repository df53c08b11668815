// Package fingerprint computes stable digests of loaded package graphs.
package fingerprint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/pkgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GraphHasher = (*Hasher)(nil)

// Hasher digests the structural contents of a graph. Two graphs built from the same
// manifests hash equal regardless of loader order.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint returns the XXHash of g as 16 hex digits.
func (h *Hasher) Fingerprint(g ports.Graph) (string, error) {
	pkgs := g.Packages()
	keys := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		key, err := h.packageKey(g, pkg)
		if err != nil {
			return "", err
		}
		keys = append(keys, key)
	}
	// Same-named packages that did not converge differ only in their relations.
	slices.Sort(keys)

	hasher := xxhash.New()
	for _, key := range keys {
		_, _ = hasher.WriteString(key)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// packageKey encodes pkg and its sorted relations into one comparable string.
func (h *Hasher) packageKey(g ports.Graph, pkg *domain.Package) (string, error) {
	var sb strings.Builder
	sb.WriteString(pkg.Format())
	sb.WriteByte(0)
	sb.WriteString(pkg.String())
	sb.WriteByte(0)
	flags := byte('0')
	if pkg.Installed {
		flags |= 1
	}
	if pkg.Essential {
		flags |= 2
	}
	sb.WriteByte(flags)
	sb.WriteByte(0)

	names := make([]string, 0, len(pkg.Provides))
	for _, id := range pkg.Provides {
		prv, err := g.Provide(id)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "resolve provides"), "package", pkg.String())
		}
		names = append(names, prv.Format()+"\x01"+prv.String())
	}
	writeSection(&sb, names)

	for _, ids := range [][]domain.DependsID{pkg.Requires, pkg.Upgrades, pkg.Conflicts} {
		names = names[:0]
		for _, id := range ids {
			dep, err := g.Depend(id)
			if err != nil {
				return "", zerr.With(zerr.Wrap(err, "resolve depends"), "package", pkg.String())
			}
			names = append(names, dep.Format()+"\x01"+dep.String())
		}
		writeSection(&sb, names)
	}
	return sb.String(), nil
}

// writeSection appends names in sorted order followed by a section separator.
func writeSection(sb *strings.Builder, names []string) {
	slices.Sort(names)
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteByte(0x02)
	}
	sb.WriteByte(0x03)
}

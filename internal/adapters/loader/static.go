package loader

import (
	"context"

	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/pkgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Loader = (*Static)(nil)

// Entry describes one package a Static loader builds.
type Entry struct {
	Package   domain.PackageDescriptor
	Relations domain.Relations
	// Files lists the paths the package ships. They become file capabilities on demand.
	Files        []string
	Essential    bool
	PriorityBias int
	Info         map[string]string
}

// Static is a loader serving a fixed list of entries.
type Static struct {
	Base
	entries []Entry
	built   map[*domain.Package]*Entry
}

// NewStatic creates a loader building entries in order.
func NewStatic(id string, ch domain.Channel, installed bool, entries ...Entry) *Static {
	return &Static{
		Base:    NewBase(id, ch, installed),
		entries: entries,
	}
}

// SetEntries replaces the entries built by the next Load.
func (s *Static) SetEntries(entries []Entry) {
	s.entries = entries
}

// Entries returns the configured entries.
func (s *Static) Entries() []Entry {
	return s.entries
}

// Reset forgets the built packages.
func (s *Static) Reset() {
	s.Base.Reset()
	s.built = nil
}

// Unload is Reset.
func (s *Static) Unload() { s.Reset() }

// LoadSteps reports one step for the whole entry list.
func (s *Static) LoadSteps() int { return 1 }

// Load builds every entry.
func (s *Static) Load(ctx context.Context, b ports.Builder) error {
	s.built = make(map[*domain.Package]*Entry, len(s.entries))
	for i := range s.entries {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "load interrupted")
		}
		e := &s.entries[i]
		pkg, err := b.BuildPackage(e.Package, e.Relations)
		if err != nil {
			return zerr.With(err, "entry", i)
		}
		pkg.Essential = pkg.Essential || e.Essential
		if e.PriorityBias != 0 {
			pkg.PriorityBias = e.PriorityBias
		}
		s.built[pkg] = e
	}

	prog := b.Progress()
	prog.Add(1)
	prog.Show()
	return nil
}

// LoadFileProvides attaches the shipped files named in names.
func (s *Static) LoadFileProvides(_ context.Context, b ports.Builder, names map[string]struct{}) error {
	if len(names) == 0 {
		return nil
	}
	for _, pkg := range s.Packages() {
		e, ok := s.built[pkg]
		if !ok {
			continue
		}
		for _, file := range e.Files {
			if _, wanted := names[file]; !wanted {
				continue
			}
			prv := domain.ProvidesDescriptor{Format: e.Package.Format, Name: file}
			if err := b.BuildFileProvides(pkg, prv); err != nil {
				return zerr.With(err, "file", file)
			}
		}
	}
	return nil
}

// Info returns the metadata of the entry pkg was built from.
func (s *Static) Info(pkg *domain.Package) map[string]string {
	if e, ok := s.built[pkg]; ok {
		return e.Info
	}
	return nil
}

package cache

import (
	"slices"

	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/pkgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

type dependsKey struct {
	kind domain.Kind
	desc domain.DependsDescriptor
}

// session is the memo table of one load cycle. It maps construction descriptors to the
// records already built for them so that every loader shares one instance per descriptor.
// Load closes it before linking; builders holding it fail from then on.
type session struct {
	closed   bool
	provides map[domain.ProvidesDescriptor]domain.ProvidesID
	depends  map[dependsKey]domain.DependsID
	packages map[domain.PackageDescriptor][]domain.PackageID
}

func newSession() *session {
	return &session{
		provides: make(map[domain.ProvidesDescriptor]domain.ProvidesID),
		depends:  make(map[dependsKey]domain.DependsID),
		packages: make(map[domain.PackageDescriptor][]domain.PackageID),
	}
}

func (s *session) close() {
	s.closed = true
	s.provides = nil
	s.depends = nil
	s.packages = nil
}

// builder implements ports.Builder for one loader within one session.
type builder struct {
	cache  *Cache
	sess   *session
	loader ports.Loader
}

var _ ports.Builder = (*builder)(nil)

func (c *Cache) newBuilder(sess *session, l ports.Loader) *builder {
	return &builder{cache: c, sess: sess, loader: l}
}

func (b *builder) Progress() ports.Progress {
	return b.cache.progress
}

func (b *builder) check() error {
	if b.sess.closed {
		return zerr.With(zerr.Wrap(domain.ErrSessionClosed, "build"), "loader", b.loader.SourceID())
	}
	if b.loader.Owner() != b.cache.id {
		return zerr.With(zerr.Wrap(domain.ErrNotAttached, "build"), "loader", b.loader.SourceID())
	}
	return nil
}

// BuildPackage validates every descriptor before touching the graph, so a rejected call
// leaves no trace.
func (b *builder) BuildPackage(desc domain.PackageDescriptor, rel domain.Relations) (*domain.Package, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, zerr.With(err, "loader", b.loader.SourceID())
	}
	if err := rel.Validate(); err != nil {
		return nil, zerr.With(zerr.With(err, "package", desc.Name), "loader", b.loader.SourceID())
	}
	backend, err := b.cache.Backend(desc.Format)
	if err != nil {
		return nil, zerr.With(err, "package", desc.Name)
	}
	for _, format := range rel.Formats() {
		if _, err := b.cache.Backend(format); err != nil {
			return nil, zerr.With(err, "package", desc.Name)
		}
	}

	pkg := domain.NewPackage(desc, backend)
	var backrefs []*[]domain.PackageID

	for _, pd := range rel.Provides {
		prv, _ := b.provides(pd)
		if slices.Contains(pkg.Provides, prv.ID()) {
			continue
		}
		pkg.Provides = append(pkg.Provides, prv.ID())
		backrefs = append(backrefs, &prv.Packages)
	}

	lists := [...]struct {
		kind  domain.Kind
		descs []domain.DependsDescriptor
		ids   *[]domain.DependsID
	}{
		{domain.KindRequires, rel.Requires, &pkg.Requires},
		{domain.KindUpgrades, rel.Upgrades, &pkg.Upgrades},
		{domain.KindConflicts, rel.Conflicts, &pkg.Conflicts},
	}
	for _, list := range lists {
		for _, dd := range list.descs {
			dep := b.depends(list.kind, dd)
			if slices.Contains(*list.ids, dep.ID()) {
				continue
			}
			*list.ids = append(*list.ids, dep.ID())
			backrefs = append(backrefs, &dep.Packages)
		}
	}

	if existing := b.converge(pkg); existing != nil {
		pkg = existing
	} else {
		id := b.cache.arena.AddPackage(pkg)
		b.cache.packages = append(b.cache.packages, pkg)
		b.sess.packages[desc] = append(b.sess.packages[desc], id)
		for _, ref := range backrefs {
			*ref = append(*ref, id)
		}
	}

	pkg.AddLoader(b.loader)
	if b.loader.Installed() {
		pkg.Installed = true
	}
	b.loader.AppendPackage(pkg)
	return pkg, nil
}

// converge returns the already built package structurally equal to pkg, if any.
func (b *builder) converge(pkg *domain.Package) *domain.Package {
	for _, id := range b.sess.packages[pkg.Descriptor()] {
		candidate := b.cache.arena.MustPackage(id)
		if pkg.Equal(candidate) {
			return candidate
		}
	}
	return nil
}

// BuildFileProvides attaches the file capability described by pd to pkg.
func (b *builder) BuildFileProvides(pkg *domain.Package, pd domain.ProvidesDescriptor) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := pd.Validate(); err != nil {
		return zerr.With(err, "loader", b.loader.SourceID())
	}
	if !b.cache.arena.Owns(pkg) {
		err := zerr.With(zerr.Wrap(domain.ErrTypeMismatch, "build file provides"), "package", pkgName(pkg))
		return zerr.With(err, "loader", b.loader.SourceID())
	}
	if _, err := b.cache.Backend(pd.Format); err != nil {
		return zerr.With(err, "provides", pd.Name)
	}

	prv, created := b.provides(pd)
	if !created && slices.Contains(pkg.Provides, prv.ID()) {
		return nil
	}
	prv.Packages = append(prv.Packages, pkg.ID())
	pkg.Provides = append(pkg.Provides, prv.ID())

	pkg.Requires = slices.DeleteFunc(pkg.Requires, func(id domain.DependsID) bool {
		req := b.cache.arena.MustDepends(id)
		if !req.IsFileName() || req.Name != prv.Name {
			return false
		}
		req.Packages = slices.DeleteFunc(req.Packages, func(p domain.PackageID) bool { return p == pkg.ID() })
		if len(req.Packages) == 0 {
			b.cache.requires = slices.DeleteFunc(b.cache.requires, func(d *domain.Depends) bool { return d == req })
			delete(b.sess.depends, dependsKey{kind: req.Kind, desc: req.Descriptor()})
		}
		return true
	})
	return nil
}

// provides returns the memoized capability for pd, creating it when absent.
func (b *builder) provides(pd domain.ProvidesDescriptor) (*domain.Provides, bool) {
	if id, ok := b.sess.provides[pd]; ok {
		return b.cache.arena.MustProvides(id), false
	}
	prv := domain.NewProvides(pd, b.cache.backends[pd.Format])
	b.sess.provides[pd] = b.cache.arena.AddProvides(prv)
	b.cache.provides = append(b.cache.provides, prv)
	return prv, true
}

// depends returns the memoized constraint for (kind, dd), creating it when absent.
func (b *builder) depends(kind domain.Kind, dd domain.DependsDescriptor) *domain.Depends {
	key := dependsKey{kind: kind, desc: dd}
	if id, ok := b.sess.depends[key]; ok {
		return b.cache.arena.MustDepends(id)
	}
	dep := domain.NewDepends(kind, dd, b.cache.backends[dd.Format])
	b.sess.depends[key] = b.cache.arena.AddDepends(dep)
	switch kind {
	case domain.KindUpgrades:
		b.cache.upgrades = append(b.cache.upgrades, dep)
	case domain.KindConflicts:
		b.cache.conflicts = append(b.cache.conflicts, dep)
	default:
		b.cache.requires = append(b.cache.requires, dep)
	}
	return dep
}

func pkgName(pkg *domain.Package) string {
	if pkg == nil {
		return "<nil>"
	}
	return pkg.String()
}

package app

import (
	"io"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// QueryOptions selects the packages printed by Query and the sections shown for each.
type QueryOptions struct {
	// Names selects packages by name. Glob patterns are matched against every package name.
	// An empty list selects every package.
	Names []string

	Provides  bool
	Requires  bool
	Upgrades  bool
	Conflicts bool
	// Satisfies lists the providing packages under each shown constraint.
	Satisfies bool

	// The Who filters keep only packages offering or declaring the named records. Each entry
	// is "name" or "name=version"; name may be a glob pattern.
	WhoProvides  []string
	WhoRequires  []string
	WhoUpgrades  []string
	WhoConflicts []string
}

// filter is one expanded Who entry.
type filter struct {
	name    string
	version string
}

type queryFilters struct {
	provides  []filter
	requires  []filter
	upgrades  []filter
	conflicts []filter
}

func (f queryFilters) empty() bool {
	return len(f.provides) == 0 && len(f.requires) == 0 && len(f.upgrades) == 0 && len(f.conflicts) == 0
}

// Query writes the selected packages of the loaded graph to w, one "name-version" line each,
// followed by the requested relation sections.
func (a *App) Query(w io.Writer, opts QueryOptions) error {
	pkgs, err := a.selectPackages(opts.Names)
	if err != nil {
		return err
	}

	filters, err := a.expandFilters(opts)
	if err != nil {
		return err
	}
	if !filters.empty() {
		if pkgs, err = a.applyFilters(pkgs, filters); err != nil {
			return err
		}
	}

	if len(pkgs) == 0 && (len(opts.Names) > 0 || !filters.empty()) {
		err := zerr.Wrap(domain.ErrNoPackagesMatched, "query")
		return zerr.With(err, "names", strings.Join(opts.Names, " "))
	}

	pkgs = uniquePackages(pkgs)
	slices.SortStableFunc(pkgs, func(x, y *domain.Package) int { return x.Compare(y) })

	var sb strings.Builder
	for _, pkg := range pkgs {
		if err := a.renderPackage(&sb, pkg, opts, filters); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return zerr.Wrap(err, "failed to write query output")
	}
	return nil
}

func (a *App) selectPackages(names []string) ([]*domain.Package, error) {
	if len(names) == 0 {
		return slices.Clone(a.cache.Packages()), nil
	}

	var pkgs []*domain.Package
	for _, name := range names {
		if !isPattern(name) {
			pkgs = append(pkgs, a.cache.PackagesByName(name)...)
			continue
		}
		if !doublestar.ValidatePattern(name) {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPattern, "select packages"), "pattern", name)
		}
		for _, pkg := range a.cache.Packages() {
			if matched, _ := doublestar.Match(name, pkg.Name); matched {
				pkgs = append(pkgs, pkg)
			}
		}
	}
	return pkgs, nil
}

func (a *App) expandFilters(opts QueryOptions) (queryFilters, error) {
	var (
		f   queryFilters
		err error
	)

	provideNames := make([]string, 0, len(a.cache.Provides()))
	for _, prv := range a.cache.Provides() {
		provideNames = append(provideNames, prv.Name)
	}
	if f.provides, err = expand(opts.WhoProvides, provideNames); err != nil {
		return f, err
	}
	if f.requires, err = expand(opts.WhoRequires, dependsNames(a.cache.Requires())); err != nil {
		return f, err
	}
	if f.upgrades, err = expand(opts.WhoUpgrades, dependsNames(a.cache.Upgrades())); err != nil {
		return f, err
	}
	if f.conflicts, err = expand(opts.WhoConflicts, dependsNames(a.cache.Conflicts())); err != nil {
		return f, err
	}
	return f, nil
}

// expand parses Who entries and resolves patterns against the candidate record names.
func expand(args, candidates []string) ([]filter, error) {
	var out []filter
	for _, arg := range args {
		name, version, _ := strings.Cut(arg, "=")
		if !isPattern(name) {
			out = append(out, filter{name: name, version: version})
			continue
		}
		if !doublestar.ValidatePattern(name) {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPattern, "expand filter"), "pattern", name)
		}
		seen := make(map[string]struct{})
		for _, candidate := range candidates {
			if _, dup := seen[candidate]; dup {
				continue
			}
			if matched, _ := doublestar.Match(name, candidate); matched {
				seen[candidate] = struct{}{}
				out = append(out, filter{name: candidate, version: version})
			}
		}
	}
	return out, nil
}

// applyFilters keeps the packages of pkgs that offer or declare a record named by filters.
func (a *App) applyFilters(pkgs []*domain.Package, filters queryFilters) ([]*domain.Package, error) {
	selected := make(map[*domain.Package]struct{}, len(pkgs))
	for _, pkg := range pkgs {
		selected[pkg] = struct{}{}
	}

	var out []*domain.Package
	keep := func(ids []domain.PackageID) error {
		for _, id := range ids {
			pkg, err := a.cache.Package(id)
			if err != nil {
				return zerr.Wrap(err, "resolve package")
			}
			if _, ok := selected[pkg]; ok {
				out = append(out, pkg)
			}
		}
		return nil
	}

	for _, f := range filters.provides {
		for _, prv := range a.cache.ProvidesByName(f.name) {
			if f.version != "" && prv.Version != f.version {
				continue
			}
			if err := keep(prv.Packages); err != nil {
				return nil, err
			}
		}
	}

	groups := []struct {
		filters []filter
		byName  func(string) []*domain.Depends
	}{
		{filters.requires, a.cache.RequiresByName},
		{filters.upgrades, a.cache.UpgradesByName},
		{filters.conflicts, a.cache.ConflictsByName},
	}
	for _, g := range groups {
		for _, f := range g.filters {
			for _, dep := range g.byName(f.name) {
				if !a.dependsMatches(dep, f) {
					continue
				}
				if err := keep(dep.Packages); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

// dependsMatches reports whether dep accepts the capability described by f.
func (a *App) dependsMatches(dep *domain.Depends, f filter) bool {
	if dep.Name != f.name {
		return false
	}
	backend, err := a.cache.Backend(dep.Format())
	if err != nil {
		return false
	}
	prv := domain.NewProvides(domain.ProvidesDescriptor{Format: dep.Format(), Name: f.name, Version: f.version}, backend)
	return dep.Matches(prv)
}

func (a *App) renderPackage(sb *strings.Builder, pkg *domain.Package, opts QueryOptions, filters queryFilters) error {
	sb.WriteString(pkg.String())
	sb.WriteByte('\n')

	if opts.Provides || len(filters.provides) > 0 {
		if err := a.renderProvides(sb, pkg, filters.provides); err != nil {
			return err
		}
	}

	sections := []struct {
		title   string
		ids     []domain.DependsID
		show    bool
		filters []filter
	}{
		{"Requires", pkg.Requires, opts.Requires, filters.requires},
		{"Upgrades", pkg.Upgrades, opts.Upgrades, filters.upgrades},
		{"Conflicts", pkg.Conflicts, opts.Conflicts, filters.conflicts},
	}
	for _, s := range sections {
		if !s.show && len(s.filters) == 0 {
			continue
		}
		if err := a.renderDepends(sb, s.title, s.ids, s.filters, opts.Satisfies); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) renderProvides(sb *strings.Builder, pkg *domain.Package, filters []filter) error {
	prvs := make([]*domain.Provides, 0, len(pkg.Provides))
	for _, id := range pkg.Provides {
		prv, err := a.cache.Provide(id)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "resolve provides"), "package", pkg.String())
		}
		if len(filters) > 0 && !slices.ContainsFunc(filters, func(f filter) bool {
			return prv.Name == f.name && (f.version == "" || prv.Version == f.version)
		}) {
			continue
		}
		prvs = append(prvs, prv)
	}
	if len(prvs) == 0 {
		return nil
	}

	slices.SortFunc(prvs, func(x, y *domain.Provides) int { return x.Compare(y) })
	sb.WriteString("  Provides:\n")
	for _, prv := range prvs {
		sb.WriteString("    " + prv.String() + "\n")
	}
	return nil
}

func (a *App) renderDepends(sb *strings.Builder, title string, ids []domain.DependsID, filters []filter, satisfies bool) error {
	deps := make([]*domain.Depends, 0, len(ids))
	for _, id := range ids {
		dep, err := a.cache.Depend(id)
		if err != nil {
			return zerr.Wrap(err, "resolve depends")
		}
		if len(filters) > 0 && !slices.ContainsFunc(filters, func(f filter) bool { return a.dependsMatches(dep, f) }) {
			continue
		}
		deps = append(deps, dep)
	}
	if len(deps) == 0 {
		return nil
	}

	slices.SortFunc(deps, func(x, y *domain.Depends) int {
		if c := x.Compare(y); c != 0 {
			return c
		}
		return strings.Compare(x.String(), y.String())
	})

	sb.WriteString("  " + title + ":\n")
	for _, dep := range deps {
		sb.WriteString("    " + dep.String() + "\n")
		if satisfies && dep.ProvidedBy.Len() > 0 {
			if err := a.renderProviders(sb, dep); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *App) renderProviders(sb *strings.Builder, dep *domain.Depends) error {
	sb.WriteString("      Provided By:\n")
	for _, id := range dep.ProvidedBy.Items() {
		prv, err := a.cache.Provide(id)
		if err != nil {
			return zerr.Wrap(err, "resolve provider")
		}
		pkgs := make([]*domain.Package, 0, len(prv.Packages))
		for _, pid := range prv.Packages {
			pkg, err := a.cache.Package(pid)
			if err != nil {
				return zerr.Wrap(err, "resolve provider package")
			}
			pkgs = append(pkgs, pkg)
		}
		pkgs = uniquePackages(pkgs)
		slices.SortStableFunc(pkgs, func(x, y *domain.Package) int { return x.Compare(y) })
		for _, pkg := range pkgs {
			sb.WriteString("        " + pkg.String() + " (" + prv.String() + ")\n")
		}
	}
	return nil
}

// uniquePackages drops repeated instances, keeping the first occurrence.
func uniquePackages(pkgs []*domain.Package) []*domain.Package {
	seen := make(map[*domain.Package]struct{}, len(pkgs))
	out := pkgs[:0]
	for _, pkg := range pkgs {
		if _, dup := seen[pkg]; dup {
			continue
		}
		seen[pkg] = struct{}{}
		out = append(out, pkg)
	}
	return out
}

func dependsNames(deps []*domain.Depends) []string {
	names := make([]string, 0, len(deps))
	for _, d := range deps {
		names = append(names, d.Name)
	}
	return names
}

func isPattern(name string) bool {
	return strings.ContainsAny(name, "*?[{")
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgraph/internal/core/domain"
)

type fakeChannel struct {
	alias    string
	priority int
}

func (c fakeChannel) Alias() string { return c.alias }
func (c fakeChannel) Priority() int { return c.priority }

type fakeSource struct {
	id        string
	channel   domain.Channel
	installed bool
}

func (s fakeSource) SourceID() string { return s.id }
func (s fakeSource) Channel() domain.Channel { return s.channel }
func (s fakeSource) Installed() bool { return s.installed }

type fixedPolicy struct {
	prio int
	ok   bool
}

func (p fixedPolicy) PackagePriority(*domain.Package) (int, bool) { return p.prio, p.ok }

func TestRelation_States(t *testing.T) {
	var r domain.Relation[int]
	assert.False(t, r.Materialized())
	assert.Equal(t, 0, r.Len())

	r.Clear()
	assert.False(t, r.Materialized(), "clearing an unmaterialized relation must not materialize it")

	r.Append(3)
	r.Append(4)
	assert.True(t, r.Materialized())
	assert.Equal(t, []int{3, 4}, r.Items())
	assert.True(t, r.Contains(4))

	r.Clear()
	assert.True(t, r.Materialized(), "clearing never reverts to unmaterialized")
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Contains(4))
}

func TestArena_StaleAfterReset(t *testing.T) {
	a := domain.NewArena()
	pkg := domain.NewPackage(domain.PackageDescriptor{Name: "foo", Version: "1.0"}, nil)
	id := a.AddPackage(pkg)

	got, err := a.Package(id)
	require.NoError(t, err)
	assert.Same(t, pkg, got)
	assert.True(t, a.Owns(pkg))

	a.Reset()

	_, err = a.Package(id)
	require.ErrorIs(t, err, domain.ErrStaleReference)
	assert.False(t, a.Owns(pkg))

	_, err = a.Package(domain.PackageID{})
	require.ErrorIs(t, err, domain.ErrUnknownReference)
}

func TestArena_UnknownSlot(t *testing.T) {
	a := domain.NewArena()
	other := domain.NewArena()
	other.AddProvides(domain.NewProvides(domain.ProvidesDescriptor{Name: "x"}, nil))
	id := other.AddProvides(domain.NewProvides(domain.ProvidesDescriptor{Name: "y"}, nil))

	_, err := a.Provides(id)
	require.ErrorIs(t, err, domain.ErrUnknownReference)
	assert.Panics(t, func() { a.MustProvides(id) })
}

func TestPackage_EqualIsStructural(t *testing.T) {
	a := domain.NewArena()
	libc := a.AddProvides(domain.NewProvides(domain.ProvidesDescriptor{Name: "libc"}, nil))
	sh := a.AddDepends(domain.NewDepends(domain.KindRequires, domain.DependsDescriptor{Name: "/bin/sh"}, nil))
	zlib := a.AddDepends(domain.NewDepends(domain.KindRequires, domain.DependsDescriptor{Name: "zlib"}, nil))

	desc := domain.PackageDescriptor{Name: "foo", Version: "1.0"}
	p1 := domain.NewPackage(desc, nil)
	p1.Provides = []domain.ProvidesID{libc}
	p1.Requires = []domain.DependsID{sh, zlib}

	p2 := domain.NewPackage(desc, nil)
	p2.Provides = []domain.ProvidesID{libc}
	p2.Requires = []domain.DependsID{zlib, sh}

	assert.NotSame(t, p1, p2)
	assert.True(t, p1.Equal(p2))
	assert.True(t, p2.Equal(p1))

	p2.Requires = []domain.DependsID{zlib}
	assert.False(t, p1.Equal(p2))

	p3 := domain.NewPackage(domain.PackageDescriptor{Name: "foo", Version: "1.1"}, nil)
	p3.Provides = p1.Provides
	p3.Requires = p1.Requires
	assert.False(t, p1.Equal(p3))
}

func TestPackage_CompareAndString(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.PackageDescriptor
		want int
	}{
		{"name wins", domain.PackageDescriptor{Name: "a", Version: "9"}, domain.PackageDescriptor{Name: "b", Version: "1"}, -1},
		{"version bytes", domain.PackageDescriptor{Name: "a", Version: "10"}, domain.PackageDescriptor{Name: "a", Version: "9"}, -1},
		{"equal", domain.PackageDescriptor{Name: "a", Version: "1"}, domain.PackageDescriptor{Name: "a", Version: "1"}, 0},
		{"greater", domain.PackageDescriptor{Name: "b", Version: "1"}, domain.PackageDescriptor{Name: "a", Version: "1"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := domain.NewPackage(tt.a, nil)
			b := domain.NewPackage(tt.b, nil)
			assert.Equal(t, tt.want, a.Compare(b))
		})
	}

	assert.Equal(t, "foo-1.0", domain.NewPackage(domain.PackageDescriptor{Name: "foo", Version: "1.0"}, nil).String())
}

func TestPackage_Coexists(t *testing.T) {
	a := domain.NewPackage(domain.PackageDescriptor{Name: "kernel", Version: "5"}, nil)
	b := domain.NewPackage(domain.PackageDescriptor{Name: "kernel", Version: "6"}, nil)
	c := domain.NewPackage(domain.PackageDescriptor{Name: "kernel", Version: "6"}, nil)

	assert.True(t, a.Coexists(b))
	assert.False(t, b.Coexists(c))
}

func TestPackage_BaseMatchesNothing(t *testing.T) {
	p := domain.NewPackage(domain.PackageDescriptor{Name: "foo", Version: "1"}, nil)
	assert.False(t, p.Matches("=", "1"))
	assert.Empty(t, p.Format())
}

func TestPackage_Priority(t *testing.T) {
	tests := []struct {
		name    string
		sources []domain.Source
		bias    int
		policy  domain.PriorityPolicy
		want    int
	}{
		{
			name: "channel fallback adds bias",
			sources: []domain.Source{
				fakeSource{id: "a", channel: fakeChannel{priority: 5}},
				fakeSource{id: "b", channel: fakeChannel{priority: 9}},
			},
			bias: 2,
			want: 11,
		},
		{
			name: "negative channels",
			sources: []domain.Source{
				fakeSource{id: "a", channel: fakeChannel{priority: -3}},
				fakeSource{id: "b", channel: fakeChannel{priority: -7}},
			},
			want: -3,
		},
		{
			name: "no loaders",
			bias: 4,
			want: 4,
		},
		{
			name:    "policy wins",
			sources: []domain.Source{fakeSource{id: "a", channel: fakeChannel{priority: 5}}},
			bias:    2,
			policy:  fixedPolicy{prio: 100, ok: true},
			want:    100,
		},
		{
			name:    "silent policy falls back",
			sources: []domain.Source{fakeSource{id: "a", channel: fakeChannel{priority: 5}}},
			bias:    1,
			policy:  fixedPolicy{},
			want:    6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.NewPackage(domain.PackageDescriptor{Name: "p", Version: "1"}, nil)
			p.PriorityBias = tt.bias
			for _, s := range tt.sources {
				p.AddLoader(s)
			}
			assert.Equal(t, tt.want, p.Priority(tt.policy))
		})
	}
}

func TestPackage_LoadersAreASet(t *testing.T) {
	p := domain.NewPackage(domain.PackageDescriptor{Name: "p", Version: "1"}, nil)
	assert.True(t, p.AddLoader(fakeSource{id: "a", installed: true}))
	assert.False(t, p.AddLoader(fakeSource{id: "a", installed: true}))
	assert.Len(t, p.Loaders(), 1)
	assert.False(t, p.AvailableElsewhere())

	assert.True(t, p.AddLoader(fakeSource{id: "b"}))
	assert.True(t, p.HasLoader("b"))
	assert.True(t, p.AvailableElsewhere())
}

func TestProvides_CompareAndString(t *testing.T) {
	unversioned := domain.NewProvides(domain.ProvidesDescriptor{Name: "libc"}, nil)
	v6 := domain.NewProvides(domain.ProvidesDescriptor{Name: "libc", Version: "6"}, nil)

	assert.Equal(t, "libc", unversioned.String())
	assert.Equal(t, "libc = 6", v6.String())
	assert.Equal(t, -1, unversioned.Compare(v6))
	assert.Equal(t, 0, v6.Compare(domain.NewProvides(domain.ProvidesDescriptor{Name: "libc", Version: "6"}, nil)))
}

func TestDepends_BaseBehaviour(t *testing.T) {
	d := domain.NewDepends(domain.KindConflicts, domain.DependsDescriptor{Name: "libc", Relation: ">=", Version: "5"}, nil)
	p := domain.NewProvides(domain.ProvidesDescriptor{Name: "libc", Version: "6"}, nil)

	assert.Equal(t, []string{"libc"}, d.MatchNames())
	assert.False(t, d.Matches(p))
	assert.Equal(t, "libc >= 5", d.String())
	assert.Equal(t, "conflicts", d.Kind.String())
	assert.False(t, d.IsFileName())
	assert.True(t, domain.NewDepends(domain.KindRequires, domain.DependsDescriptor{Name: "/bin/sh"}, nil).IsFileName())

	req := domain.NewDepends(domain.KindRequires, domain.DependsDescriptor{Name: "libc", Relation: "<", Version: "9"}, nil)
	assert.Equal(t, -1, req.Compare(d), "kind orders constraints sharing a name")
}

func TestRecords_ResetKeepsMaterialization(t *testing.T) {
	a := domain.NewArena()
	prv := domain.NewProvides(domain.ProvidesDescriptor{Name: "libc"}, nil)
	dep := domain.NewDepends(domain.KindRequires, domain.DependsDescriptor{Name: "libc"}, nil)
	pid := a.AddProvides(prv)
	did := a.AddDepends(dep)

	prv.RequiredBy.Append(did)
	dep.ProvidedBy.Append(pid)
	prv.Packages = append(prv.Packages, domain.PackageID{})

	prv.Reset()
	dep.Reset()

	assert.Empty(t, prv.Packages)
	assert.True(t, prv.RequiredBy.Materialized())
	assert.Equal(t, 0, prv.RequiredBy.Len())
	assert.False(t, prv.UpgradedBy.Materialized())
	assert.True(t, dep.ProvidedBy.Materialized())
	assert.Equal(t, 0, dep.ProvidedBy.Len())
}

func TestDescriptors_Validate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"package ok", domain.PackageDescriptor{Name: "a", Version: "1"}.Validate(), false},
		{"package missing version", domain.PackageDescriptor{Name: "a"}.Validate(), true},
		{"package missing name", domain.PackageDescriptor{Version: "1"}.Validate(), true},
		{"provides unversioned", domain.ProvidesDescriptor{Name: "a"}.Validate(), false},
		{"provides missing name", domain.ProvidesDescriptor{Version: "1"}.Validate(), true},
		{"depends ok", domain.DependsDescriptor{Name: "a", Relation: ">=", Version: "1"}.Validate(), false},
		{"depends bare", domain.DependsDescriptor{Name: "a"}.Validate(), false},
		{"depends relation only", domain.DependsDescriptor{Name: "a", Relation: ">="}.Validate(), true},
		{"depends version only", domain.DependsDescriptor{Name: "a", Version: "1"}.Validate(), true},
		{"relations", domain.Relations{Upgrades: []domain.DependsDescriptor{{}}}.Validate(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				require.ErrorIs(t, tt.err, domain.ErrMalformedDescriptor)
				return
			}
			require.NoError(t, tt.err)
		})
	}
}

func TestPriorityTable_PackagePriority(t *testing.T) {
	table := domain.PriorityTable{
		"foo": {"main": 10, "extras": 20, domain.AnyChannel: -5},
		"bar": {domain.AnyChannel: 3},
	}

	tests := []struct {
		name    string
		pkg     string
		aliases []string
		want    int
		wantOK  bool
	}{
		{"highest channel entry", "foo", []string{"main", "extras"}, 20, true},
		{"single channel entry", "foo", []string{"main", "other"}, 10, true},
		{"wildcard fallback", "foo", []string{"other"}, -5, true},
		{"wildcard only", "bar", []string{"main"}, 3, true},
		{"unknown package", "baz", []string{"main"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.NewPackage(domain.PackageDescriptor{Name: tt.pkg, Version: "1"}, nil)
			for _, alias := range tt.aliases {
				p.AddLoader(fakeSource{id: alias, channel: domain.ChannelConfig{ChannelAlias: alias}})
			}
			got, ok := table.PackagePriority(p)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

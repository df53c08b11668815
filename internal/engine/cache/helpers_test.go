package cache_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgraph/internal/adapters/lexical"
	"go.trai.ch/pkgraph/internal/adapters/loader"
	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/pkgraph/internal/core/ports"
	"go.trai.ch/pkgraph/internal/engine/cache"
)

// funcLoader runs an arbitrary function as its Load.
type funcLoader struct {
	loader.Base
	load func(ctx context.Context, b ports.Builder) error
}

func newFuncLoader(id string, load func(ctx context.Context, b ports.Builder) error) *funcLoader {
	return &funcLoader{Base: loader.NewBase(id, channel(id, 0), false), load: load}
}

func (l *funcLoader) Load(ctx context.Context, b ports.Builder) error {
	return l.load(ctx, b)
}

func channel(alias string, priority int) domain.ChannelConfig {
	return domain.ChannelConfig{ChannelAlias: alias, ChannelPriority: priority}
}

func newCache(t *testing.T, opts ...cache.Option) *cache.Cache {
	t.Helper()
	c := cache.New(opts...)
	require.NoError(t, c.RegisterBackend(lexical.Backend{}))
	return c
}

func pkgDesc(name, version string) domain.PackageDescriptor {
	return domain.PackageDescriptor{Format: lexical.Format, Name: name, Version: version}
}

func prvDesc(name, version string) domain.ProvidesDescriptor {
	return domain.ProvidesDescriptor{Format: lexical.Format, Name: name, Version: version}
}

func depDesc(name, relation, version string) domain.DependsDescriptor {
	return domain.DependsDescriptor{Format: lexical.Format, Name: name, Relation: relation, Version: version}
}

func addStatic(t *testing.T, c *cache.Cache, id string, installed bool, entries ...loader.Entry) *loader.Static {
	t.Helper()
	l := loader.NewStatic(id, channel(id, 0), installed, entries...)
	require.NoError(t, c.AddLoader(l))
	return l
}

const aliasFormat = "alias"

// aliasBackend answers MatchNames from a fixed table and matches any capability named by
// the constraint or one of its aliases.
type aliasBackend struct {
	names map[string][]string
}

func (aliasBackend) Format() string { return aliasFormat }

func (b aliasBackend) MatchNames(d *domain.Depends) []string {
	if names, ok := b.names[d.Name]; ok {
		return names
	}
	return []string{d.Name}
}

func (b aliasBackend) Matches(d *domain.Depends, p *domain.Provides) bool {
	return p.Name == d.Name || slices.Contains(b.names[d.Name], p.Name)
}

func (aliasBackend) MatchesPackage(_ *domain.Package, relation, _ string) bool {
	return relation == ""
}

// Package app implements the application layer for pkgraph.
package app

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/pkgraph/internal/adapters/metrics" //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/pkgraph/internal/core/ports"
	"go.trai.ch/pkgraph/internal/engine/cache"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	factory      ports.LoaderFactory
	cache        *cache.Cache
	hasher       ports.GraphHasher
	metrics      *metrics.Observer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	factory ports.LoaderFactory,
	c *cache.Cache,
	hasher ports.GraphHasher,
	observer *metrics.Observer,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		factory:      factory,
		cache:        c,
		hasher:       hasher,
		metrics:      observer,
		logger:       logger,
	}
}

// Graph returns the package graph the App loads into.
func (a *App) Graph() ports.Graph {
	return a.cache
}

// Load reads the workspace configuration found from cwd, attaches one loader per configured
// channel and rebuilds the package graph.
func (a *App) Load(ctx context.Context, cwd string) (*domain.Workspace, error) {
	// 1. Load the configuration
	ws, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Replace the loaders of a previous load
	for _, l := range slices.Clone(a.cache.Loaders()) {
		a.cache.RemoveLoader(l)
	}
	for _, ch := range ws.Channels {
		l, err := a.factory.NewLoader(ws.Root, ch)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to create loader"), "channel", ch.ChannelAlias)
		}
		if err := a.cache.AddLoader(l); err != nil {
			return nil, err
		}
	}

	// 3. Build the graph
	a.cache.SetPriorityPolicy(ws.Priorities)
	a.cache.SetFileProvides(ws.FileProvides)
	if err := a.cache.Load(ctx); err != nil {
		return nil, zerr.Wrap(err, "failed to load package graph")
	}

	stats := a.cache.Stats()
	a.logger.Debug(fmt.Sprintf("graph ready: %d packages, %d links", stats.Packages, stats.Links))
	return ws, nil
}

// Package cache implements the in-memory package graph and its load cycle.
package cache

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/pkgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Graph = (*Cache)(nil)

// Cache owns every package, capability and constraint built by its loaders.
//
// A Cache is not safe for concurrent use. Load, Unload and Reset must be serialized by the
// caller and loaders must not be added or removed while a Load is running.
type Cache struct {
	id       uuid.UUID
	logger   ports.Logger
	tracer   ports.Tracer
	progress ports.Progress
	policy   domain.PriorityPolicy
	observer ports.LoadObserver
	files    bool

	backends map[string]domain.Backend
	loaders  []ports.Loader
	arena    *domain.Arena

	packages  []*domain.Package
	provides  []*domain.Provides
	requires  []*domain.Depends
	upgrades  []*domain.Depends
	conflicts []*domain.Depends
	links     int
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for load cycle diagnostics.
func WithLogger(l ports.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

// WithTracer sets the tracer wrapping each load phase in a span.
func WithTracer(t ports.Tracer) Option {
	return func(c *Cache) { c.tracer = t }
}

// WithProgress sets the progress sink driven during Load.
func WithProgress(p ports.Progress) Option {
	return func(c *Cache) { c.progress = p }
}

// WithPriorityPolicy sets the external package priority lookup.
func WithPriorityPolicy(p domain.PriorityPolicy) Option {
	return func(c *Cache) { c.policy = p }
}

// WithObserver sets the receiver of load measurements.
func WithObserver(o ports.LoadObserver) Option {
	return func(c *Cache) { c.observer = o }
}

// WithFileProvides toggles the file capability pass of Load. It is enabled by default.
func WithFileProvides(enabled bool) Option {
	return func(c *Cache) { c.files = enabled }
}

// New creates an empty Cache. The base backend is always registered.
func New(opts ...Option) *Cache {
	c := &Cache{
		id:       uuid.New(),
		logger:   nopLogger{},
		tracer:   nopTracer{},
		progress: nopProgress{},
		observer: nopObserver{},
		files:    true,
		backends: map[string]domain.Backend{"": domain.BaseBackend{}},
		arena:    domain.NewArena(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID identifies the cache as the owner of its loaders.
func (c *Cache) ID() uuid.UUID {
	return c.id
}

// SetPriorityPolicy replaces the external package priority lookup. A nil policy disables it.
func (c *Cache) SetPriorityPolicy(p domain.PriorityPolicy) {
	c.policy = p
}

// SetFileProvides toggles the file capability pass of Load.
func (c *Cache) SetFileProvides(enabled bool) {
	c.files = enabled
}

// Priority returns the priority of pkg under the cache's policy.
func (c *Cache) Priority(pkg *domain.Package) int {
	return pkg.Priority(c.policy)
}

// RegisterBackend makes b available to descriptors of its format.
func (c *Cache) RegisterBackend(b domain.Backend) error {
	format := b.Format()
	if _, ok := c.backends[format]; ok {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateFormat, "register backend"), "format", format)
	}
	c.backends[format] = b
	return nil
}

// Backend returns the backend registered for format.
func (c *Cache) Backend(format string) (domain.Backend, error) {
	b, ok := c.backends[format]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "resolve backend"), "format", format)
	}
	return b, nil
}

// AddLoader registers l and attaches it to the cache.
func (c *Cache) AddLoader(l ports.Loader) error {
	switch owner := l.Owner(); owner {
	case c.id:
		return nil
	case uuid.Nil:
	default:
		err := zerr.With(zerr.Wrap(domain.ErrLoaderAttached, "add loader"), "loader", l.SourceID())
		return zerr.With(err, "owner", owner.String())
	}
	c.loaders = append(c.loaders, l)
	l.SetOwner(c.id)
	return nil
}

// RemoveLoader unregisters l and detaches it.
func (c *Cache) RemoveLoader(l ports.Loader) {
	c.loaders = slices.DeleteFunc(c.loaders, func(x ports.Loader) bool { return x == l })
	if l.Owner() == c.id {
		l.SetOwner(uuid.Nil)
	}
}

// Loaders returns the registered loaders in registration order.
func (c *Cache) Loaders() []ports.Loader {
	return c.loaders
}

// Reset discards the graph. Linked relations of the discarded records are emptied but keep
// their materialized state; every ID issued so far becomes stale.
func (c *Cache) Reset() {
	for _, p := range c.provides {
		p.Reset()
	}
	for _, group := range [][]*domain.Depends{c.requires, c.upgrades, c.conflicts} {
		for _, d := range group {
			d.Reset()
		}
	}
	c.packages = c.packages[:0]
	c.provides = c.provides[:0]
	c.requires = c.requires[:0]
	c.upgrades = c.upgrades[:0]
	c.conflicts = c.conflicts[:0]
	c.links = 0
	c.arena.Reset()
}

// Load rebuilds the graph from every registered loader and links it.
//
// A failed Load leaves the graph partially populated; the caller must Reset or Load again
// before querying it.
func (c *Cache) Load(ctx context.Context) (err error) {
	ctx, span := c.tracer.Start(ctx, "cache.load")
	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			c.logger.Debug("load aborted: " + err.Error())
		}
		stats := c.Stats()
		span.SetAttribute("packages", stats.Packages)
		span.SetAttribute("links", stats.Links)
		c.observer.LoadFinished(stats, time.Since(start), err)
		span.End()
	}()

	c.Reset()

	prog := c.progress
	prog.Start()
	defer prog.Stop()
	prog.SetTopic("Building cache...")
	prog.Set(0, 1)
	prog.Show()

	total := 1
	for _, l := range c.loaders {
		total += l.LoadSteps()
	}
	prog.Set(0, total)
	prog.Show()

	sess := newSession()
	defer sess.close()
	for _, l := range c.loaders {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "load interrupted")
		}
		if err := c.runLoader(ctx, sess, l); err != nil {
			return err
		}
	}

	if c.files {
		if err := c.loadFileProvides(ctx, sess); err != nil {
			return err
		}
	}
	// The memo table must not outlive construction.
	sess.close()

	c.LinkDeps()

	prog.Add(1)
	prog.Show()
	c.logger.Debug(fmt.Sprintf("loaded %d packages from %d loaders", len(c.packages), len(c.loaders)))
	return nil
}

func (c *Cache) runLoader(ctx context.Context, sess *session, l ports.Loader) (err error) {
	ctx, span := c.tracer.Start(ctx, "loader.load")
	span.SetAttribute("loader", l.SourceID())
	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		c.observer.LoaderFinished(l.SourceID(), len(l.Packages()), time.Since(start), err)
		span.End()
	}()

	l.Reset()
	if err := l.Load(ctx, c.newBuilder(sess, l)); err != nil {
		return loaderFailed(err, l)
	}
	return nil
}

// loadFileProvides asks every loader for the file capabilities named by some require.
func (c *Cache) loadFileProvides(ctx context.Context, sess *session) error {
	ctx, span := c.tracer.Start(ctx, "cache.load_file_provides")
	defer span.End()

	names := make(map[string]struct{})
	for _, req := range c.requires {
		if req.IsFileName() {
			names[req.Name] = struct{}{}
		}
	}
	span.SetAttribute("file_names", len(names))

	for _, l := range c.loaders {
		if err := l.LoadFileProvides(ctx, c.newBuilder(sess, l), names); err != nil {
			span.RecordError(err)
			return loaderFailed(err, l)
		}
	}
	return nil
}

// Unload discards the graph and lets every loader release its resources.
func (c *Cache) Unload() {
	c.Reset()
	for _, l := range c.loaders {
		l.Unload()
	}
}

// Stats returns the current collection sizes.
func (c *Cache) Stats() domain.Stats {
	return domain.Stats{
		Packages:  len(c.packages),
		Provides:  len(c.provides),
		Requires:  len(c.requires),
		Upgrades:  len(c.upgrades),
		Conflicts: len(c.conflicts),
		Links:     c.links,
	}
}

func loaderFailed(err error, l ports.Loader) error {
	return zerr.With(zerr.Wrap(err, domain.ErrLoaderFailed.Error()), "loader", l.SourceID())
}

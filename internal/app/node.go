package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgraph/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgraph/internal/adapters/fingerprint" //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgraph/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgraph/internal/adapters/manifest"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgraph/internal/adapters/metrics"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgraph/internal/adapters/progress"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgraph/internal/core/ports"
	"go.trai.ch/pkgraph/internal/engine/cache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			cache.NodeID,
			fingerprint.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progress.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.LoaderFactory](ctx)
	if err != nil {
		return nil, err
	}

	c, err := graft.Dep[*cache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.GraphHasher](ctx)
	if err != nil {
		return nil, err
	}

	observer, err := graft.Dep[*metrics.Observer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, factory, c, hasher, observer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	prog, err := graft.Dep[*progress.Recorder](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, prog), nil
}

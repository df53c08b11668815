package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgraph/internal/adapters/lexical"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pkgraph/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pkgraph/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pkgraph/internal/adapters/progress"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pkgraph/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pkgraph/internal/core/ports"
)

// NodeID is the unique identifier for the package cache Graft node.
const NodeID graft.ID = "engine.cache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.TracerNodeID,
			progress.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			prog, err := graft.Dep[*progress.Recorder](ctx)
			if err != nil {
				return nil, err
			}

			observer, err := graft.Dep[*metrics.Observer](ctx)
			if err != nil {
				return nil, err
			}

			c := New(
				WithLogger(log),
				WithTracer(tracer),
				WithProgress(prog),
				WithObserver(observer),
			)
			if err := c.RegisterBackend(lexical.Backend{}); err != nil {
				return nil, err
			}
			return c, nil
		},
	})
}

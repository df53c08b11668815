package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgraph/internal/adapters/logger"
	"go.trai.ch/pkgraph/internal/core/ports"
)

// NodeID is the unique identifier for the manifest loader factory Graft node.
const NodeID graft.ID = "adapter.manifest_loader_factory"

func init() {
	graft.Register(graft.Node[ports.LoaderFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LoaderFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}

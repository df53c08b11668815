package metrics

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the metrics adapter Graft node.
const NodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[*Observer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Observer, error) {
			return NewObserver(), nil
		},
	})
}

package fingerprint

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgraph/internal/core/ports"
)

// NodeID is the unique identifier for the graph hasher Graft node.
const NodeID graft.ID = "adapter.fingerprint"

func init() {
	graft.Register(graft.Node[ports.GraphHasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphHasher, error) {
			return NewHasher(), nil
		},
	})
}

package descriptor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/flowpack/internal/core/ports"
)

// NodeID is the unique identifier for the descriptor loader Graft node.
const NodeID graft.ID = "adapter.descriptor"

func init() {
	graft.Register(graft.Node[ports.DescriptorLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptorLoader, error) {
			return New(), nil
		},
	})
}

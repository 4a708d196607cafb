package npm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/flowpack/internal/core/ports"
)

// NodeID is the unique identifier for the version lookup factory Graft node.
const NodeID graft.ID = "adapter.npm"

func init() {
	graft.Register(graft.Node[ports.VersionLookupFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VersionLookupFactory, error) {
			return func(root string) ports.VersionLookup { return New(root) }, nil
		},
	})
}

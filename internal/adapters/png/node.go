package png

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the PNG surface Graft node.
const NodeID graft.ID = "adapter.png"

func init() {
	graft.Register(graft.Node[*Surface]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Surface, error) {
			return NewSurface(), nil
		},
	})
}

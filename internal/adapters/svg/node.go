package svg

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the SVG surface Graft node.
const NodeID graft.ID = "adapter.svg"

func init() {
	graft.Register(graft.Node[*Surface]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Surface, error) {
			return NewSurface(), nil
		},
	})
}

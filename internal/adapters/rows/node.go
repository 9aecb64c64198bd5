package rows

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bubbles/internal/core/ports"
)

// NodeID identifies the row source in the dependency graph.
const NodeID graft.ID = "adapter.rows"

func init() {
	graft.Register(graft.Node[ports.RowSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RowSource, error) {
			return NewSource(), nil
		},
	})
}

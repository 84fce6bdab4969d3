package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/warmboot/internal/core/ports"
)

// NodeID is the unique identifier for the state serializer Graft node.
const NodeID graft.ID = "adapter.state_serializer"

func init() {
	graft.Register(graft.Node[ports.StateSerializer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StateSerializer, error) {
			return NewStore(), nil
		},
	})
}

package marker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/warmboot/internal/core/ports"
)

// NodeID is the unique identifier for the version marker Graft node.
const NodeID graft.ID = "adapter.version_marker"

func init() {
	graft.Register(graft.Node[ports.VersionMarker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VersionMarker, error) {
			return New(), nil
		},
	})
}

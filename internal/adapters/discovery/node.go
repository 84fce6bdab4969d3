package discovery

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/warmboot/internal/adapters/logger"
	"go.trai.ch/warmboot/internal/adapters/telemetry"
	"go.trai.ch/warmboot/internal/core/ports"
)

// NodeID is the unique identifier for the initializer Graft node.
const NodeID graft.ID = "adapter.initializer"

func init() {
	graft.Register(graft.Node[ports.Initializer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.Initializer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(log, tracer), nil
		},
	})
}

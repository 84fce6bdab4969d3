package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/warmboot/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/warmboot/internal/adapters/discovery" //nolint:depguard // Wired in app layer
	"go.trai.ch/warmboot/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/warmboot/internal/adapters/marker"    //nolint:depguard // Wired in app layer
	"go.trai.ch/warmboot/internal/adapters/snapshot"  //nolint:depguard // Wired in app layer
	"go.trai.ch/warmboot/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/warmboot/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			marker.NodeID,
			snapshot.NodeID,
			discovery.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	versionMarker, err := graft.Dep[ports.VersionMarker](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.StateSerializer](ctx)
	if err != nil {
		return nil, err
	}

	initializer, err := graft.Dep[ports.Initializer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, versionMarker, store, initializer, log, tracer), nil
}

package ports

import (
	"context"

	"go.trai.ch/warmboot/internal/core/domain"
)

// Initializer performs the boot's initialization work on the restored state.
//
//go:generate mockgen -source=initializer.go -destination=mocks/mock_initializer.go -package=mocks
type Initializer interface {
	// Initialize updates state in place. It must not touch the cache files.
	Initialize(ctx context.Context, cfg *domain.Config, state *domain.InstanceState) error
}

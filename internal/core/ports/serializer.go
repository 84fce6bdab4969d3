package ports

import "go.trai.ch/warmboot/internal/core/domain"

// StateSerializer turns instance state into a durable artifact and back.
//
//go:generate mockgen -source=serializer.go -destination=mocks/mock_serializer.go -package=mocks
type StateSerializer interface {
	// Save writes state to path atomically. A half-written artifact is never
	// visible at path.
	Save(path string, state *domain.InstanceState, opts domain.SaveOptions) error

	// Load reconstructs the state at path for the consumer runtime version.
	// Errors are joined with domain.ErrArtifactNotFound, domain.ErrArtifactMalformed,
	// domain.ErrArtifactIncompatible or domain.ErrArtifactReadFailed.
	Load(path, consumer string) (*domain.InstanceState, error)

	// Inspect returns the artifact header without decoding the payload.
	Inspect(path string) (*domain.ArtifactHeader, error)

	// Exists reports whether an artifact is present at path.
	Exists(path string) (bool, error)

	// Remove deletes the artifact. Removing a missing artifact is not an error.
	Remove(path string) error
}

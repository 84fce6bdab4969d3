package lifecycle

import (
	"go.trai.ch/warmboot/internal/core/domain"
	"go.trai.ch/warmboot/internal/core/ports"
)

// Probe reports what the next boot would decide, without touching the cache files.
func Probe(
	marker ports.VersionMarker,
	store ports.StateSerializer,
	layout domain.CacheLayout,
	runtimeVersion string,
) (*domain.CacheStatus, error) {
	version, present, err := marker.Read(layout.MarkerPath)
	if err != nil {
		return nil, err
	}

	exists, err := store.Exists(layout.ArtifactPath)
	if err != nil {
		return nil, err
	}

	status := &domain.CacheStatus{
		Layout:          layout,
		RuntimeVersion:  runtimeVersion,
		Marker:          domain.MarkerFrom(version, present),
		ArtifactPresent: exists,
	}
	status.Verdict = domain.Evaluate(status.Marker, exists, runtimeVersion)

	if !exists {
		return status, nil
	}

	header, err := store.Inspect(layout.ArtifactPath)
	if err != nil {
		status.HeaderError = err
		if status.Verdict.Trusted() {
			status.Verdict = domain.VerdictMalformed
		}
		return status, nil
	}
	status.Header = header

	if status.Verdict.Trusted() {
		if _, err := store.Load(layout.ArtifactPath, runtimeVersion); err != nil {
			status.HeaderError = err
			status.Verdict = domain.VerdictMalformed
		}
	}

	return status, nil
}

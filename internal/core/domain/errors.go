package domain

import "go.trai.ch/zerr"

var (
	// ErrMarkerReadFailed is returned when the version marker exists but cannot be read.
	ErrMarkerReadFailed = zerr.New("failed to read version marker")

	// ErrMarkerWriteFailed is returned when the version marker cannot be written.
	ErrMarkerWriteFailed = zerr.New("failed to write version marker")

	// ErrMarkerRemoveFailed is returned when the version marker cannot be removed.
	ErrMarkerRemoveFailed = zerr.New("failed to remove version marker")

	// ErrArtifactNotFound is returned when no cache artifact exists at the requested path.
	ErrArtifactNotFound = zerr.New("cache artifact not found")

	// ErrArtifactReadFailed is returned when the cache artifact exists but cannot be read.
	ErrArtifactReadFailed = zerr.New("failed to read cache artifact")

	// ErrArtifactMalformed is returned when the cache artifact is corrupt or truncated.
	ErrArtifactMalformed = zerr.New("cache artifact is malformed")

	// ErrArtifactIncompatible is returned when a well-formed artifact was produced
	// by an incompatible schema, encoding or runtime.
	ErrArtifactIncompatible = zerr.New("cache artifact is incompatible")

	// ErrArtifactWriteFailed is returned when the cache artifact cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write cache artifact")

	// ErrArtifactRemoveFailed is returned when the cache artifact cannot be removed.
	ErrArtifactRemoveFailed = zerr.New("failed to remove cache artifact")

	// ErrArtifactStatFailed is returned when the existence of the artifact cannot be determined.
	ErrArtifactStatFailed = zerr.New("failed to stat cache artifact")

	// ErrUnknownEncoding is returned when an artifact encoding is not supported.
	ErrUnknownEncoding = zerr.New("unknown artifact encoding, expected 'json' or 'proto'")

	// ErrInvalidTransition is returned when the lifecycle controller is driven out of order.
	ErrInvalidTransition = zerr.New("invalid lifecycle transition")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEnvFailed is returned when environment overrides cannot be parsed.
	ErrConfigEnvFailed = zerr.New("failed to parse environment overrides")

	// ErrMissingStateDir is returned when no state directory is configured.
	ErrMissingStateDir = zerr.New("state directory must not be empty")

	// ErrUnknownExporter is returned when the telemetry exporter is not supported.
	ErrUnknownExporter = zerr.New("unknown telemetry exporter, expected 'none' or 'stdout'")

	// ErrLogFileOpenFailed is returned when the log file sink cannot be opened.
	ErrLogFileOpenFailed = zerr.New("failed to open log file")

	// ErrInitializationFailed is returned when the boot's initialization work fails.
	ErrInitializationFailed = zerr.New("instance initialization failed")

	// ErrFactDiscoveryFailed is returned when a fact source fails with an unexpected error.
	ErrFactDiscoveryFailed = zerr.New("failed to discover instance facts")

	// ErrCleanFailed is returned when cache files cannot be removed by the clean command.
	ErrCleanFailed = zerr.New("failed to clean cache")
)

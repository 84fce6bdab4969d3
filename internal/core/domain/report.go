package domain

// RestoreReport describes what the controller observed while restoring state.
type RestoreReport struct {
	Marker          MarkerVersion
	ArtifactPresent bool
	Verdict         Verdict
	Outcome         Phase
	// Purged is true when the artifact was deleted during this boot.
	Purged bool
	// Warnings holds the messages logged at warning level.
	Warnings []string
}

// PersistReport describes the final write of a boot.
type PersistReport struct {
	ArtifactWritten bool
	MarkerWritten   bool
	Warnings        []string
}

// CacheStatus is a read-only snapshot of the cache files, as seen by the current runtime.
type CacheStatus struct {
	Layout          CacheLayout
	RuntimeVersion  string
	Marker          MarkerVersion
	ArtifactPresent bool
	Header          *ArtifactHeader
	// HeaderError is set when the artifact exists but cannot be read or validated.
	HeaderError error
	Verdict     Verdict
}

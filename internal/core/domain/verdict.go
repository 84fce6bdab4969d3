package domain

// Verdict is the decision of whether a cached artifact may be trusted for reload.
type Verdict uint8

const (
	// VerdictCompatible means the artifact may be loaded, or there is nothing to load.
	VerdictCompatible Verdict = iota
	// VerdictVersionMismatch means the artifact was produced by a different runtime.
	VerdictVersionMismatch
	// VerdictMarkerMissing means the producing runtime cannot be determined.
	VerdictMarkerMissing
	// VerdictMalformed means the artifact could not be decoded.
	VerdictMalformed
)

// String returns the string representation of the Verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictCompatible:
		return "compatible"
	case VerdictVersionMismatch:
		return "version-mismatch"
	case VerdictMarkerMissing:
		return "marker-missing"
	case VerdictMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Trusted reports whether an artifact with this verdict may be loaded.
func (v Verdict) Trusted() bool {
	return v == VerdictCompatible
}

// MarkerVersion is the optional content of the version marker.
type MarkerVersion struct {
	Version string
	Present bool
}

// SomeMarker returns a present marker holding version.
func SomeMarker(version string) MarkerVersion {
	return MarkerVersion{Version: version, Present: true}
}

// NoMarker returns an absent marker.
func NoMarker() MarkerVersion {
	return MarkerVersion{}
}

// MarkerFrom builds the marker option from a VersionMarker read.
func MarkerFrom(version string, present bool) MarkerVersion {
	if !present {
		return NoMarker()
	}
	return SomeMarker(version)
}

// Evaluate decides, before deserialization, whether the artifact is trustworthy.
// The rules are applied in order; marker-missing and version-mismatch must stay
// distinguishable because they are reported with different log lines.
func Evaluate(marker MarkerVersion, artifactExists bool, current string) Verdict {
	switch {
	case !artifactExists:
		return VerdictCompatible
	case !marker.Present:
		return VerdictMarkerMissing
	case marker.Version != current:
		return VerdictVersionMismatch
	default:
		return VerdictCompatible
	}
}

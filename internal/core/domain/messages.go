package domain

// Log lines emitted by the lifecycle controller. Downstream tooling greps for
// these exact substrings, so they must not be reworded.
const (
	// MsgMarkerUnknown is logged whenever a boot starts without a version marker.
	MsgMarkerUnknown = "Writing python-version file. Cache compatibility status is currently unknown."

	// MsgVersionChange is logged when the marker names a different runtime.
	MsgVersionChange = "Python version change detected. Purging cache"

	// MsgMarkerMissing is logged when an artifact exists but its producer is unknown.
	MsgMarkerMissing = "Could not determine Python version used to write cache"

	// MsgLoadFailedFmt is logged when the artifact fails to deserialize.
	// The single verb is the literal artifact path.
	MsgLoadFailedFmt = "Failed loading pickled blob from %s"

	// MsgNoCache is logged when the artifact disappeared between the existence
	// probe and the load.
	MsgNoCache = "no cache found"
)

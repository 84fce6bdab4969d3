// Package ports defines the core interfaces for the application.
package ports

// VersionMarker reads and writes the file recording which runtime version last
// wrote the cache.
//
//go:generate mockgen -source=marker.go -destination=mocks/mock_marker.go -package=mocks
type VersionMarker interface {
	// Read returns the recorded version. present is false when the marker does
	// not exist; err is only set on genuine I/O failure.
	Read(path string) (version string, present bool, err error)

	// Write atomically replaces the marker with version.
	Write(path, version string) error

	// Remove deletes the marker. Removing a missing marker is not an error.
	Remove(path string) error
}

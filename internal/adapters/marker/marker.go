// Package marker implements the runtime version marker file.
package marker

import (
	"errors"
	iofs "io/fs"
	"os"
	"strings"

	"go.trai.ch/warmboot/internal/adapters/fs"
	"go.trai.ch/warmboot/internal/core/domain"
	"go.trai.ch/warmboot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionMarker = (*File)(nil)

// File implements ports.VersionMarker with a single-line text file.
type File struct{}

// New creates a new marker adapter.
func New() *File {
	return &File{}
}

// Read returns the trimmed first line of the marker.
func (f *File) Read(path string) (string, bool, error) {
	//nolint:gosec // Path comes from the resolved configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, errors.Join(domain.ErrMarkerReadFailed, zerr.With(zerr.Wrap(err, "read marker"), "path", path))
	}

	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line), true, nil
}

// Write replaces the marker with version followed by a newline.
func (f *File) Write(path, version string) error {
	if err := fs.WriteFileAtomic(path, []byte(version+"\n"), domain.FilePerm); err != nil {
		return errors.Join(domain.ErrMarkerWriteFailed, zerr.With(zerr.Wrap(err, "write marker"), "path", path))
	}
	return nil
}

// Remove deletes the marker if it exists.
func (f *File) Remove(path string) error {
	if err := fs.RemoveIfExists(path); err != nil {
		return errors.Join(domain.ErrMarkerRemoveFailed, zerr.With(zerr.Wrap(err, "remove marker"), "path", path))
	}
	return nil
}

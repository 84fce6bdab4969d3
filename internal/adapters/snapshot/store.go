// Package snapshot implements the durable instance state artifact.
package snapshot

import (
	"errors"
	iofs "io/fs"
	"os"
	"time"

	"go.trai.ch/warmboot/internal/adapters/fs"
	"go.trai.ch/warmboot/internal/core/domain"
	"go.trai.ch/warmboot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StateSerializer = (*Store)(nil)

// Store implements ports.StateSerializer using a single self-describing file per artifact.
type Store struct {
	now func() time.Time
}

// NewStore creates a new artifact store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Save encodes state and atomically replaces the artifact at path.
func (s *Store) Save(path string, state *domain.InstanceState, opts domain.SaveOptions) error {
	enc := opts.Encoding
	if enc == "" {
		enc = domain.DefaultEncoding
	}

	c, ok := codecFor(enc)
	if !ok {
		detail := zerr.With(zerr.New("invalid encoding"), "encoding", string(enc))
		return errors.Join(domain.ErrArtifactWriteFailed, domain.ErrUnknownEncoding, detail)
	}

	payload, err := c.Encode(state)
	if err != nil {
		return errors.Join(domain.ErrArtifactWriteFailed, zerr.With(zerr.Wrap(err, "encode state"), "encoding", string(enc)))
	}

	header := &domain.ArtifactHeader{
		Magic:     domain.ArtifactMagic,
		Schema:    domain.ArtifactSchemaVersion,
		Encoding:  enc,
		Producer:  opts.Producer,
		WrittenAt: s.now().UTC(),
		Length:    len(payload),
		Checksum:  fs.Checksum(payload),
	}

	data, err := encodeArtifact(header, payload)
	if err != nil {
		return errors.Join(domain.ErrArtifactWriteFailed, zerr.Wrap(err, "encode header"))
	}

	if err := fs.WriteFileAtomic(path, data, domain.PrivateFilePerm); err != nil {
		return errors.Join(domain.ErrArtifactWriteFailed, zerr.With(zerr.Wrap(err, "write artifact"), "path", path))
	}

	return nil
}

// Load reads and validates the artifact at path. consumer is the runtime
// version that will use the state; an empty consumer skips the producer check.
func (s *Store) Load(path, consumer string) (*domain.InstanceState, error) {
	header, payload, err := s.read(path)
	if err != nil {
		return nil, err
	}

	if header.Schema != domain.ArtifactSchemaVersion {
		return nil, incompatible(path, zerr.With(zerr.New("unsupported schema"), "schema", header.Schema))
	}

	c, ok := codecFor(header.Encoding)
	if !ok {
		return nil, incompatible(path, zerr.With(zerr.New("unsupported encoding"), "encoding", string(header.Encoding)))
	}

	if consumer != "" && header.Producer != consumer {
		err := zerr.With(zerr.New("written by a different runtime"), "producer", header.Producer)
		return nil, incompatible(path, zerr.With(err, "consumer", consumer))
	}

	if len(payload) != header.Length {
		err := zerr.With(zerr.New("truncated payload"), "expected", header.Length)
		return nil, malformed(path, zerr.With(err, "actual", len(payload)))
	}

	if sum := fs.Checksum(payload); sum != header.Checksum {
		return nil, malformed(path, zerr.With(zerr.New("checksum mismatch"), "checksum", sum))
	}

	state, err := c.Decode(payload)
	if err != nil {
		return nil, malformed(path, zerr.Wrap(err, "decode payload"))
	}

	state.Normalize()
	return state, nil
}

// Inspect returns the header of the artifact at path.
func (s *Store) Inspect(path string) (*domain.ArtifactHeader, error) {
	header, _, err := s.read(path)
	if err != nil {
		return nil, err
	}
	return header, nil
}

// Exists reports whether an artifact file is present at path.
func (s *Store) Exists(path string) (bool, error) {
	ok, err := fs.Exists(path)
	if err != nil {
		return false, errors.Join(domain.ErrArtifactStatFailed, zerr.With(zerr.Wrap(err, "stat artifact"), "path", path))
	}
	return ok, nil
}

// Remove deletes the artifact at path if it exists.
func (s *Store) Remove(path string) error {
	if err := fs.RemoveIfExists(path); err != nil {
		return errors.Join(domain.ErrArtifactRemoveFailed, zerr.With(zerr.Wrap(err, "remove artifact"), "path", path))
	}
	return nil
}

func (s *Store) read(path string) (*domain.ArtifactHeader, []byte, error) {
	//nolint:gosec // Path comes from the resolved configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil, errors.Join(domain.ErrArtifactNotFound, zerr.With(zerr.Wrap(err, "read artifact"), "path", path))
		}
		return nil, nil, errors.Join(domain.ErrArtifactReadFailed, zerr.With(zerr.Wrap(err, "read artifact"), "path", path))
	}

	header, payload, err := decodeHeader(data)
	if err != nil {
		return nil, nil, malformed(path, err)
	}
	return header, payload, nil
}

func malformed(path string, cause error) error {
	return errors.Join(domain.ErrArtifactMalformed, zerr.With(cause, "path", path))
}

func incompatible(path string, cause error) error {
	return errors.Join(domain.ErrArtifactIncompatible, zerr.With(cause, "path", path))
}

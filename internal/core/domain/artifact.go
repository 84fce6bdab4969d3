package domain

import (
	"strings"
	"time"
)

const (
	// ArtifactMagic identifies warmboot artifacts.
	ArtifactMagic = "warmboot-state"

	// ArtifactSchemaVersion is the current layout of InstanceState on disk.
	// Increment it whenever InstanceState changes incompatibly.
	ArtifactSchemaVersion = 1
)

// Encoding names a payload serialization format.
type Encoding string

const (
	// EncodingJSON stores the payload as JSON.
	EncodingJSON Encoding = "json"
	// EncodingProto stores the payload as a protobuf Struct.
	EncodingProto Encoding = "proto"
)

// DefaultEncoding is used when none is configured.
const DefaultEncoding = EncodingJSON

// ParseEncoding validates an encoding name. The empty string selects the default.
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultEncoding, nil
	case EncodingJSON:
		return EncodingJSON, nil
	case EncodingProto:
		return EncodingProto, nil
	default:
		return "", ErrUnknownEncoding
	}
}

// ArtifactHeader is the self-describing metadata written ahead of the payload.
type ArtifactHeader struct {
	Magic     string    `json:"magic"`
	Schema    int       `json:"schema"`
	Encoding  Encoding  `json:"encoding"`
	Producer  string    `json:"producer"`
	WrittenAt time.Time `json:"written_at,omitzero"`
	Length    int       `json:"length"`
	Checksum  string    `json:"checksum"`
}

// SaveOptions controls how an artifact is written.
type SaveOptions struct {
	// Producer is the runtime version writing the artifact.
	Producer string
	// Encoding selects the payload format.
	Encoding Encoding
}

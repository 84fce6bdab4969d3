package snapshot

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/warmboot/internal/core/domain"
	"go.trai.ch/zerr"
)

// An artifact is one JSON header line followed by the raw payload:
//
//	{"magic":"warmboot-state","schema":1,"encoding":"json",...}\n
//	<payload bytes>

func encodeArtifact(header *domain.ArtifactHeader, payload []byte) ([]byte, error) {
	line, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, len(line)+1+len(payload))
	buf = append(buf, line...)
	buf = append(buf, '\n')
	buf = append(buf, payload...)
	return buf, nil
}

func decodeHeader(data []byte) (*domain.ArtifactHeader, []byte, error) {
	line, payload, ok := bytes.Cut(data, []byte{'\n'})
	if !ok {
		return nil, nil, zerr.New("missing header terminator")
	}

	var header domain.ArtifactHeader
	if err := json.Unmarshal(line, &header); err != nil {
		return nil, nil, zerr.Wrap(err, "unreadable header")
	}

	if header.Magic != domain.ArtifactMagic {
		return nil, nil, zerr.With(zerr.New("unexpected magic"), "magic", header.Magic)
	}

	return &header, payload, nil
}

package snapshot

import (
	"encoding/json"

	"go.trai.ch/warmboot/internal/core/domain"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// codec converts instance state to and from a payload encoding.
type codec interface {
	Encode(state *domain.InstanceState) ([]byte, error)
	Decode(payload []byte) (*domain.InstanceState, error)
}

var codecs = map[domain.Encoding]codec{
	domain.EncodingJSON:  jsonCodec{},
	domain.EncodingProto: protoCodec{},
}

func codecFor(enc domain.Encoding) (codec, bool) {
	c, ok := codecs[enc]
	return c, ok
}

type jsonCodec struct{}

func (jsonCodec) Encode(state *domain.InstanceState) ([]byte, error) {
	return json.Marshal(state)
}

func (jsonCodec) Decode(payload []byte) (*domain.InstanceState, error) {
	var state domain.InstanceState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// protoCodec stores the state as a google.protobuf.Struct. The field names
// are the JSON names of InstanceState, so both encodings share one schema.
type protoCodec struct{}

func (protoCodec) Encode(state *domain.InstanceState) ([]byte, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}

	var st structpb.Struct
	if err := protojson.Unmarshal(raw, &st); err != nil {
		return nil, err
	}

	return proto.MarshalOptions{Deterministic: true}.Marshal(&st)
}

func (protoCodec) Decode(payload []byte) (*domain.InstanceState, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(payload, &st); err != nil {
		return nil, err
	}

	raw, err := protojson.Marshal(&st)
	if err != nil {
		return nil, err
	}

	var state domain.InstanceState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

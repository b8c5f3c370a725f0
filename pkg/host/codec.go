// Package host bridges the component runtime to the surrounding
// mini-program environment: payload codecs, the UI-turn dispatch
// trampoline, and an adapter implementing runtime.Internal over a
// transport bridge.
package host

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// MessageCodec encodes and decodes data payloads for host transmission.
type MessageCodec interface {
	// Encode converts a Go value to bytes for transmission to the host.
	Encode(value any) ([]byte, error)

	// Decode converts bytes received from the host to a Go value.
	Decode(data []byte) (any, error)
}

// JSONCodec implements MessageCodec using JSON encoding. JSON prioritizes
// interoperability with script-based hosts.
type JSONCodec struct{}

// Encode serializes the value to JSON bytes.
func (c JSONCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode deserializes JSON bytes to a Go value.
func (c JSONCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeInto deserializes JSON bytes into a specific type.
func (c JSONCodec) DecodeInto(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// MsgpackCodec implements MessageCodec using MessagePack encoding, for
// hosts that accept binary payloads.
type MsgpackCodec struct{}

// Encode serializes the value to MessagePack bytes.
func (c MsgpackCodec) Encode(value any) ([]byte, error) {
	return msgpack.Marshal(value)
}

// Decode deserializes MessagePack bytes to a Go value.
func (c MsgpackCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := msgpack.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeInto deserializes MessagePack bytes into a specific type.
func (c MsgpackCodec) DecodeInto(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// DefaultCodec is the codec used when an adapter is created without one.
var DefaultCodec MessageCodec = JSONCodec{}

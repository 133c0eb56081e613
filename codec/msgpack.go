package codec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack is a Codec that serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use. It is the default pick for cache values:
// compact, fast, and self-describing, so heterogeneous values round-trip
// without a schema registry.
//
// When V is an interface type, Decode uses loose interface decoding: integers
// come back as int64 (or uint64 when they do not fit) and floats as float64,
// regardless of how small the encoded representation was. That keeps dynamic
// values stable across a store round-trip instead of surfacing int8/int16
// depending on magnitude.
//
// Be mindful of struct tag differences vs JSON. Use `msgpack:"fieldName"`
// tags if you need explicit control.
type Msgpack[V any] struct{}

var _ Codec[any] = Msgpack[any]{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	dec := msgpack.NewDecoder(bytes.NewReader(b))
	dec.UseLooseInterfaceDecoding(true)
	err := dec.Decode(&v)
	return v, err
}

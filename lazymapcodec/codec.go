// Package lazymapcodec converts lazymap values to and from bytes, so
// that a Map's detached snapshot can cross a storage or network
// boundary. The core lazymap package stays silent on encoding; this
// package is the one place that concern lives.
package lazymapcodec

import "github.com/vmihailenco/msgpack/v5"

// Codec encodes and decodes values of type V.
type Codec[V any] interface {
	Encode(v V) ([]byte, error)
	Decode(data []byte) (V, error)
}

// MsgpackCodec is a Codec backed by github.com/vmihailenco/msgpack/v5.
// It is the default codec for lazymapstore and cmd/lazymapd.
type MsgpackCodec[V any] struct{}

// NewMsgpackCodec returns a MsgpackCodec for V.
func NewMsgpackCodec[V any]() MsgpackCodec[V] {
	return MsgpackCodec[V]{}
}

func (MsgpackCodec[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (MsgpackCodec[V]) Decode(data []byte) (V, error) {
	var v V
	if err := msgpack.Unmarshal(data, &v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

// KeyCodec converts keys of type K to and from the byte strings a
// bbolt bucket indexes on. Bolt keys are opaque byte slices, so this
// is kept separate from Codec rather than reusing it for both.
type KeyCodec[K any] interface {
	EncodeKey(k K) []byte
	DecodeKey(data []byte) (K, error)
}

// StringKeyCodec is a KeyCodec for string keys, storing them verbatim.
type StringKeyCodec struct{}

func (StringKeyCodec) EncodeKey(k string) []byte { return []byte(k) }

func (StringKeyCodec) DecodeKey(data []byte) (string, error) {
	return string(data), nil
}

// MsgpackKeyCodec is a KeyCodec for any msgpack-serializable key type,
// for callers whose K is not a plain string.
type MsgpackKeyCodec[K any] struct{}

func (MsgpackKeyCodec[K]) EncodeKey(k K) []byte {
	data, err := msgpack.Marshal(k)
	if err != nil {
		// Keys are expected to be plain, marshalable types; a failure
		// here means the caller passed something msgpack cannot
		// represent, which is a programming error, not a runtime one.
		panic("lazymapcodec: key not msgpack-encodable: " + err.Error())
	}
	return data
}

func (MsgpackKeyCodec[K]) DecodeKey(data []byte) (K, error) {
	var k K
	if err := msgpack.Unmarshal(data, &k); err != nil {
		var zero K
		return zero, err
	}
	return k, nil
}

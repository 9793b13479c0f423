// Package codec encodes component values. MessagePack backs deep copies, JSON backs debug output.
package codec

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/shamaton/msgpack/v3"
)

// Serialize converts a value to MessagePack bytes.
func Serialize(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, eris.Wrap(err, "failed to serialize")
	}
	return data, nil
}

// Deserialize decodes MessagePack bytes into v, which must be a pointer.
func Deserialize(data []byte, v any) (err error) {
	defer func() {
		// msgpack.Unmarshal can panic on malformed input instead of returning an error.
		if r := recover(); r != nil {
			err = eris.Wrap(fmt.Errorf("panic: %v", r), "failed to deserialize")
		}
	}()

	if err := msgpack.Unmarshal(data, v); err != nil {
		return eris.Wrap(err, "failed to deserialize")
	}
	return nil
}

// Copy returns a deep copy of v made by a MessagePack round trip. Types that can't make the trip
// unchanged, such as structs with unexported or interface fields, are rejected with ErrNotCopyable.
func Copy[T any](v T) (T, error) {
	var out T
	if err := checkCopyable(reflect.TypeFor[T]()); err != nil {
		return out, eris.Wrapf(err, "failed to copy %T", v)
	}
	data, err := Serialize(v)
	if err != nil {
		return out, eris.Wrapf(err, "failed to copy %T", v)
	}
	if err := Deserialize(data, &out); err != nil {
		return out, eris.Wrapf(err, "failed to copy %T", v)
	}
	return out, nil
}

// MarshalJSON renders v as JSON.
func MarshalJSON(v any) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to marshal %T", v)
	}
	return data, nil
}

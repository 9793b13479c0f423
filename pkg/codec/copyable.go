package codec

import (
	"reflect"
	"sync"
	"time"

	"github.com/rotisserie/eris"
)

// ErrNotCopyable is returned by Copy for types whose values would not survive a MessagePack
// round trip unchanged.
var ErrNotCopyable = eris.New("type cannot be copied by the codec")

var timeType = reflect.TypeFor[time.Time]()

// copyableCache maps reflect.Type to the result of checkCopyable.
var copyableCache sync.Map

// checkCopyable reports whether values of t round trip through MessagePack without losing data.
// Unexported struct fields come back as their zero value and interface fields come back with a
// different dynamic type, so both are rejected along with channels, funcs, and unsafe pointers.
func checkCopyable(t reflect.Type) error {
	if cached, ok := copyableCache.Load(t); ok {
		if cached == nil {
			return nil
		}
		return cached.(error) //nolint:errcheck // only errors are stored
	}

	err := walkCopyable(t, t.String(), make(map[reflect.Type]bool))
	if err != nil {
		copyableCache.Store(t, err)
	} else {
		copyableCache.Store(t, nil)
	}
	return err
}

func walkCopyable(t reflect.Type, path string, seen map[reflect.Type]bool) error {
	if seen[t] {
		return nil
	}
	seen[t] = true

	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return nil
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return walkCopyable(t.Elem(), path+"[]", seen)
	case reflect.Map:
		if err := walkCopyable(t.Key(), path+"{key}", seen); err != nil {
			return err
		}
		return walkCopyable(t.Elem(), path+"{value}", seen)
	case reflect.Struct:
		if t == timeType {
			return nil
		}
		for i := range t.NumField() {
			field := t.Field(i)
			fieldPath := path + "." + field.Name
			if !field.IsExported() {
				return eris.Wrapf(ErrNotCopyable, "unexported field %s", fieldPath)
			}
			if err := walkCopyable(field.Type, fieldPath, seen); err != nil {
				return err
			}
		}
		return nil
	case reflect.Interface:
		return eris.Wrapf(ErrNotCopyable, "interface field %s", path)
	case reflect.Invalid, reflect.Uintptr, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return eris.Wrapf(ErrNotCopyable, "unsupported kind %s at %s", t.Kind(), path)
	}
	return eris.Wrapf(ErrNotCopyable, "unsupported kind %s at %s", t.Kind(), path)
}

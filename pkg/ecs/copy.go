package ecs

import (
	"github.com/argus-labs/sparse-ecs/pkg/codec"
	"github.com/rotisserie/eris"
)

// copyComponent returns a copy of c that shares no memory with it. Components implementing
// Cloner copy themselves. The rest go through a codec round trip, which fails with
// codec.ErrNotCopyable if c has unexported or interface-typed fields.
func copyComponent[T Component](c T) (T, error) {
	if cloner, ok := any(c).(Cloner[T]); ok {
		return cloner.Clone(), nil
	}
	out, err := codec.Copy(c)
	if err != nil {
		return out, eris.Wrapf(err, "failed to copy component %s", c.Name())
	}
	return out, nil
}

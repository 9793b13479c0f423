package ecs

import "github.com/rotisserie/eris"

var (
	// ErrEntityNotFound is returned when operating on an entity that isn't alive.
	ErrEntityNotFound = eris.New("entity does not exist")

	// ErrEntityLimit is returned when every entity id has been handed out.
	ErrEntityLimit = eris.New("max number of entities exceeded")

	// ErrComponentTypeMismatch is returned when two different Go types use the same component name.
	ErrComponentTypeMismatch = eris.New("component name is registered with a different type")
)

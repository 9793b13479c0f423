package ecs

import "github.com/rotisserie/eris"

// storeFactory creates a store with the given initial sparse capacity.
type storeFactory func(sparseCapacity int) abstractStore

// abstractStore is the type-erased view of a componentStore, used where the component type isn't
// known statically (killing entities, debug dumps).
type abstractStore interface {
	name() string
	len() int
	has(e Entity) bool
	remove(e Entity) bool
	getAbstract(e Entity) (Component, bool)
}

var _ abstractStore = &componentStore[Component]{}

// componentStore holds every value of one component type, keyed by entity.
type componentStore[T Component] struct {
	compName string
	set      *SparseSet[Entity, T]
}

// newStoreFactory returns a function that constructs a store for component type T.
func newStoreFactory[T Component]() storeFactory {
	return func(sparseCapacity int) abstractStore {
		var zero T
		return &componentStore[T]{
			compName: zero.Name(),
			set:      NewSparseSetWithCapacity[Entity, T](sparseCapacity),
		}
	}
}

func (s *componentStore[T]) name() string {
	return s.compName
}

func (s *componentStore[T]) len() int {
	return s.set.Len()
}

func (s *componentStore[T]) has(e Entity) bool {
	return s.set.Has(e)
}

func (s *componentStore[T]) remove(e Entity) bool {
	_, ok := s.set.Delete(e)
	return ok
}

func (s *componentStore[T]) getAbstract(e Entity) (Component, bool) {
	value, ok := s.set.Get(e)
	if !ok {
		return nil, false
	}
	return value, true
}

// lookupStore returns the store for T if T has been registered. A store registered under T's
// name by a different Go type is reported as ErrComponentTypeMismatch.
func lookupStore[T Component](cm *componentManager) (*componentStore[T], error) {
	var zero T
	abstract := cm.lookup(zero.Name())
	if abstract == nil {
		return nil, nil //nolint:nilnil // absent store is not an error
	}
	store, ok := abstract.(*componentStore[T])
	if !ok {
		return nil, eris.Wrapf(ErrComponentTypeMismatch, "component %s, type %T", zero.Name(), zero)
	}
	return store, nil
}

// lookupOrRegisterStore returns the store for T, registering it on first use. The bool reports
// whether the store was just created.
func lookupOrRegisterStore[T Component](cm *componentManager) (*componentStore[T], bool, error) {
	var zero T
	_, created, err := cm.register(zero.Name(), newStoreFactory[T]())
	if err != nil {
		return nil, false, eris.Wrap(err, "failed to register component")
	}
	store, err := lookupStore[T](cm)
	if err != nil {
		return nil, false, err
	}
	return store, created, nil
}

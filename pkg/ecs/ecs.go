package ecs

import "github.com/rotisserie/eris"

// AddComponent stores a copy of component on the entity. If the entity already has a component of
// this type, the stored value is replaced. Later changes to component don't affect the stored copy.
//
// Unlike the lookups, which report a missing entity as absent, AddComponent fails with
// ErrEntityNotFound when the entity isn't alive, so no component can outlive its entity. It also
// fails if the component can't be copied (see Cloner).
func AddComponent[T Component](m *EntityManager, e Entity, component T) error {
	if !m.Alive(e) {
		return eris.Wrapf(ErrEntityNotFound, "entity %d", e)
	}

	store, created, err := lookupOrRegisterStore[T](&m.components)
	if err != nil {
		return err
	}
	if created {
		m.logger.Debug().Str("component", store.name()).Msg("component store registered")
	}

	value, err := copyComponent(component)
	if err != nil {
		return err
	}

	store.set.Add(e, value)
	return nil
}

// GetComponent returns the entity's component of type T and whether it exists.
func GetComponent[T Component](m *EntityManager, e Entity) (T, bool) {
	store, err := lookupStore[T](&m.components)
	if err != nil || store == nil {
		var zero T
		return zero, false
	}
	return store.set.Get(e)
}

// HasComponent reports whether the entity has a component of type T.
func HasComponent[T Component](m *EntityManager, e Entity) bool {
	_, ok := GetComponent[T](m, e)
	return ok
}

// GetAllComponentsOfType returns every stored component of type T, packed. Returns nil if no
// component of type T was ever added. The slice must not be modified and is only valid until the
// next change to components of type T.
func GetAllComponentsOfType[T Component](m *EntityManager) []T {
	store, err := lookupStore[T](&m.components)
	if err != nil || store == nil {
		return nil
	}
	return store.set.Values()
}

// GetAllEntitiesWithType returns the live entities that have a component of type T, in creation
// order.
func GetAllEntitiesWithType[T Component](m *EntityManager) []Entity {
	store, err := lookupStore[T](&m.components)
	if err != nil || store == nil {
		return nil
	}

	entities := make([]Entity, 0, store.len())
	for _, e := range m.entities {
		if store.has(e) {
			entities = append(entities, e)
		}
	}
	return entities
}

// DeleteComponent removes the entity's component of type T and returns it. Returns false if the
// entity doesn't have one.
func DeleteComponent[T Component](m *EntityManager, e Entity) (T, bool) {
	store, err := lookupStore[T](&m.components)
	if err != nil || store == nil {
		var zero T
		return zero, false
	}
	return store.set.Delete(e)
}

// Package ecs is the storage core of an entity-component system.
//
// Entities are plain ids minted by an EntityManager. Each component type is stored in its own
// SparseSet keyed by entity, so adding, reading, and deleting a component are O(1) and all values
// of one type sit packed in a single slice:
//
//	m, err := ecs.NewEntityManager(ecs.ManagerOptions{})
//	e, err := m.CreateEntity()
//	err = ecs.AddComponent(m, e, Position{X: 1, Y: 2})
//	pos, ok := ecs.GetComponent[Position](m, e)
//	for _, e := range ecs.GetAllEntitiesWithType[Position](m) { ... }
//	m.KillEntity(e)
//
// AddComponent stores a copy of the value. Components with reference fields can implement Cloner;
// the rest are copied with a MessagePack round trip.
package ecs

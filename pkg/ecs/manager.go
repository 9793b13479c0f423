package ecs

import (
	"slices"

	"github.com/argus-labs/sparse-ecs/pkg/codec"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/kelindar/bitmap"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// EntityManager creates entities and binds components to them. Every component type gets its own
// SparseSet keyed by entity, created the first time the type is added.
//
// Type-independent operations are methods. Operations on a component type are the generic
// functions AddComponent, GetComponent, GetAllComponentsOfType, GetAllEntitiesWithType,
// DeleteComponent, and HasComponent, since Go methods can't take type parameters.
//
// An EntityManager is not safe for concurrent use.
type EntityManager struct {
	id         uuid.UUID
	logger     zerolog.Logger
	allocator  entityAllocator
	entities   []Entity      // Live entities in creation order
	alive      bitmap.Bitmap // Live entity ids
	components componentManager
}

// NewEntityManager creates an entity manager. Options left at their zero value are taken from the
// environment (see managerConfig).
func NewEntityManager(opts ManagerOptions) (*EntityManager, error) {
	cfg, err := loadManagerConfig(opts.Logger != nil)
	if err != nil {
		return nil, eris.Wrap(err, "failed to load config")
	}

	options := newDefaultManagerOptions()
	cfg.applyToOptions(&options)
	options.apply(opts)
	if err := options.validate(); err != nil {
		return nil, eris.Wrap(err, "invalid manager options")
	}

	var logger zerolog.Logger
	if options.Logger != nil {
		logger = *options.Logger
	} else {
		logger = newLogger(options)
	}

	id := uuid.New()
	m := &EntityManager{
		id:         id,
		logger:     logger.With().Str("manager_id", id.String()).Logger(),
		allocator:  newEntityAllocator(options.RecycleEntityIDs),
		entities:   make([]Entity, 0),
		alive:      bitmap.Bitmap{},
		components: newComponentManager(options.SparseCapacity),
	}

	m.logger.Debug().
		Int("sparse_capacity", options.SparseCapacity).
		Bool("recycle_entity_ids", options.RecycleEntityIDs).
		Msg("entity manager created")

	return m, nil
}

// ID returns the unique id of this manager instance.
func (m *EntityManager) ID() uuid.UUID {
	return m.id
}

// Logger returns the manager's logger.
func (m *EntityManager) Logger() *zerolog.Logger {
	return &m.logger
}

// CreateEntity creates a new entity. Entity ids increase by one on every call starting at 0,
// unless id recycling is enabled and a killed id is available.
func (m *EntityManager) CreateEntity() (Entity, error) {
	e, ok := m.allocator.next()
	if !ok {
		return 0, ErrEntityLimit
	}

	m.entities = append(m.entities, e)
	m.alive.Set(e.Hash())

	m.logger.Debug().Uint32("entity_id", e.Hash()).Msg("entity created")
	return e, nil
}

// KillEntity deletes every component of the entity and removes it from the live entities.
// Returns true if the entity was alive.
func (m *EntityManager) KillEntity(e Entity) bool {
	removed := 0
	for _, store := range m.components.stores {
		if store.remove(e) {
			removed++
		}
	}

	if !m.Alive(e) {
		return false
	}

	m.entities = slices.DeleteFunc(m.entities, func(current Entity) bool {
		return current == e
	})
	m.alive.Remove(e.Hash())
	m.allocator.release(e)

	m.logger.Debug().
		Uint32("entity_id", e.Hash()).
		Int("components_removed", removed).
		Msg("entity killed")
	return true
}

// Alive reports whether the entity has been created and not killed.
func (m *EntityManager) Alive(e Entity) bool {
	return m.alive.Contains(e.Hash())
}

// Entities returns the live entities in creation order. The slice must not be modified and is only
// valid until the next CreateEntity or KillEntity.
func (m *EntityManager) Entities() []Entity {
	return m.entities
}

// Len returns the number of live entities.
func (m *EntityManager) Len() int {
	return len(m.entities)
}

// ComponentNames returns the names of the registered component types in registration order.
func (m *EntityManager) ComponentNames() []string {
	return m.components.names()
}

// Inspect returns the JSON encoding of every component attached to the entity, keyed by
// component name.
func (m *EntityManager) Inspect(e Entity) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage)
	for _, store := range m.components.stores {
		component, ok := store.getAbstract(e)
		if !ok {
			continue
		}
		data, err := codec.MarshalJSON(component)
		if err != nil {
			return nil, eris.Wrapf(err, "failed to encode component %s", store.name())
		}
		out[store.name()] = data
	}
	return out, nil
}

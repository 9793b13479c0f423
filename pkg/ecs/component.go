package ecs

import (
	"github.com/argus-labs/sparse-ecs/pkg/assert"
	"github.com/rotisserie/eris"
)

// Component is the interface that all components must implement.
// Components are plain data attached to entities.
type Component interface { //nolint:iface // We may add more methods in the future.
	// Name returns a unique string identifier for the component type.
	// This should be consistent across program executions.
	Name() string
}

// Cloner is implemented by components that know how to deep copy themselves. Components with
// unexported or interface-typed fields must implement it. Components made only of exported plain
// data may skip it and are copied by the codec.
type Cloner[T any] interface {
	Clone() T
}

// componentID is a unique identifier for a component type. IDs are assigned in registration order.
type componentID = uint32

// componentManager tracks the store of every registered component type.
type componentManager struct {
	nextID         componentID            // The next available component ID
	catalog        map[string]componentID // Component name -> component ID
	stores         []abstractStore        // Component ID -> store
	sparseCapacity int                    // Initial sparse capacity of new stores
}

// newComponentManager creates a new component manager.
func newComponentManager(sparseCapacity int) componentManager {
	return componentManager{
		nextID:         0,
		catalog:        make(map[string]componentID),
		stores:         make([]abstractStore, 0),
		sparseCapacity: sparseCapacity,
	}
}

// register adds a store built by factory under name and returns its ID. If name is already
// registered, the existing ID is returned and factory is not called.
func (cm *componentManager) register(name string, factory storeFactory) (componentID, bool, error) {
	if name == "" {
		return 0, false, eris.New("component name cannot be empty")
	}

	if cid, exists := cm.catalog[name]; exists {
		return cid, false, nil
	}

	cm.catalog[name] = cm.nextID
	cm.stores = append(cm.stores, factory(cm.sparseCapacity))
	cm.nextID++
	assert.That(int(cm.nextID) == len(cm.stores), "component id doesn't match number of components")

	return cm.nextID - 1, true, nil
}

// lookup returns the store registered under name, or nil.
func (cm *componentManager) lookup(name string) abstractStore {
	cid, exists := cm.catalog[name]
	if !exists {
		return nil
	}
	return cm.stores[cid]
}

// names returns the registered component names in registration order.
func (cm *componentManager) names() []string {
	names := make([]string, len(cm.stores))
	for i, store := range cm.stores {
		names[i] = store.name()
	}
	return names
}

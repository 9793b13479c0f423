package ecs

import "math"

// Entity is a handle that binds components together. It has no data of its own; two entities
// are the same entity when their ids are equal.
type Entity uint32

var _ Hashable = Entity(0)

// MaxEntity is the largest entity id that can be created.
const MaxEntity = math.MaxUint32 - 1

// Hash returns the entity id.
func (e Entity) Hash() uint32 {
	return uint32(e)
}

// entityAllocator hands out entity ids. Ids are minted in increasing order starting at 0. When
// recycling is enabled, ids released by free are reused oldest first before new ids are minted.
type entityAllocator struct {
	nextID  uint64   // The next ID to allocate if no free IDs are available
	free    []Entity // A queue of free IDs, only used when recycle is set
	head    int      // Index of the oldest queued ID in free
	recycle bool
}

func newEntityAllocator(recycle bool) entityAllocator {
	return entityAllocator{
		nextID:  0,
		free:    make([]Entity, 0),
		head:    0,
		recycle: recycle,
	}
}

// next returns the next entity id, or false if the id space is exhausted.
func (a *entityAllocator) next() (Entity, bool) {
	if a.recycle && a.head < len(a.free) {
		// Pop from the front of the free list (FIFO).
		id := a.free[a.head]
		a.head++
		a.compact()
		return id, true
	}

	if a.nextID > MaxEntity {
		return 0, false
	}
	id := Entity(a.nextID)
	a.nextID++
	return id, true
}

// release returns an id to the free list. No-op unless recycling is enabled.
func (a *entityAllocator) release(e Entity) {
	if !a.recycle {
		return
	}
	a.free = append(a.free, e)
}

// compact drops the consumed front of the free queue once it makes up at least half of it, so the
// backing array doesn't grow without bound under steady kill/create churn.
func (a *entityAllocator) compact() {
	if a.head*2 < len(a.free) {
		return
	}
	n := copy(a.free, a.free[a.head:])
	a.free = a.free[:n]
	a.head = 0
}

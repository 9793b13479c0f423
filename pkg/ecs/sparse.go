package ecs

import "github.com/argus-labs/sparse-ecs/pkg/assert"

// Empty marks a sparse slot that doesn't map to any dense index.
const Empty = -1

// defaultSparseCapacity is the initial length of the sparse array.
const defaultSparseCapacity = 128

// SparseSet is an associative container keyed by Hashable keys. Insert, lookup, and delete are
// O(1), and values are kept packed in a dense slice with no holes so iterating over them is
// cache-sequential.
//
// The set keeps three parallel structures:
//   - dense holds the values.
//   - sparse maps a key hash to its index in dense, or Empty.
//   - inverse maps a dense index back to the hash of the key that owns it.
//
// The zero value is an empty set ready to use. A SparseSet is not safe for concurrent use.
type SparseSet[K Hashable, V any] struct {
	dense   []V
	sparse  []int
	inverse []uint32
}

// NewSparseSet creates an empty sparse set with the default sparse capacity.
func NewSparseSet[K Hashable, V any]() *SparseSet[K, V] {
	return NewSparseSetWithCapacity[K, V](defaultSparseCapacity)
}

// NewSparseSetWithCapacity creates an empty sparse set whose sparse array covers hashes
// [0, capacity) without growing.
func NewSparseSetWithCapacity[K Hashable, V any](capacity int) *SparseSet[K, V] {
	capacity = max(capacity, 0)
	s := &SparseSet[K, V]{
		dense:   make([]V, 0),
		sparse:  make([]int, capacity),
		inverse: make([]uint32, 0),
	}
	for i := range s.sparse {
		s.sparse[i] = Empty
	}
	return s
}

// Add associates value with key. If key already has a value, it is overwritten in place and the
// dense layout is left untouched.
func (s *SparseSet[K, V]) Add(key K, value V) {
	hash := key.Hash()

	if row, ok := s.index(hash); ok {
		s.dense[row] = value
		return
	}

	s.grow(hash)
	s.sparse[hash] = len(s.dense)
	s.inverse = append(s.inverse, hash)
	s.dense = append(s.dense, value)

	assert.That(len(s.dense) == len(s.inverse), "dense and inverse lengths diverged")
}

// Get returns the value associated with key and whether it exists.
func (s *SparseSet[K, V]) Get(key K) (V, bool) {
	row, ok := s.index(key.Hash())
	if !ok {
		var zero V
		return zero, false
	}
	return s.dense[row], true
}

// Has reports whether key has a value.
func (s *SparseSet[K, V]) Has(key K) bool {
	_, ok := s.index(key.Hash())
	return ok
}

// Delete removes the value associated with key and returns it. Returns false and leaves the set
// untouched if key has no value. The last value in dense is moved into the freed slot, so the
// dense index of at most one other key changes.
func (s *SparseSet[K, V]) Delete(key K) (V, bool) {
	hash := key.Hash()

	row, ok := s.index(hash)
	if !ok {
		var zero V
		return zero, false
	}

	result := s.dense[row]
	lastIndex := len(s.dense) - 1

	lastHash := s.inverse[lastIndex]
	lastValue := s.dense[lastIndex]

	// Clear the popped slot so the backing array doesn't keep references alive.
	var zero V
	s.dense[lastIndex] = zero
	s.dense = s.dense[:lastIndex]
	s.inverse = s.inverse[:lastIndex]

	// If the removed key isn't the last one, move the last value into the hole.
	if row != lastIndex {
		s.dense[row] = lastValue
		s.inverse[row] = lastHash
		s.sparse[lastHash] = row
	}

	s.sparse[hash] = Empty

	assert.That(len(s.dense) == len(s.inverse), "dense and inverse lengths diverged")
	return result, true
}

// Values returns the packed values. The slice is a view into the set: it must not be modified
// and is only valid until the next Add, Delete, or Clear.
func (s *SparseSet[K, V]) Values() []V {
	return s.dense
}

// Keys returns the hashes of the stored keys in the same order as Values. The same restrictions
// as Values apply.
func (s *SparseSet[K, V]) Keys() []uint32 {
	return s.inverse
}

// Len returns the number of stored values.
func (s *SparseSet[K, V]) Len() int {
	return len(s.dense)
}

// Range calls fn for each stored hash and value in dense order until fn returns false. fn must
// not modify the set.
func (s *SparseSet[K, V]) Range(fn func(hash uint32, value V) bool) {
	for i, value := range s.dense {
		if !fn(s.inverse[i], value) {
			return
		}
	}
}

// Clear removes every value. Allocated capacity is kept.
func (s *SparseSet[K, V]) Clear() {
	for _, hash := range s.inverse {
		s.sparse[hash] = Empty
	}
	clear(s.dense)
	s.dense = s.dense[:0]
	s.inverse = s.inverse[:0]
}

// index returns the dense index for a hash and whether the hash has a live mapping.
func (s *SparseSet[K, V]) index(hash uint32) (int, bool) {
	if uint64(hash) >= uint64(len(s.sparse)) {
		return 0, false
	}

	row := s.sparse[hash]
	if row == Empty || row >= len(s.dense) {
		return 0, false
	}
	assert.That(s.inverse[row] == hash, "sparse entry %d points at a slot owned by %d", hash, s.inverse[row])
	return row, true
}

// grow extends the sparse array so that hash is a valid index, filling new slots with Empty.
func (s *SparseSet[K, V]) grow(hash uint32) {
	if uint64(hash) < uint64(len(s.sparse)) {
		return
	}

	// Grow by doubling or to hash+1, whichever is larger.
	oldLen := len(s.sparse)
	newLen := max(oldLen*2, int(hash)+1)

	newSparse := make([]int, newLen)
	copy(newSparse, s.sparse)
	for i := oldLen; i < newLen; i++ {
		newSparse[i] = Empty
	}
	s.sparse = newSparse
}

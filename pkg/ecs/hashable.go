package ecs

// Hashable is implemented by any type that can key a SparseSet. Hash must stay the same for the
// lifetime of the key and is used directly as an index into the sparse array, so the key domain
// should be compact.
type Hashable interface {
	Hash() uint32
}

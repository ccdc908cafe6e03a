// Package sparse provides a sparse set of state ids.
//
// A sparse set supports O(1) insertion, membership testing and clearing
// while keeping a dense list of its members in insertion order. The
// automaton package uses it as the visited set of epsilon-closure, where
// the same set is cleared and refilled for every closure computed.
package sparse

// Set is a set of uint32 values below a fixed capacity.
//
// The sparse array maps a value to its index in the dense array; a value
// is a member only if that index is in range and points back to it, so
// Clear never has to touch the sparse array.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// NewSet creates a set that can hold values in [0, capacity).
func NewSet(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Capacity returns the exclusive upper bound of storable values.
func (s *Set) Capacity() int {
	return len(s.sparse)
}

// Resize clears the set and makes room for values in [0, capacity).
func (s *Set) Resize(capacity int) {
	if capacity > len(s.sparse) {
		s.sparse = make([]uint32, capacity)
		s.dense = make([]uint32, 0, capacity)
		return
	}
	s.Clear()
}

// Insert adds value and reports whether it was newly added.
// Panics if value >= Capacity().
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Clear removes all values in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no values.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the members in insertion order.
// The slice is only valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}

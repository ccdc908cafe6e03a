// Package stateset provides a growable bitset of automaton state ids.
//
// A StateSet is the canonical key for a set of NFA states during subset
// construction: two sets holding the same ids compare equal and hash
// equal regardless of the order in which the ids were inserted.
package stateset

import (
	"encoding/binary"
	"math/bits"

	"github.com/dchest/siphash"
)

// segmentBits is the number of state ids packed into one segment.
const segmentBits = 64

// SipHash keys. Fixed so that hashes are stable across runs.
const (
	hashK0 = 0x736f6d6570736575
	hashK1 = 0x646f72616e646f6d
)

// StateSet is a set of state ids packed into 64-bit segments.
//
// Storage grows on demand to cover the largest inserted id and never
// shrinks, so the allocated extent is a function of the largest member.
//
// Assigning a StateSet shares its storage. Use Clone for an independent
// copy before mutating either side.
type StateSet struct {
	segments []uint64
}

// New returns an empty set.
func New() StateSet {
	return StateSet{}
}

// Of returns a set containing the given positions.
func Of(positions ...uint32) StateSet {
	return FromSlice(positions)
}

// FromSlice returns a set containing every position in the slice.
func FromSlice(positions []uint32) StateSet {
	var s StateSet
	for _, p := range positions {
		s.Insert(p)
	}
	return s
}

// Insert adds position to the set, growing storage to cover it.
func (s *StateSet) Insert(position uint32) {
	idx := int(position / segmentBits)
	if idx >= len(s.segments) {
		grown := make([]uint64, idx+1)
		copy(grown, s.segments)
		s.segments = grown
	}
	s.segments[idx] |= 1 << (position % segmentBits)
}

// Remove deletes position from the set. Storage is not shrunk, so the
// extent seen by Equal is unchanged.
func (s *StateSet) Remove(position uint32) {
	idx := int(position / segmentBits)
	if idx >= len(s.segments) {
		return
	}
	s.segments[idx] &^= 1 << (position % segmentBits)
}

// Set inserts or removes position according to value.
func (s *StateSet) Set(position uint32, value bool) {
	if value {
		s.Insert(position)
		return
	}
	s.Remove(position)
}

// Contains reports whether position is in the set.
func (s StateSet) Contains(position uint32) bool {
	idx := int(position / segmentBits)
	if idx >= len(s.segments) {
		return false
	}
	return s.segments[idx]&(1<<(position%segmentBits)) != 0
}

// Len returns the number of positions in the set.
func (s StateSet) Len() int {
	n := 0
	for _, seg := range s.segments {
		n += bits.OnesCount64(seg)
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (s StateSet) IsEmpty() bool {
	for _, seg := range s.segments {
		if seg != 0 {
			return false
		}
	}
	return true
}

// Each calls f for every member in increasing order.
func (s StateSet) Each(f func(uint32)) {
	for i, seg := range s.segments {
		for seg != 0 {
			tz := bits.TrailingZeros64(seg)
			f(uint32(i*segmentBits + tz))
			seg &= seg - 1
		}
	}
}

// Slice returns the members in increasing order.
func (s StateSet) Slice() []uint32 {
	out := make([]uint32, 0, s.Len())
	s.Each(func(p uint32) {
		out = append(out, p)
	})
	return out
}

// Clone returns a deep copy of the set.
func (s StateSet) Clone() StateSet {
	if len(s.segments) == 0 {
		return StateSet{}
	}
	segments := make([]uint64, len(s.segments))
	copy(segments, s.segments)
	return StateSet{segments: segments}
}

// Equal reports whether both sets have the same extent and the same bits.
func (s StateSet) Equal(other StateSet) bool {
	if len(s.segments) != len(other.segments) {
		return false
	}
	for i := range s.segments {
		if s.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// Hash returns a SipHash of the first and last segments.
//
// Equal sets always hash equal. A set with a single segment uses it as
// both first and last; the empty set hashes the empty input.
func (s StateSet) Hash() uint64 {
	var buf [16]byte
	switch n := len(s.segments); n {
	case 0:
		return siphash.Hash(hashK0, hashK1, nil)
	default:
		binary.LittleEndian.PutUint64(buf[:8], s.segments[0])
		binary.LittleEndian.PutUint64(buf[8:], s.segments[n-1])
	}
	return siphash.Hash(hashK0, hashK1, buf[:])
}

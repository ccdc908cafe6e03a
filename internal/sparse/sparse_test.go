package sparse

import (
	"slices"
	"testing"
)

func TestSet_Basic(t *testing.T) {
	s := NewSet(100)

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	if !s.Insert(5) {
		t.Error("first insert should return true")
	}
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	if s.Insert(5) {
		t.Error("duplicate insert should return false")
	}
	if s.Len() != 1 {
		t.Errorf("len should be 1, got %d", s.Len())
	}

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Len() != 4 {
		t.Errorf("len should be 4, got %d", s.Len())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) {
		t.Error("cleared set should not contain 5")
	}
}

func TestSet_InsertionOrder(t *testing.T) {
	s := NewSet(100)
	for _, v := range []uint32{5, 2, 8, 1} {
		s.Insert(v)
	}
	if got, want := s.Values(), []uint32{5, 2, 8, 1}; !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestSet_OutOfRange(t *testing.T) {
	s := NewSet(4)
	if s.Contains(4) || s.Contains(1 << 31) {
		t.Error("values beyond capacity must not be members")
	}
}

func TestSet_StaleSparseEntries(t *testing.T) {
	s := NewSet(10)
	s.Insert(7)
	s.Clear()
	s.Insert(3)
	// sparse[7] still holds index 0, which now points at 3.
	if s.Contains(7) {
		t.Error("stale sparse entry reported as member")
	}
}

func TestSet_Resize(t *testing.T) {
	s := NewSet(2)
	s.Insert(1)
	s.Resize(64)
	if s.Capacity() != 64 {
		t.Errorf("Capacity() = %d, want 64", s.Capacity())
	}
	if !s.IsEmpty() {
		t.Error("Resize should clear the set")
	}
	if !s.Insert(63) {
		t.Error("insert after resize failed")
	}
	s.Resize(8)
	if s.Capacity() != 64 || !s.IsEmpty() {
		t.Error("shrinking Resize should only clear")
	}
}

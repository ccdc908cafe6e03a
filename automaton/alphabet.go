package automaton

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// MaxAlphabetLen is the largest number of distinct symbols an alphabet may
// cover: every Unicode code point.
const MaxAlphabetLen = 0x110000

// SymbolRange is an inclusive range of symbols [Lo, Hi].
type SymbolRange struct {
	Lo Symbol
	Hi Symbol
}

// Range returns the inclusive symbol range [lo, hi].
func Range(lo, hi rune) SymbolRange {
	return SymbolRange{Lo: Symbol(lo), Hi: Symbol(hi)}
}

// Contains reports whether sym is in the range.
func (r SymbolRange) Contains(sym Symbol) bool {
	return sym >= r.Lo && sym <= r.Hi
}

// String returns a human-readable representation of the range
func (r SymbolRange) String() string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("%q", rune(r.Lo))
	}
	return fmt.Sprintf("%q-%q", rune(r.Lo), rune(r.Hi))
}

// Alphabet is the set of symbols an automaton reads, stored as an ordered
// list of ranges. Ranges may overlap and need not be sorted.
type Alphabet []SymbolRange

// LowerCase returns the default alphabet 'a'-'z'.
func LowerCase() Alphabet {
	return Alphabet{Range('a', 'z')}
}

// Clone returns a copy of the alphabet.
func (a Alphabet) Clone() Alphabet {
	return slices.Clone(a)
}

// Contains reports whether sym falls within any range.
func (a Alphabet) Contains(sym Symbol) bool {
	for _, r := range a {
		if r.Contains(sym) {
			return true
		}
	}
	return false
}

// Normalize returns the alphabet with ranges sorted and overlapping or
// adjacent ranges merged. Inverted ranges cover nothing and are dropped.
func (a Alphabet) Normalize() Alphabet {
	sorted := slices.DeleteFunc(slices.Clone(a), func(r SymbolRange) bool {
		return r.Lo > r.Hi
	})
	if len(sorted) == 0 {
		return nil
	}
	slices.SortFunc(sorted, func(x, y SymbolRange) int {
		return cmp.Compare(x.Lo, y.Lo)
	})
	out := Alphabet{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if uint64(r.Lo) <= uint64(last.Hi)+1 {
			last.Hi = max(last.Hi, r.Hi)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Union returns an alphabet covering the symbols of both alphabets.
func (a Alphabet) Union(other Alphabet) Alphabet {
	merged := make(Alphabet, 0, len(a)+len(other))
	merged = append(merged, a...)
	merged = append(merged, other...)
	return merged.Normalize()
}

// With returns an alphabet that also covers sym.
func (a Alphabet) With(sym Symbol) Alphabet {
	if a.Contains(sym) {
		return a.Clone()
	}
	return append(a.Clone(), SymbolRange{Lo: sym, Hi: sym})
}

// Len returns the number of distinct symbols covered.
func (a Alphabet) Len() int {
	n := uint64(0)
	for _, r := range a.Normalize() {
		n += uint64(r.Hi-r.Lo) + 1
	}
	return int(min(n, uint64(MaxAlphabetLen)+1))
}

// Equal reports whether both alphabets cover the same symbols.
func (a Alphabet) Equal(other Alphabet) bool {
	return slices.Equal(a.Normalize(), other.Normalize())
}

// Each calls f for every distinct symbol in increasing order.
func (a Alphabet) Each(f func(Symbol)) {
	for _, r := range a.Normalize() {
		for sym := r.Lo; ; sym++ {
			f(sym)
			if sym == r.Hi {
				break
			}
		}
	}
}

// String returns a human-readable representation of the alphabet
func (a Alphabet) String() string {
	parts := make([]string, len(a))
	for i, r := range a {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (a Alphabet) validate() error {
	for _, r := range a {
		if r.Lo > r.Hi {
			return &Error{Kind: InvalidSymbol, Message: "symbol range is inverted", Symbol: r.Lo, State: StateNotFound}
		}
		if r.Hi == Epsilon {
			return &Error{Kind: InvalidSymbol, Message: "epsilon cannot be part of an alphabet", Symbol: Epsilon, State: StateNotFound}
		}
	}
	if a.Len() > MaxAlphabetLen {
		return &Error{Kind: InvalidSymbol, Message: "alphabet covers too many symbols", Symbol: Epsilon, State: StateNotFound}
	}
	return nil
}

// symbolIndex maps alphabet symbols to dense column numbers in
// [0, len()). Columns follow increasing symbol order.
type symbolIndex struct {
	ranges  Alphabet
	offsets []int
	size    int
	ascii   [128]int32 // column of each ASCII symbol, -1 if absent
}

func newSymbolIndex(a Alphabet) symbolIndex {
	ranges := a.Normalize()
	offsets := make([]int, len(ranges))
	size := 0
	for i, r := range ranges {
		offsets[i] = size
		size += int(r.Hi-r.Lo) + 1
	}
	x := symbolIndex{ranges: ranges, offsets: offsets, size: size}
	for sym := range x.ascii {
		x.ascii[sym] = -1
		if c, ok := x.search(Symbol(sym)); ok {
			x.ascii[sym] = int32(c)
		}
	}
	return x
}

// len returns the number of columns.
func (x *symbolIndex) len() int {
	return x.size
}

// column returns the column of sym.
func (x *symbolIndex) column(sym Symbol) (int, bool) {
	if sym < 128 {
		c := x.ascii[sym]
		return int(c), c >= 0
	}
	return x.search(sym)
}

func (x *symbolIndex) search(sym Symbol) (int, bool) {
	i, found := slices.BinarySearchFunc(x.ranges, sym, func(r SymbolRange, s Symbol) int {
		switch {
		case r.Hi < s:
			return -1
		case r.Lo > s:
			return 1
		}
		return 0
	})
	if !found {
		return 0, false
	}
	return x.offsets[i] + int(sym-x.ranges[i].Lo), true
}

// symbol returns the symbol of column c.
func (x *symbolIndex) symbol(c int) Symbol {
	i, found := slices.BinarySearch(x.offsets, c)
	if !found {
		i--
	}
	return x.ranges[i].Lo + Symbol(c-x.offsets[i])
}

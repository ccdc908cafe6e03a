// Package prefilter finds candidate positions where an automaton scan can
// make progress.
//
// A DFA anchored at its start state dies immediately on any symbol outside
// the start state's live set. The scanner hands that set to this package as
// a list of needle bytes and jumps straight to the next position holding one
// of them, skipping positions where the automaton would only die and
// restart.
//
// Strategy is picked from the needle count:
//   - 0 needles → nothing ever matches
//   - 1-3 needles → Memchr/Memchr2/Memchr3 (SWAR byte search)
//   - 4+ needles → Aho-Corasick automaton over single-byte patterns
package prefilter

import (
	"slices"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/regfa/simd"
)

// Prefilter returns candidate positions in a haystack.
type Prefilter interface {
	// Find returns the index of the first needle at or after start, or -1.
	// start must be in [0, len(haystack)].
	Find(haystack []byte, start int) int

	// Needles returns the sorted needle bytes.
	Needles() []byte
}

// New builds a prefilter for the given needle bytes.
// Duplicates are ignored. Returns nil if no prefilter could be built.
func New(needles []byte) Prefilter {
	set := slices.Clone(needles)
	slices.Sort(set)
	set = slices.Compact(set)

	switch len(set) {
	case 0:
		return none{}
	case 1:
		return &memchr{needles: set}
	case 2:
		return &memchr2{needles: set}
	case 3:
		return &memchr3{needles: set}
	}

	builder := ahocorasick.NewBuilder()
	for _, b := range set {
		builder.AddPattern([]byte{b})
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasick{auto: auto, needles: set}
}

// none never finds a candidate.
type none struct{}

func (none) Find([]byte, int) int { return -1 }

func (none) Needles() []byte { return nil }

type memchr struct {
	needles []byte
}

func (p *memchr) Find(haystack []byte, start int) int {
	return offset(simd.Memchr(haystack[start:], p.needles[0]), start)
}

func (p *memchr) Needles() []byte { return p.needles }

type memchr2 struct {
	needles []byte
}

func (p *memchr2) Find(haystack []byte, start int) int {
	return offset(simd.Memchr2(haystack[start:], p.needles[0], p.needles[1]), start)
}

func (p *memchr2) Needles() []byte { return p.needles }

type memchr3 struct {
	needles []byte
}

func (p *memchr3) Find(haystack []byte, start int) int {
	return offset(simd.Memchr3(haystack[start:], p.needles[0], p.needles[1], p.needles[2]), start)
}

func (p *memchr3) Needles() []byte { return p.needles }

// ahoCorasick handles needle sets too large for the memchr family.
type ahoCorasick struct {
	auto    *ahocorasick.Automaton
	needles []byte
}

func (p *ahoCorasick) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *ahoCorasick) Needles() []byte { return p.needles }

// offset converts a position relative to start back to an absolute one.
func offset(pos, start int) int {
	if pos < 0 {
		return -1
	}
	return pos + start
}

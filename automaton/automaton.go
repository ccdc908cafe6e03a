// Package automaton implements nondeterministic and deterministic finite
// automata for regular-expression matching.
//
// An NFA is built with Thompson-style construction from a textual pattern
// (literals, a wildcard and a zero-or-more operator) or from primitive,
// union, concatenation and star combinators. A DFA is derived from an NFA
// by subset construction and minimized by partition refinement. Both types
// scan input for all non-overlapping leftmost-longest matching substrings.
//
// Basic usage:
//
//	n := automaton.NewNFAFromPattern("ab*")
//	d := automaton.NewDFAFromNFA(n)
//	for _, m := range d.FindRecognizedSubstrings("xabbbyab") {
//	    fmt.Println(m.Start, m.Length) // 1 4, then 6 2
//	}
//
// Automata are mutable values: scanning moves a cursor stored in the
// automaton, so a single instance must not be scanned from several
// goroutines at once. Clone a DFA to give each goroutine its own cursor.
package automaton

import (
	"fmt"
	"math"

	"github.com/coregx/regfa/internal/stateset"
)

// StateID identifies an automaton state. Ids are dense and zero-based.
type StateID uint32

// StateNotFound is returned by lookups on an unknown state or symbol.
const StateNotFound StateID = math.MaxUint32

// Symbol is an input symbol. Input strings are decoded as UTF-8 and every
// rune is one symbol.
type Symbol uint32

// Epsilon is the empty-string pseudo-symbol used in NFA transition tables.
// It never belongs to an alphabet.
const Epsilon Symbol = math.MaxUint32

// Substring is a match found in the input: byte offset and byte length.
type Substring struct {
	Start  int
	Length int
}

// End returns the byte offset just past the match.
func (s Substring) End() int {
	return s.Start + s.Length
}

// String returns a human-readable representation of the match
func (s Substring) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End())
}

// Automaton is the capability set shared by NFA and DFA.
type Automaton interface {
	// Reset moves the cursor back to the start configuration.
	Reset()

	// Receive advances the cursor by one symbol.
	Receive(sym Symbol)

	// Recognize reports whether the whole string is accepted.
	Recognize(s string) bool

	// FindRecognizedSubstrings returns all non-overlapping matches
	// in increasing start order.
	FindRecognizedSubstrings(s string) []Substring

	// Simplify canonicalizes and minimizes the automaton in place.
	Simplify()
}

var (
	_ Automaton = (*NFA)(nil)
	_ Automaton = (*DFA)(nil)
)

// base holds the representation shared by NFA and DFA.
type base struct {
	states   int
	alphabet Alphabet
	start    StateID
	accept   stateset.StateSet
}

func newBase(states int, alphabet Alphabet, start StateID, accept []StateID) base {
	b := base{
		states:   states,
		alphabet: alphabet.Clone(),
		start:    start,
	}
	for _, s := range accept {
		b.accept.Insert(uint32(s))
	}
	return b
}

func (b *base) clone() base {
	return base{
		states:   b.states,
		alphabet: b.alphabet.Clone(),
		start:    b.start,
		accept:   b.accept.Clone(),
	}
}

// States returns the number of states.
func (b *base) States() int {
	return b.states
}

// Alphabet returns a copy of the alphabet ranges.
func (b *base) Alphabet() Alphabet {
	return b.alphabet.Clone()
}

// Start returns the start state. It is meaningless when States() is 0.
func (b *base) Start() StateID {
	return b.start
}

// AcceptStates returns the accept states in increasing order.
func (b *base) AcceptStates() []StateID {
	out := make([]StateID, 0, b.accept.Len())
	b.accept.Each(func(s uint32) {
		out = append(out, StateID(s))
	})
	return out
}

// IsSymbolInAlphabet reports whether sym falls within an alphabet range.
func (b *base) IsSymbolInAlphabet(sym Symbol) bool {
	return b.alphabet.Contains(sym)
}

// IsStartState reports whether s is the start state.
func (b *base) IsStartState(s StateID) bool {
	return b.states > 0 && b.start == s
}

// IsAcceptState reports whether s is an accept state.
func (b *base) IsAcceptState(s StateID) bool {
	return s != StateNotFound && b.accept.Contains(uint32(s))
}

// IntersectsAccept reports whether any of the given states accepts.
func (b *base) IntersectsAccept(states []StateID) bool {
	for _, s := range states {
		if b.IsAcceptState(s) {
			return true
		}
	}
	return false
}

// checkShape validates constructor arguments before anything is allocated
// from them.
func checkShape(states int, alphabet Alphabet, start StateID, accept []StateID) error {
	if states < 0 || uint64(states) >= uint64(StateNotFound) {
		return &Error{Kind: InvalidState, Message: "state count out of range", State: StateNotFound}
	}
	if err := alphabet.validate(); err != nil {
		return err
	}
	if states == 0 {
		if len(accept) > 0 {
			return &Error{Kind: InvalidState, Message: "accept states given for an automaton without states", State: accept[0]}
		}
		return nil
	}
	if uint64(start) >= uint64(states) {
		return &Error{Kind: InvalidState, Message: "start state out of range", State: start}
	}
	for _, s := range accept {
		if uint64(s) >= uint64(states) {
			return &Error{Kind: InvalidState, Message: "accept state out of range", State: s}
		}
	}
	return nil
}

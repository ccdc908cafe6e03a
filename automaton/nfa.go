package automaton

import (
	"fmt"
	"slices"

	"github.com/coregx/regfa/internal/sparse"
)

// NFA is a nondeterministic finite automaton with epsilon moves.
//
// Transitions map a state and a symbol (or Epsilon) to a set of successor
// states. The cursor is the epsilon-closed set of states reachable from the
// start state over the symbols received since the last Reset.
//
// An NFA with zero states is valid and matches nothing.
type NFA struct {
	base

	// trans[s][sym] lists the successors of s on sym without duplicates.
	trans []map[Symbol][]StateID

	// current is the cursor, sorted ascending.
	current []StateID

	// visited is scratch space for closure and step computations.
	visited *sparse.Set
}

// NewNFA creates an NFA from an explicit description.
//
// transitions[s] holds the outgoing edges of state s; it may be shorter than
// states, in which case the remaining states have no edges. Every edge symbol
// must be Epsilon or belong to alphabet, and every target must be a valid
// state.
func NewNFA(states int, alphabet Alphabet, start StateID, accept []StateID, transitions []map[Symbol][]StateID) (*NFA, error) {
	if err := checkShape(states, alphabet, start, accept); err != nil {
		return nil, err
	}
	if len(transitions) > states {
		return nil, &Error{Kind: InvalidState, Message: "transitions given for an unknown state", State: StateID(states)}
	}
	for s, row := range transitions {
		for sym, targets := range row {
			if sym != Epsilon && !alphabet.Contains(sym) {
				return nil, &Error{Kind: InvalidSymbol, Message: "transition on a symbol outside the alphabet", State: StateID(s), Symbol: sym}
			}
			for _, t := range targets {
				if uint64(t) >= uint64(states) {
					return nil, &Error{Kind: InvalidState, Message: "transition target out of range", State: t}
				}
			}
		}
	}

	n := newNFA(newBase(states, alphabet, start, accept))
	for s, row := range transitions {
		for sym, targets := range row {
			for _, t := range targets {
				n.addTransition(StateID(s), sym, t)
			}
		}
	}
	n.Reset()
	return n, nil
}

func newNFA(b base) *NFA {
	return &NFA{
		base:  b,
		trans: make([]map[Symbol][]StateID, b.states),
	}
}

// emptyNFA returns the zero-state NFA over alphabet.
func emptyNFA(alphabet Alphabet) *NFA {
	return newNFA(base{alphabet: alphabet.Clone()})
}

func (n *NFA) addTransition(from StateID, sym Symbol, to StateID) {
	row := n.trans[from]
	if row == nil {
		row = make(map[Symbol][]StateID)
		n.trans[from] = row
	}
	if !slices.Contains(row[sym], to) {
		row[sym] = append(row[sym], to)
	}
}

// copyFrom adds every edge of src to n with state ids shifted by off.
func (n *NFA) copyFrom(src *NFA, off StateID) {
	for s, row := range src.trans {
		for sym, targets := range row {
			for _, t := range targets {
				n.addTransition(StateID(s)+off, sym, t+off)
			}
		}
	}
}

// Transitions returns the successors of state on sym, in insertion order.
// Unknown states and symbols outside the alphabet have no successors.
func (n *NFA) Transitions(state StateID, sym Symbol) []StateID {
	if uint64(state) >= uint64(n.states) {
		return nil
	}
	if sym != Epsilon && !n.alphabet.Contains(sym) {
		return nil
	}
	return slices.Clone(n.trans[state][sym])
}

// Clone returns a deep copy. The copy's cursor is at the start configuration.
func (n *NFA) Clone() *NFA {
	c := newNFA(n.base.clone())
	c.copyFrom(n, 0)
	c.Reset()
	return c
}

// String returns a human-readable summary of the automaton
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, accept: %v, alphabet: %v}",
		n.states, n.start, n.AcceptStates(), n.alphabet)
}

func (n *NFA) scratch() *sparse.Set {
	if n.visited == nil {
		n.visited = sparse.NewSet(n.states)
	} else if n.visited.Capacity() < n.states {
		n.visited.Resize(n.states)
	}
	n.visited.Clear()
	return n.visited
}

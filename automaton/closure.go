package automaton

import (
	"slices"

	"github.com/coregx/regfa/internal/stateset"
)

// EpsilonClosure returns every state reachable from states by zero or more
// epsilon moves, sorted ascending. The result includes the valid input
// states themselves; ids outside [0, States()) are ignored.
func (n *NFA) EpsilonClosure(states []StateID) []StateID {
	seen := n.scratch()
	stack := make([]StateID, 0, len(states))
	for _, s := range states {
		if uint64(s) < uint64(n.states) && seen.Insert(uint32(s)) {
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.trans[s][Epsilon] {
			if seen.Insert(uint32(t)) {
				stack = append(stack, t)
			}
		}
	}
	return sortedValues(seen.Values())
}

// Step returns the union of the successors of states on sym, sorted
// ascending and without epsilon closure.
func (n *NFA) Step(states []StateID, sym Symbol) []StateID {
	seen := n.scratch()
	if sym != Epsilon && !n.alphabet.Contains(sym) {
		return nil
	}
	for _, s := range states {
		if uint64(s) >= uint64(n.states) {
			continue
		}
		for _, t := range n.trans[s][sym] {
			seen.Insert(uint32(t))
		}
	}
	return sortedValues(seen.Values())
}

func sortedValues(values []uint32) []StateID {
	out := make([]StateID, len(values))
	for i, v := range values {
		out[i] = StateID(v)
	}
	slices.Sort(out)
	return out
}

// keyOf returns the bitset key of a state list, used for subset interning
// and cursor comparison.
func keyOf(states []StateID) stateset.StateSet {
	var set stateset.StateSet
	for _, s := range states {
		set.Insert(uint32(s))
	}
	return set
}

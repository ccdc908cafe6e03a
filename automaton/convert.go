package automaton

import "github.com/coregx/regfa/internal/conv"

// NFAFromDFA returns the NFA view of d without its terminal states.
//
// Remaining states keep their relative order and are renumbered densely.
// A transition is kept when both of its ends survive. If the start state is
// terminal, the result has zero states and keeps the alphabet.
func NFAFromDFA(d *DFA) *NFA {
	if d.states == 0 || d.IsTerminalState(d.start) {
		return emptyNFA(d.alphabet)
	}

	newID := make([]StateID, d.states)
	kept := 0
	for s := 0; s < d.states; s++ {
		if d.terminal[s] {
			newID[s] = StateNotFound
			continue
		}
		newID[s] = StateID(conv.IntToUint32(kept))
		kept++
	}

	k := d.index.len()
	n := newNFA(base{
		states:   kept,
		alphabet: d.alphabet.Clone(),
		start:    newID[d.start],
	})
	for s := 0; s < d.states; s++ {
		from := newID[s]
		if from == StateNotFound {
			continue
		}
		if d.accept.Contains(uint32(s)) {
			n.accept.Insert(uint32(from))
		}
		for c := 0; c < k; c++ {
			if to := newID[d.table[s*k+c]]; to != StateNotFound {
				n.addTransition(from, d.index.symbol(c), to)
			}
		}
	}
	n.Reset()
	return n
}

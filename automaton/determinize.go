package automaton

import (
	"github.com/coregx/regfa/internal/conv"
	"github.com/coregx/regfa/internal/stateset"
)

// NewDFAFromNFA builds the minimal DFA recognizing the language of n.
//
// Subsets of NFA states are explored breadth-first from the epsilon closure
// of the start state. Each distinct subset becomes one DFA state, numbered in
// discovery order, and has exactly one successor per alphabet symbol; the
// empty subset is the dead state. The result is minimized before returning.
//
// The NFA's cursor is left at its start configuration.
func NewDFAFromNFA(n *NFA) *DFA {
	d := newDFA(base{alphabet: n.alphabet.Clone()})
	if n.states == 0 {
		d.finish()
		return d
	}

	k := d.index.len()
	symbols := make([]Symbol, k)
	for c := range symbols {
		symbols[c] = d.index.symbol(c)
	}

	ids := stateset.NewMap()
	var subsets [][]StateID
	intern := func(set []StateID) StateID {
		key := keyOf(set)
		if id, ok := ids.Get(key); ok {
			return StateID(id)
		}
		id := conv.IntToUint32(len(subsets))
		ids.Put(key, id)
		subsets = append(subsets, set)
		return StateID(id)
	}

	var table []StateID
	var accept stateset.StateSet
	intern(n.EpsilonClosure([]StateID{n.start}))
	for head := 0; head < len(subsets); head++ {
		set := subsets[head]
		if n.IntersectsAccept(set) {
			accept.Insert(conv.IntToUint32(head))
		}
		for _, sym := range symbols {
			table = append(table, intern(n.EpsilonClosure(n.Step(set, sym))))
		}
	}

	d.states = len(subsets)
	d.start = 0
	d.accept = accept
	d.table = table
	n.Reset()
	d.Simplify()
	return d
}

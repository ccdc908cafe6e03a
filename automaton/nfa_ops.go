package automaton

import "github.com/coregx/regfa/internal/conv"

// Union returns an NFA accepting L(n) ∪ L(other). The result is
// canonicalized through determinization, minimization and conversion back.
// If either operand has zero states, the result is a copy of the other.
func (n *NFA) Union(other *NFA) *NFA {
	res, built := n.union(other)
	if built {
		return canonical(res)
	}
	return res
}

// Concat returns an NFA accepting L(n)·L(other), canonicalized like Union.
// If either operand has zero states, the result is a copy of the other.
func (n *NFA) Concat(other *NFA) *NFA {
	res, built := n.concat(other)
	if built {
		return canonical(res)
	}
	return res
}

// Star returns an NFA accepting L(n)*. Unlike Union and Concat the result
// is not canonicalized. The zero-state NFA is returned unchanged.
func (n *NFA) Star() *NFA {
	res, _ := n.star()
	return res
}

// Simplify replaces n with its canonical form: the NFA view of its minimal
// DFA, without dead states.
func (n *NFA) Simplify() {
	if n.states == 0 {
		n.Reset()
		return
	}
	*n = *canonical(n)
}

func canonical(n *NFA) *NFA {
	return NFAFromDFA(NewDFAFromNFA(n))
}

// union builds the Thompson union: a fresh start state 0 with epsilon moves
// to both shifted operands. The bool reports whether a new automaton was
// built rather than an operand copied.
func (n *NFA) union(other *NFA) (*NFA, bool) {
	if other.states == 0 {
		return n.Clone(), false
	}
	if n.states == 0 {
		return other.Clone(), false
	}

	offA := StateID(1)
	offB := StateID(conv.IntToUint32(n.states + 1))
	res := newNFA(base{
		states:   n.states + other.states + 1,
		alphabet: n.alphabet.Union(other.alphabet),
		start:    0,
	})
	res.copyFrom(n, offA)
	res.copyFrom(other, offB)
	res.addTransition(0, Epsilon, n.start+offA)
	res.addTransition(0, Epsilon, other.start+offB)
	n.accept.Each(func(s uint32) {
		res.accept.Insert(s + uint32(offA))
	})
	other.accept.Each(func(s uint32) {
		res.accept.Insert(s + uint32(offB))
	})
	res.Reset()
	return res, true
}

// concat chains n into other: every accept state of n gets an epsilon move
// to the start of other, and only the accept states of other remain.
func (n *NFA) concat(other *NFA) (*NFA, bool) {
	if other.states == 0 {
		return n.Clone(), false
	}
	if n.states == 0 {
		return other.Clone(), false
	}

	off := StateID(conv.IntToUint32(n.states))
	res := newNFA(base{
		states:   n.states + other.states,
		alphabet: n.alphabet.Union(other.alphabet),
		start:    n.start,
	})
	res.copyFrom(n, 0)
	res.copyFrom(other, off)
	n.accept.Each(func(s uint32) {
		res.addTransition(StateID(s), Epsilon, other.start+off)
	})
	other.accept.Each(func(s uint32) {
		res.accept.Insert(s + uint32(off))
	})
	res.Reset()
	return res, true
}

// star appends a fresh accepting start state with an epsilon move into n.
// Every accept state of n loops back to it, so the only accept state is the
// new start.
func (n *NFA) star() (*NFA, bool) {
	if n.states == 0 {
		return n.Clone(), false
	}

	start := StateID(conv.IntToUint32(n.states))
	res := newNFA(base{
		states:   n.states + 1,
		alphabet: n.alphabet.Clone(),
		start:    start,
	})
	res.copyFrom(n, 0)
	res.addTransition(start, Epsilon, n.start)
	n.accept.Each(func(s uint32) {
		res.addTransition(StateID(s), Epsilon, start)
	})
	res.accept.Insert(uint32(start))
	res.Reset()
	return res, true
}

package automaton

// Union returns the minimal DFA accepting L(d) ∪ L(other).
func (d *DFA) Union(other *DFA) *DFA {
	res, _ := NFAFromDFA(d).union(NFAFromDFA(other))
	return NewDFAFromNFA(res)
}

// Concat returns the minimal DFA accepting L(d)·L(other).
func (d *DFA) Concat(other *DFA) *DFA {
	res, _ := NFAFromDFA(d).concat(NFAFromDFA(other))
	return NewDFAFromNFA(res)
}

// Star returns the minimal DFA accepting L(d)*. A DFA whose language is
// empty yields the zero-state DFA.
func (d *DFA) Star() *DFA {
	res, _ := NFAFromDFA(d).star()
	return NewDFAFromNFA(res)
}

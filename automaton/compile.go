package automaton

// NewSymbolNFA returns the two-state NFA accepting exactly the one-symbol
// string sym. The alphabet is extended with sym when it does not cover it.
// Epsilon yields the zero-state NFA, as does an alphabet that fails
// validation (an inverted range, or one reaching Epsilon); the invalid
// alphabet is dropped in that case.
func NewSymbolNFA(sym Symbol, alphabet Alphabet) *NFA {
	if alphabet.validate() != nil {
		return emptyNFA(nil)
	}
	if sym == Epsilon {
		return emptyNFA(alphabet)
	}
	n := newNFA(newBase(2, alphabet.With(sym), 0, []StateID{1}))
	n.addTransition(0, sym, 1)
	n.Reset()
	return n
}

// NewWildcardNFA returns the two-state NFA accepting any single symbol of
// alphabet. An invalid alphabet yields the zero-state NFA with no alphabet.
func NewWildcardNFA(alphabet Alphabet) *NFA {
	if alphabet.validate() != nil {
		return emptyNFA(nil)
	}
	n := newNFA(newBase(2, alphabet, 0, []StateID{1}))
	alphabet.Each(func(sym Symbol) {
		n.addTransition(0, sym, 1)
	})
	n.Reset()
	return n
}

// NewNFAFromPattern compiles pattern with DefaultConfig.
//
// Every rune of the pattern is an atom: '.' matches any of 'a'-'z' and any
// other rune matches itself. An atom followed by '*' may repeat zero or more
// times. A '*' with no preceding atom is ignored. The empty pattern yields
// the zero-state NFA.
func NewNFAFromPattern(pattern string) *NFA {
	return compilePattern(pattern, DefaultConfig())
}

// CompileNFA compiles pattern with the given configuration.
func CompileNFA(pattern string, config Config) (*NFA, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return compilePattern(pattern, config), nil
}

func compilePattern(pattern string, config Config) *NFA {
	runes := []rune(pattern)
	result := emptyNFA(config.Alphabet)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == config.Repeat {
			continue
		}

		var atom *NFA
		if r == config.Wildcard {
			atom = NewWildcardNFA(config.Alphabet)
		} else {
			atom = NewSymbolNFA(Symbol(r), config.Alphabet)
		}
		if i+1 < len(runes) && runes[i+1] == config.Repeat {
			atom = atom.Star()
			i++
		}
		result = result.Concat(atom)
	}
	return result
}

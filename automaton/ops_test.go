package automaton

import (
	"testing"
)

// splits reports whether s = s1 s2 with in1(s1) and in2(s2).
func splits(s string, in1, in2 func(string) bool) bool {
	for i := 0; i <= len(s); i++ {
		if in1(s[:i]) && in2(s[i:]) {
			return true
		}
	}
	return false
}

// starOf reports whether s is a concatenation of zero or more words of in.
func starOf(s string, in func(string) bool) bool {
	ok := make([]bool, len(s)+1)
	ok[0] = true
	for j := 1; j <= len(s); j++ {
		for i := 0; i < j && !ok[j]; i++ {
			ok[j] = ok[i] && in(s[i:j])
		}
	}
	return ok[len(s)]
}

var opPatterns = []string{"a", "ab", "a*b", "b*", ".a", "ab*a", "c"}

func TestNFA_UnionLanguage(t *testing.T) {
	inputs := allStrings("abc", 4)
	for _, pa := range opPatterns {
		for _, pb := range opPatterns {
			a, b := NewNFAFromPattern(pa), NewNFAFromPattern(pb)
			ra := toRegexp(t, pa, DefaultConfig())
			rb := toRegexp(t, pb, DefaultConfig())
			u := a.Union(b)
			for _, in := range inputs {
				want := ra.MatchString(in) || rb.MatchString(in)
				if got := u.Recognize(in); got != want {
					t.Errorf("(%s)|(%s) on %q = %v, want %v", pa, pb, in, got, want)
				}
			}
		}
	}
}

func TestNFA_ConcatLanguage(t *testing.T) {
	inputs := allStrings("abc", 4)
	for _, pa := range opPatterns {
		for _, pb := range opPatterns {
			a, b := NewNFAFromPattern(pa), NewNFAFromPattern(pb)
			ra := toRegexp(t, pa, DefaultConfig())
			rb := toRegexp(t, pb, DefaultConfig())
			c := a.Concat(b)
			for _, in := range inputs {
				want := splits(in, ra.MatchString, rb.MatchString)
				if got := c.Recognize(in); got != want {
					t.Errorf("(%s)(%s) on %q = %v, want %v", pa, pb, in, got, want)
				}
			}
		}
	}
}

func TestNFA_StarLanguage(t *testing.T) {
	inputs := allStrings("abc", 5)
	for _, p := range append(opPatterns, "a*b", "ab*") {
		r := toRegexp(t, p, DefaultConfig())
		s := NewNFAFromPattern(p).Star()
		d := NewDFAFromNFA(NewNFAFromPattern(p)).Star()
		for _, in := range inputs {
			want := starOf(in, r.MatchString)
			if got := s.Recognize(in); got != want {
				t.Errorf("NFA (%s)* on %q = %v, want %v", p, in, got, want)
			}
			if got := d.Recognize(in); got != want {
				t.Errorf("DFA (%s)* on %q = %v, want %v", p, in, got, want)
			}
		}
	}
}

func TestDFA_CombinatorsMatchNFA(t *testing.T) {
	inputs := allStrings("abc", 4)
	for _, pa := range opPatterns {
		for _, pb := range opPatterns {
			na, nb := NewNFAFromPattern(pa), NewNFAFromPattern(pb)
			da, db := NewDFAFromNFA(na), NewDFAFromNFA(nb)
			pairs := []struct {
				op  string
				nfa *NFA
				dfa *DFA
			}{
				{"union", na.Union(nb), da.Union(db)},
				{"concat", na.Concat(nb), da.Concat(db)},
			}
			for _, p := range pairs {
				for _, in := range inputs {
					if p.nfa.Recognize(in) != p.dfa.Recognize(in) {
						t.Errorf("%s(%s, %s) on %q: NFA and DFA disagree", p.op, pa, pb, in)
					}
				}
			}
		}
	}
}

func TestNFA_DegenerateOperands(t *testing.T) {
	empty := NewNFAFromPattern("")
	a := NewNFAFromPattern("ab")

	for name, got := range map[string]*NFA{
		"a|empty": a.Union(empty),
		"empty|a": empty.Union(a),
		"a.empty": a.Concat(empty),
		"empty.a": empty.Concat(a),
	} {
		if !got.Recognize("ab") || got.Recognize("a") {
			t.Errorf("%s: language changed", name)
		}
		if got.States() != a.States() {
			t.Errorf("%s: States() = %d, want %d", name, got.States(), a.States())
		}
	}
	if s := empty.Star(); s.States() != 0 {
		t.Errorf("star of empty NFA has %d states", s.States())
	}
	if u := empty.Union(empty); u.States() != 0 {
		t.Errorf("union of empty NFAs has %d states", u.States())
	}
}

func TestNFA_UnionMergesAlphabets(t *testing.T) {
	a := NewSymbolNFA('A', nil)
	b := NewSymbolNFA('b', nil)
	u := a.Union(b)
	if !u.IsSymbolInAlphabet('A') || !u.IsSymbolInAlphabet('b') {
		t.Errorf("alphabet %v does not cover both operands", u.Alphabet())
	}
	if !u.Recognize("A") || !u.Recognize("b") || u.Recognize("Ab") {
		t.Error("union of literals recognizes the wrong language")
	}
}

func TestNFA_StarDoesNotOverAccept(t *testing.T) {
	// (a*b)* must not accept strings ending in a.
	inner := NewNFAFromPattern("a*b")
	s := inner.Star()
	for in, want := range map[string]bool{
		"":    true,
		"b":   true,
		"ab":  true,
		"abb": true,
		"a":   false,
		"aba": false,
	} {
		if got := s.Recognize(in); got != want {
			t.Errorf("(a*b)* on %q = %v, want %v", in, got, want)
		}
	}
}

func TestNFA_SimplifyIsCanonical(t *testing.T) {
	raw := mustNFA(t, 4, Alphabet{Range('a', 'b')}, 0, []StateID{3}, []map[Symbol][]StateID{
		{Epsilon: {1, 2}},
		{'a': {3}},
		{'a': {3}},
	})
	raw.Simplify()
	if raw.States() != 2 {
		t.Errorf("States() = %d, want 2", raw.States())
	}
	if !raw.Recognize("a") || raw.Recognize("b") || raw.Recognize("") {
		t.Error("Simplify changed the language")
	}
	again := raw.Clone()
	again.Simplify()
	if !NewDFAFromNFA(again).Equal(NewDFAFromNFA(raw)) {
		t.Error("Simplify is not idempotent")
	}
}

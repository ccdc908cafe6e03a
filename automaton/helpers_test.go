package automaton

import (
	"regexp"
	"strings"
	"testing"
)

// allStrings returns every string over symbols of length at most maxLen.
func allStrings(symbols string, maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, prefix := range frontier {
			for _, r := range symbols {
				next = append(next, prefix+string(r))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

// toRegexp translates a pattern under cfg into an anchored stdlib regexp.
func toRegexp(t testing.TB, pattern string, cfg Config) *regexp.Regexp {
	t.Helper()
	var wildcard strings.Builder
	wildcard.WriteString("[")
	for _, r := range cfg.Alphabet.Normalize() {
		wildcard.WriteString(regexp.QuoteMeta(string(rune(r.Lo))))
		if r.Hi != r.Lo {
			wildcard.WriteString("-")
			wildcard.WriteString(regexp.QuoteMeta(string(rune(r.Hi))))
		}
	}
	wildcard.WriteString("]")

	var sb strings.Builder
	sb.WriteString("^(?:")
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == cfg.Repeat {
			continue
		}
		sb.WriteString("(?:")
		if r == cfg.Wildcard {
			sb.WriteString(wildcard.String())
		} else {
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
		sb.WriteString(")")
		if i+1 < len(runes) && runes[i+1] == cfg.Repeat {
			sb.WriteString("*")
		}
	}
	sb.WriteString(")$")
	return regexp.MustCompile(sb.String())
}

func mustNFA(t testing.TB, states int, alphabet Alphabet, start StateID, accept []StateID, trans []map[Symbol][]StateID) *NFA {
	t.Helper()
	n, err := NewNFA(states, alphabet, start, accept, trans)
	if err != nil {
		t.Fatalf("NewNFA: %v", err)
	}
	return n
}

func mustDFA(t testing.TB, states int, alphabet Alphabet, start StateID, accept []StateID, trans []map[Symbol]StateID) *DFA {
	t.Helper()
	d, err := NewDFA(states, alphabet, start, accept, trans)
	if err != nil {
		t.Fatalf("NewDFA: %v", err)
	}
	return d
}

func substrings(pairs ...int) []Substring {
	var out []Substring
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Substring{Start: pairs[i], Length: pairs[i+1]})
	}
	return out
}

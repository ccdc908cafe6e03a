package automaton

import "slices"

// Reset moves the cursor to the epsilon closure of the start state.
func (n *NFA) Reset() {
	if n.states == 0 {
		n.current = nil
		return
	}
	n.current = n.EpsilonClosure([]StateID{n.start})
}

// CurrentStates returns the cursor, sorted ascending.
func (n *NFA) CurrentStates() []StateID {
	return slices.Clone(n.current)
}

// Receive advances the cursor by one symbol. A symbol outside the alphabet
// empties the cursor.
func (n *NFA) Receive(sym Symbol) {
	if len(n.current) == 0 {
		return
	}
	n.current = n.EpsilonClosure(n.Step(n.current, sym))
}

// Recognize reports whether s belongs to the language of n.
// It resets the cursor first.
func (n *NFA) Recognize(s string) bool {
	n.Reset()
	for _, r := range s {
		n.Receive(Symbol(r))
		if len(n.current) == 0 {
			return false
		}
	}
	return n.IntersectsAccept(n.current)
}

// FindRecognizedSubstrings returns all non-overlapping leftmost-longest
// matches in s as byte offsets and lengths.
func (n *NFA) FindRecognizedSubstrings(s string) []Substring {
	return n.FindAll([]byte(s), -1)
}

// FindAll returns at most limit matches in b; a negative limit returns all.
//
// The scan keeps one run from the start configuration. When a symbol empties
// the cursor, the longest accepted prefix of the run is emitted and a new run
// begins at the current position. The failing symbol is consumed only when
// the run had not left the start configuration. Only the first run records
// an empty match for an accepting start.
func (n *NFA) FindAll(b []byte, limit int) []Substring {
	n.Reset()
	if n.states == 0 || limit == 0 {
		return nil
	}

	begin := n.current
	beginKey := keyOf(begin)
	dec := newDecoder(b)
	var out []Substring

	pend := pending{start: 0, length: noMatch}
	if n.IntersectsAccept(begin) {
		pend.length = 0
	}
	for pos := 0; pos < len(b); {
		sym, width := dec.at(pos)
		prev := n.current
		n.Receive(sym)

		if len(n.current) == 0 {
			out = pend.flush(out)
			if limitReached(out, limit) {
				return out
			}
			if keyOf(prev).Equal(beginKey) {
				pos += width
			}
			n.current = begin
			pend = pending{start: pos, length: noMatch}
			continue
		}

		pos += width
		if n.IntersectsAccept(n.current) {
			pend.length = pos - pend.start
		}
	}
	out = pend.flush(out)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

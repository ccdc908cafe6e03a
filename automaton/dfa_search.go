package automaton

import (
	"unicode/utf8"

	"github.com/coregx/regfa/prefilter"
)

// Reset moves the cursor to the start state. The cursor of a zero-state DFA
// is StateNotFound.
func (d *DFA) Reset() {
	if d.states == 0 {
		d.current = StateNotFound
		return
	}
	d.current = d.start
}

// Current returns the cursor.
func (d *DFA) Current() StateID {
	return d.current
}

// Receive advances the cursor by one symbol. Once the cursor is
// StateNotFound it stays there until Reset.
func (d *DFA) Receive(sym Symbol) {
	if d.current == StateNotFound {
		return
	}
	d.current = d.Transition(d.current, sym)
}

// Recognize reports whether s belongs to the language of d.
// It resets the cursor first.
func (d *DFA) Recognize(s string) bool {
	d.Reset()
	for _, r := range s {
		d.Receive(Symbol(r))
		if d.isDead(d.current) {
			return false
		}
	}
	return d.IsAcceptState(d.current)
}

// FindRecognizedSubstrings returns all non-overlapping leftmost-longest
// matches in s as byte offsets and lengths.
func (d *DFA) FindRecognizedSubstrings(s string) []Substring {
	return d.FindAll([]byte(s), -1)
}

// FindAll returns at most limit matches in b; a negative limit returns all.
//
// A run starts at the start state. On every symbol that leads to a terminal
// state or outside the alphabet, the longest accepted prefix of the run is
// emitted and the run restarts at the current position. The failing symbol
// is consumed only when the run was still at the start state. An accepting
// start state records an empty match for the first run only.
//
// After Accelerate, positions whose symbol cannot leave the start state are
// skipped in bulk whenever the run is at the start state with nothing
// pending. The matches are the same as without the prefilter.
func (d *DFA) FindAll(b []byte, limit int) []Substring {
	d.Reset()
	if d.states == 0 || limit == 0 {
		return nil
	}

	k := d.index.len()
	begin := d.start
	dec := newDecoder(b)
	var out []Substring

	pend := pending{start: 0, length: noMatch}
	if d.IsAcceptState(begin) {
		pend.length = 0
	}
	for pos := 0; pos < len(b); {
		if d.prefilter != nil && d.current == begin && pend.length == noMatch {
			next := d.prefilter.Find(b, pos)
			if next < 0 {
				break
			}
			if next > pos {
				pos = next
				pend.start = next
			}
		}

		sym, width := dec.at(pos)
		prev := d.current
		if c, ok := d.index.column(sym); ok {
			d.current = d.table[int(prev)*k+c]
		} else {
			d.current = StateNotFound
		}

		if d.isDead(d.current) {
			out = pend.flush(out)
			if limitReached(out, limit) {
				return out
			}
			if prev == begin {
				pos += width
			}
			d.current = begin
			pend = pending{start: pos, length: noMatch}
			continue
		}

		pos += width
		if d.accept.Contains(uint32(d.current)) {
			pend.length = pos - pend.start
		}
	}
	out = pend.flush(out)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Accelerate installs a prefilter that skips input the start state cannot
// leave on. It reports whether a prefilter was installed, which requires
// every symbol that leaves the start state to be ASCII. Any change to the
// transition table drops the prefilter.
func (d *DFA) Accelerate() bool {
	d.prefilter = nil
	if d.states == 0 {
		return false
	}

	k := d.index.len()
	row := d.table[int(d.start)*k : int(d.start+1)*k]
	var needles []byte
	for c, t := range row {
		if d.terminal[t] {
			continue
		}
		sym := d.index.symbol(c)
		if sym >= utf8.RuneSelf {
			return false
		}
		needles = append(needles, byte(sym))
	}

	pf := prefilter.New(needles)
	if pf == nil {
		return false
	}
	d.prefilter = pf
	return true
}

// Prefilter returns the prefilter installed by Accelerate, or nil.
func (d *DFA) Prefilter() prefilter.Prefilter {
	return d.prefilter
}

package automaton

import (
	"fmt"
	"slices"

	"github.com/coregx/regfa/prefilter"
)

// DFA is a total deterministic finite automaton.
//
// Transitions are stored in a dense table with one row per state and one
// column per alphabet symbol, so every state has exactly one successor for
// every symbol. A terminal state is a non-accepting state whose every
// transition loops back to itself; entering one ends a scan run.
//
// A DFA with zero states is valid and matches nothing.
type DFA struct {
	base

	index symbolIndex

	// table[s*index.len()+c] is the successor of s on column c.
	table []StateID

	// terminal[s] is true when s is terminal. Recomputed by finish.
	terminal []bool

	current StateID

	// prefilter skips input while the cursor is at the start state.
	// Set by Accelerate, nil otherwise.
	prefilter prefilter.Prefilter
}

// NewDFA creates a DFA from an explicit transition table.
//
// transitions must have one row per state and every row must cover every
// alphabet symbol; otherwise ErrNotTotal is returned. The table is taken as
// given and not minimized.
func NewDFA(states int, alphabet Alphabet, start StateID, accept []StateID, transitions []map[Symbol]StateID) (*DFA, error) {
	if err := checkShape(states, alphabet, start, accept); err != nil {
		return nil, err
	}
	if len(transitions) > states {
		return nil, &Error{Kind: InvalidState, Message: "transitions given for an unknown state", State: StateID(states)}
	}

	d := newDFA(newBase(states, alphabet, start, accept))
	k := d.index.len()
	for s, row := range transitions {
		for sym, t := range row {
			c, ok := d.index.column(sym)
			if !ok {
				return nil, &Error{Kind: InvalidSymbol, Message: "transition on a symbol outside the alphabet", State: StateID(s), Symbol: sym}
			}
			if uint64(t) >= uint64(states) {
				return nil, &Error{Kind: InvalidState, Message: "transition target out of range", State: t}
			}
			d.table[s*k+c] = t
		}
	}
	for i, t := range d.table {
		if t == StateNotFound {
			return nil, &Error{
				Kind:    NotTotal,
				Message: "missing transition",
				State:   StateID(i / k),
				Symbol:  d.index.symbol(i % k),
			}
		}
	}

	d.finish()
	return d, nil
}

// newDFA allocates a DFA whose table is filled with StateNotFound.
func newDFA(b base) *DFA {
	d := &DFA{
		base:  b,
		index: newSymbolIndex(b.alphabet),
	}
	d.table = make([]StateID, b.states*d.index.len())
	for i := range d.table {
		d.table[i] = StateNotFound
	}
	return d
}

// finish recomputes derived data after the table changed and resets the
// cursor. Any prefilter is dropped.
func (d *DFA) finish() {
	k := d.index.len()
	d.terminal = make([]bool, d.states)
	for s := 0; s < d.states; s++ {
		if d.accept.Contains(uint32(s)) {
			continue
		}
		loops := true
		for _, t := range d.table[s*k : (s+1)*k] {
			if t != StateID(s) {
				loops = false
				break
			}
		}
		d.terminal[s] = loops
	}
	d.prefilter = nil
	d.Reset()
}

// Transition returns the successor of state on sym, or StateNotFound when
// the state is unknown or sym is outside the alphabet.
func (d *DFA) Transition(state StateID, sym Symbol) StateID {
	if uint64(state) >= uint64(d.states) {
		return StateNotFound
	}
	c, ok := d.index.column(sym)
	if !ok {
		return StateNotFound
	}
	return d.table[int(state)*d.index.len()+c]
}

// IsTerminalState reports whether s is terminal. StateNotFound is not a
// state and is never terminal, although scanning treats it as dead.
func (d *DFA) IsTerminalState(s StateID) bool {
	return uint64(s) < uint64(d.states) && d.terminal[s]
}

// TerminalStates returns the terminal states in increasing order.
func (d *DFA) TerminalStates() []StateID {
	var out []StateID
	for s, t := range d.terminal {
		if t {
			out = append(out, StateID(s))
		}
	}
	return out
}

// isDead reports whether a scan run ends in s.
func (d *DFA) isDead(s StateID) bool {
	return s == StateNotFound || d.terminal[s]
}

// Clone returns a deep copy with its own cursor. A prefilter installed by
// Accelerate is shared, as prefilters are immutable.
func (d *DFA) Clone() *DFA {
	return &DFA{
		base:      d.base.clone(),
		index:     d.index,
		table:     slices.Clone(d.table),
		terminal:  slices.Clone(d.terminal),
		current:   d.current,
		prefilter: d.prefilter,
	}
}

// Equal reports whether both automata have the same structure: state count,
// alphabet, start state, accept states and transition table.
func (d *DFA) Equal(other *DFA) bool {
	return d.states == other.states &&
		d.alphabet.Equal(other.alphabet) &&
		(d.states == 0 || d.start == other.start) &&
		d.accept.Equal(other.accept) &&
		slices.Equal(d.table, other.table)
}

// String returns a human-readable summary of the automaton
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states: %d, start: %d, accept: %v, terminal: %v, alphabet: %v}",
		d.states, d.start, d.AcceptStates(), d.TerminalStates(), d.alphabet)
}

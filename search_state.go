package regfa

import (
	"sync"

	"github.com/coregx/regfa/automaton"
)

// cursorPool hands out private copies of a compiled DFA.
//
// Scanning moves the cursor stored in a DFA, so concurrent searches on the
// same Regex each need their own copy. The template is never scanned.
type cursorPool struct {
	pool     sync.Pool
	template *automaton.DFA
}

func newCursorPool(template *automaton.DFA) *cursorPool {
	p := &cursorPool{template: template}
	p.pool = sync.Pool{
		New: func() any {
			return p.template.Clone()
		},
	}
	return p
}

// get retrieves a DFA from the pool, cloning the template if necessary.
func (p *cursorPool) get() *automaton.DFA {
	return p.pool.Get().(*automaton.DFA)
}

// put returns a DFA to the pool with its cursor reset.
func (p *cursorPool) put(d *automaton.DFA) {
	if d == nil {
		return
	}
	d.Reset()
	p.pool.Put(d)
}

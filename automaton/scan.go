package automaton

import (
	"unicode/utf8"

	"github.com/coregx/regfa/simd"
)

// noMatch marks a pending match that has not reached an accept state.
const noMatch = -1

// pending is the match candidate of the current scan run.
type pending struct {
	start  int
	length int
}

func (p pending) flush(out []Substring) []Substring {
	if p.length == noMatch {
		return out
	}
	return append(out, Substring{Start: p.start, Length: p.length})
}

// decoder reads symbols from a byte string. Pure ASCII input skips UTF-8
// decoding.
type decoder struct {
	b     []byte
	ascii bool
}

func newDecoder(b []byte) decoder {
	return decoder{b: b, ascii: simd.IsASCII(b)}
}

// at returns the symbol at byte offset pos and its width in bytes.
// Invalid UTF-8 decodes to U+FFFD with width 1.
func (d decoder) at(pos int) (Symbol, int) {
	if d.ascii {
		return Symbol(d.b[pos]), 1
	}
	if c := d.b[pos]; c < utf8.RuneSelf {
		return Symbol(c), 1
	}
	r, w := utf8.DecodeRune(d.b[pos:])
	return Symbol(r), w
}

// limitReached reports whether n matches satisfy the limit. A negative limit
// means no limit.
func limitReached(out []Substring, limit int) bool {
	return limit >= 0 && len(out) >= limit
}

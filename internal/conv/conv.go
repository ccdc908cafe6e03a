// Package conv provides checked integer conversions for state ids.
//
// State counts are plain ints while state ids are uint32. A count that does
// not fit means an automaton grew past the id space, which is a programming
// error, so the helpers panic instead of returning an error.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// uint comparison avoids overflow on 32-bit platforms
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// Package simd provides byte search primitives used by the scanner's
// prefilter: single, double and triple needle search and an ASCII check.
//
// The searches process eight bytes per iteration with SWAR (SIMD Within A
// Register) arithmetic. On x86-64 CPUs with AVX2, single needle searches over
// larger inputs are delegated to bytes.IndexByte, whose runtime assembly
// uses vector instructions on those CPUs.
package simd

import "golang.org/x/sys/cpu"

// hasAVX2 is set at package initialization from CPU feature detection.
var hasAVX2 = cpu.X86.HasAVX2

// vectorThreshold is the input size from which the vectorized runtime
// search beats the SWAR loop.
const vectorThreshold = 64

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// broadcast replicates b into every byte of a uint64.
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

// zeroBytes returns a mask with the high bit set for every zero byte of v.
// Bits above the first zero byte may be false positives, so callers only
// use the lowest set bit.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

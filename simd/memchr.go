package simd

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o') // 4
func Memchr(haystack []byte, needle byte) int {
	if hasAVX2 && len(haystack) >= vectorThreshold {
		return bytes.IndexByte(haystack, needle)
	}
	m := broadcast(needle)
	return scan(haystack, func(chunk uint64) uint64 {
		return zeroBytes(chunk ^ m)
	}, func(b byte) bool {
		return b == needle
	})
}

// Memchr2 returns the index of the first instance of needle1 or needle2,
// or -1 if neither is present.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	m1, m2 := broadcast(needle1), broadcast(needle2)
	return scan(haystack, func(chunk uint64) uint64 {
		return zeroBytes(chunk^m1) | zeroBytes(chunk^m2)
	}, func(b byte) bool {
		return b == needle1 || b == needle2
	})
}

// Memchr3 returns the index of the first instance of any of the three
// needles, or -1 if none is present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	m1, m2, m3 := broadcast(needle1), broadcast(needle2), broadcast(needle3)
	return scan(haystack, func(chunk uint64) uint64 {
		return zeroBytes(chunk^m1) | zeroBytes(chunk^m2) | zeroBytes(chunk^m3)
	}, func(b byte) bool {
		return b == needle1 || b == needle2 || b == needle3
	})
}

// scan walks haystack in little-endian 8-byte chunks. chunkMatch returns a
// zeroBytes style mask for a chunk; byteMatch handles the tail.
func scan(haystack []byte, chunkMatch func(uint64) uint64, byteMatch func(byte) bool) int {
	idx := 0
	for idx+8 <= len(haystack) {
		if mask := chunkMatch(binary.LittleEndian.Uint64(haystack[idx:])); mask != 0 {
			return idx + bits.TrailingZeros64(mask)/8
		}
		idx += 8
	}
	for ; idx < len(haystack); idx++ {
		if byteMatch(haystack[idx]) {
			return idx
		}
	}
	return -1
}

package simd

import "encoding/binary"

// IsASCII reports whether every byte of data is below 0x80.
//
// The scanner uses it to pick a byte-per-symbol loop over UTF-8 decoding.
func IsASCII(data []byte) bool {
	idx := 0
	for idx+8 <= len(data) {
		if binary.LittleEndian.Uint64(data[idx:])&hi8 != 0 {
			return false
		}
		idx += 8
	}
	for ; idx < len(data); idx++ {
		if data[idx] >= 0x80 {
			return false
		}
	}
	return true
}

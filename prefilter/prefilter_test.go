package prefilter

import (
	"bytes"
	"slices"
	"testing"
)

// naiveFind is the reference the prefilters are checked against.
func naiveFind(haystack []byte, start int, needles []byte) int {
	for i := start; i < len(haystack); i++ {
		if bytes.IndexByte(needles, haystack[i]) >= 0 {
			return i
		}
	}
	return -1
}

func TestNew_Strategy(t *testing.T) {
	tests := []struct {
		name    string
		needles []byte
		want    string
	}{
		{"empty", nil, "none"},
		{"one", []byte("a"), "memchr"},
		{"duplicates collapse", []byte("aaa"), "memchr"},
		{"two", []byte("ba"), "memchr2"},
		{"three", []byte("abc"), "memchr3"},
		{"many", []byte("abcdefg"), "aho-corasick"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := New(tt.needles)
			var got string
			switch pf.(type) {
			case none:
				got = "none"
			case *memchr:
				got = "memchr"
			case *memchr2:
				got = "memchr2"
			case *memchr3:
				got = "memchr3"
			case *ahoCorasick:
				got = "aho-corasick"
			}
			if got != tt.want {
				t.Errorf("New(%q) strategy = %s, want %s", tt.needles, got, tt.want)
			}
		})
	}
}

func TestPrefilter_Find(t *testing.T) {
	haystack := []byte("the quick brown fox jumps over the lazy dog")
	needleSets := [][]byte{
		[]byte("z"),
		[]byte("qx"),
		[]byte("jvy"),
		[]byte("aeiou"),
		[]byte("abcdefghijklmnopqrstuvwxyz"),
		[]byte("#"),
	}
	for _, needles := range needleSets {
		pf := New(needles)
		if pf == nil {
			t.Fatalf("New(%q) returned nil", needles)
		}
		for start := 0; start <= len(haystack); start++ {
			got := pf.Find(haystack, start)
			want := naiveFind(haystack, start, needles)
			if got != want {
				t.Fatalf("needles %q: Find(start=%d) = %d, want %d", needles, start, got, want)
			}
		}
	}
}

func TestPrefilter_Needles(t *testing.T) {
	pf := New([]byte("dcba"))
	if got := pf.Needles(); !slices.Equal(got, []byte("abcd")) {
		t.Errorf("Needles() = %q, want %q", got, "abcd")
	}
	if got := New(nil).Needles(); got != nil {
		t.Errorf("Needles() of empty prefilter = %q, want nil", got)
	}
}

func TestPrefilter_NoneNeverMatches(t *testing.T) {
	if got := New(nil).Find([]byte("anything"), 0); got != -1 {
		t.Errorf("Find = %d, want -1", got)
	}
}

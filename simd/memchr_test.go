package simd

import (
	"bytes"
	"strings"
	"testing"
)

func TestMemchr(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   byte
		want     int
	}{
		{"empty", "", 'a', -1},
		{"single hit", "a", 'a', 0},
		{"short miss", "hello", 'z', -1},
		{"short hit", "hello", 'l', 2},
		{"chunk boundary", "abcdefgh" + "x", 'x', 8},
		{"second chunk", "abcdefghijklmnop", 'n', 13},
		{"long tail", strings.Repeat("a", 100) + "b", 'b', 100},
		{"high byte", "abc\xffdef", 0xff, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Memchr([]byte(tt.haystack), tt.needle); got != tt.want {
				t.Errorf("Memchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

func TestMemchr_MatchesIndexByte(t *testing.T) {
	haystack := []byte(strings.Repeat("the quick brown fox ", 20))
	for n := 0; n < 256; n++ {
		needle := byte(n)
		for _, start := range []int{0, 1, 7, 8, 63, 64, 200} {
			h := haystack[start:]
			if got, want := Memchr(h, needle), bytes.IndexByte(h, needle); got != want {
				t.Fatalf("Memchr(start=%d, %q) = %d, want %d", start, needle, got, want)
			}
		}
	}
}

func TestMemchr2(t *testing.T) {
	h := []byte("zzzzzzzzzzzzbzzzzzza")
	if got := Memchr2(h, 'a', 'b'); got != 12 {
		t.Errorf("Memchr2 = %d, want 12", got)
	}
	if got := Memchr2(h, 'x', 'y'); got != -1 {
		t.Errorf("Memchr2 miss = %d, want -1", got)
	}
	if got := Memchr2([]byte("ab"), 'b', 'a'); got != 0 {
		t.Errorf("Memchr2 short = %d, want 0", got)
	}
}

func TestMemchr3(t *testing.T) {
	h := []byte("0123456789abcdef")
	if got := Memchr3(h, 'f', 'c', 'e'); got != 12 {
		t.Errorf("Memchr3 = %d, want 12", got)
	}
	if got := Memchr3(h, 'x', 'y', 'z'); got != -1 {
		t.Errorf("Memchr3 miss = %d, want -1", got)
	}
}

func TestIsASCII(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"abc", true},
		{strings.Repeat("x", 17), true},
		{"héllo", false},
		{strings.Repeat("x", 16) + "é", false},
		{"\x7f", true},
	}
	for _, tt := range tests {
		if got := IsASCII([]byte(tt.in)); got != tt.want {
			t.Errorf("IsASCII(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func BenchmarkMemchr(b *testing.B) {
	haystack := []byte(strings.Repeat("a", 4096) + "b")
	b.SetBytes(int64(len(haystack)))
	for i := 0; i < b.N; i++ {
		Memchr(haystack, 'b')
	}
}

// Package regfa provides a finite-automaton regular-expression engine.
//
// A pattern is compiled into a Thompson NFA, determinized by subset
// construction and minimized by partition refinement. The resulting DFA
// scans input for all non-overlapping leftmost-longest matches, restarting
// wherever the automaton dies.
//
// The pattern language is deliberately small: every rune is a literal atom,
// '.' matches any alphabet symbol and '*' repeats the preceding atom zero or
// more times. Alternation is available programmatically through Union.
//
// Basic usage:
//
//	re := regfa.MustCompile("ab*")
//	for _, loc := range re.FindAllStringIndex("xabbbyab", -1) {
//	    fmt.Println(loc) // [1 5], then [6 8]
//	}
//
// Advanced usage:
//
//	// Custom alphabet and operators
//	config := regfa.DefaultConfig()
//	config.Automaton = config.Automaton.WithAlphabet(automaton.Alphabet{automaton.Range('0', '9')})
//	re, err := regfa.CompileWithConfig("1.*0", config)
//
// Matching semantics differ from Go's regexp in two ways: a scan restarts at
// the symbol that killed the previous run rather than after the previous
// match, and an empty match is reported only at the start of the input.
// The empty pattern matches nothing.
package regfa

import (
	"fmt"

	"github.com/coregx/regfa/automaton"
)

// Regex represents a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines. Each search
// scans a private copy of the compiled DFA.
//
// Example:
//
//	re := regfa.MustCompile("a.c")
//	if re.MatchString("xxabcxx") {
//	    println("matched!")
//	}
type Regex struct {
	dfa     *automaton.DFA
	pattern string
	config  Config
	cursors *cursorPool
	stats   counters
}

// Compile compiles a pattern with DefaultConfig.
//
// Compilation never fails for the default configuration; the error is
// reserved for CompileWithConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regfa: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := regfa.DefaultConfig()
//	config.UsePrefilter = false
//	re, err := regfa.CompileWithConfig("ab*", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	n, err := automaton.CompileNFA(pattern, config.Automaton)
	if err != nil {
		return nil, err
	}
	return newRegex(automaton.NewDFAFromNFA(n), pattern, config), nil
}

// New wraps a DFA built with the automaton package. The DFA is copied;
// later changes to d do not affect the Regex. The Regex has no source text.
func New(d *automaton.DFA) *Regex {
	config := DefaultConfig()
	config.Automaton = config.Automaton.WithAlphabet(d.Alphabet())
	return newRegex(d.Clone(), "", config)
}

func newRegex(d *automaton.DFA, pattern string, config Config) *Regex {
	if config.UsePrefilter {
		d.Accelerate()
	}
	return &Regex{
		dfa:     d,
		pattern: pattern,
		config:  config,
		cursors: newCursorPool(d),
	}
}

// find runs one scan on a pooled cursor.
func (r *Regex) find(b []byte, n int) []automaton.Substring {
	d := r.cursors.get()
	defer r.cursors.put(d)
	matches := d.FindAll(b, n)
	r.stats.record(len(b), len(matches))
	return matches
}

// Match reports whether b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return len(r.find(b, 1)) > 0
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Recognize reports whether the whole of s is accepted by the pattern.
func (r *Regex) Recognize(s string) bool {
	d := r.cursors.get()
	defer r.cursors.put(d)
	r.stats.record(len(s), 0)
	return d.Recognize(s)
}

// FindIndex returns the location of the first match in b as a two-element
// slice, or nil. The match is at b[loc[0]:loc[1]].
func (r *Regex) FindIndex(b []byte) []int {
	matches := r.find(b, 1)
	if len(matches) == 0 {
		return nil
	}
	return []int{matches[0].Start, matches[0].End()}
}

// FindStringIndex returns the location of the first match in s, or nil.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// Find returns the text of the first match in b, or nil.
func (r *Regex) Find(b []byte) []byte {
	loc := r.FindIndex(b)
	if loc == nil {
		return nil
	}
	return b[loc[0]:loc[1]:loc[1]]
}

// FindString returns the text of the first match in s. It returns the empty
// string when there is no match, and also when the match is empty; use
// FindStringIndex to tell the two apart.
func (r *Regex) FindString(s string) string {
	loc := r.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindAllIndex returns the locations of successive matches in b as index
// pairs [start, end]. If n >= 0, it returns at most n matches.
//
// Example:
//
//	re := regfa.MustCompile("a")
//	indices := re.FindAllIndex([]byte("aa"), -1)
//	// indices = [[0 1] [1 2]]
func (r *Regex) FindAllIndex(b []byte, n int) [][]int {
	matches := r.find(b, n)
	if len(matches) == 0 {
		return nil
	}
	indices := make([][]int, len(matches))
	for i, m := range matches {
		indices[i] = []int{m.Start, m.End()}
	}
	return indices
}

// FindAllStringIndex is the string version of FindAllIndex.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	return r.FindAllIndex([]byte(s), n)
}

// FindAll returns the text of successive matches in b. If n >= 0, it
// returns at most n matches.
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	matches := r.find(b, n)
	if len(matches) == 0 {
		return nil
	}
	out := make([][]byte, len(matches))
	for i, m := range matches {
		out[i] = b[m.Start:m.End():m.End()]
	}
	return out
}

// FindAllString returns the text of successive matches in s. If n >= 0, it
// returns at most n matches.
//
// Example:
//
//	re := regfa.MustCompile("ab*")
//	matches := re.FindAllString("xabbbyab", -1)
//	// matches = ["abbb", "ab"]
func (r *Regex) FindAllString(s string, n int) []string {
	matches := r.find([]byte(s), n)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = s[m.Start:m.End()]
	}
	return out
}

// Count returns the number of matches in b. If n >= 0, it counts at most n
// matches.
func (r *Regex) Count(b []byte, n int) int {
	return len(r.find(b, n))
}

// CountString returns the number of matches in s. If n >= 0, it counts at
// most n matches.
func (r *Regex) CountString(s string, n int) int {
	return r.Count([]byte(s), n)
}

// ReplaceAllLiteral returns a copy of src with every match replaced by repl.
func (r *Regex) ReplaceAllLiteral(src, repl []byte) []byte {
	return r.replaceAll(src, func([]byte) []byte { return repl })
}

// ReplaceAllLiteralString returns a copy of src with every match replaced
// by repl.
//
// Example:
//
//	re := regfa.MustCompile("ab*")
//	result := re.ReplaceAllLiteralString("xabbbyab", "-")
//	// result = "x-y-"
func (r *Regex) ReplaceAllLiteralString(src, repl string) string {
	return string(r.ReplaceAllLiteral([]byte(src), []byte(repl)))
}

// ReplaceAllFunc returns a copy of src in which every match has been
// replaced by the return value of repl applied to the matched bytes.
func (r *Regex) ReplaceAllFunc(src []byte, repl func([]byte) []byte) []byte {
	return r.replaceAll(src, repl)
}

// ReplaceAllStringFunc is the string version of ReplaceAllFunc.
func (r *Regex) ReplaceAllStringFunc(src string, repl func(string) string) string {
	return string(r.replaceAll([]byte(src), func(m []byte) []byte {
		return []byte(repl(string(m)))
	}))
}

func (r *Regex) replaceAll(src []byte, repl func([]byte) []byte) []byte {
	matches := r.find(src, -1)
	if len(matches) == 0 {
		result := make([]byte, len(src))
		copy(result, src)
		return result
	}

	result := make([]byte, 0, len(src))
	lastEnd := 0
	for _, m := range matches {
		result = append(result, src[lastEnd:m.Start]...)
		result = append(result, repl(src[m.Start:m.End()])...)
		lastEnd = m.End()
	}
	return append(result, src[lastEnd:]...)
}

// Split slices s into the substrings between matches.
//
// The count determines the number of substrings to return:
//
//	n > 0: at most n substrings; the last substring will be the unsplit remainder.
//	n == 0: the result is nil (zero substrings)
//	n < 0: all substrings
func (r *Regex) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}

	matches := r.find([]byte(s), -1)
	if len(matches) == 0 {
		return []string{s}
	}

	result := make([]string, 0, len(matches)+1)
	lastEnd := 0
	for _, m := range matches {
		if n > 0 && len(result) == n-1 {
			break
		}
		result = append(result, s[lastEnd:m.Start])
		lastEnd = m.End()
	}
	return append(result, s[lastEnd:])
}

// Union returns a Regex matching either pattern. The configuration of r is
// kept.
func (r *Regex) Union(other *Regex) *Regex {
	return newRegex(r.dfa.Union(other.dfa), fmt.Sprintf("(%s)|(%s)", r.pattern, other.pattern), r.config)
}

// Concat returns a Regex matching r followed by other.
func (r *Regex) Concat(other *Regex) *Regex {
	return newRegex(r.dfa.Concat(other.dfa), fmt.Sprintf("(%s)(%s)", r.pattern, other.pattern), r.config)
}

// Star returns a Regex matching zero or more repetitions of r.
func (r *Regex) Star() *Regex {
	return newRegex(r.dfa.Star(), fmt.Sprintf("(%s)*", r.pattern), r.config)
}

// String returns the source text used to compile the Regex. Combinators
// build it from their operands; a Regex from New has none and returns "".
func (r *Regex) String() string {
	return r.pattern
}

// DFA returns a copy of the compiled automaton.
func (r *Regex) DFA() *automaton.DFA {
	return r.dfa.Clone()
}

// Stats returns execution statistics.
//
// Example:
//
//	stats := re.Stats()
//	println("Searches:", stats.Searches)
func (r *Regex) Stats() Stats {
	return Stats{
		Searches:     r.stats.searches.Load(),
		Matches:      r.stats.matches.Load(),
		BytesScanned: r.stats.bytes.Load(),
		Accelerated:  r.dfa.Prefilter() != nil,
	}
}

// ResetStats resets execution statistics to zero.
func (r *Regex) ResetStats() {
	r.stats.reset()
}

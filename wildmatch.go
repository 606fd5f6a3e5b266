// Package wildmatch compiles shell-style wildcard patterns into reusable
// matchers. A pattern is compiled once into a chain of typed matcher nodes;
// the chain is immutable after compilation and safe to share across
// goroutines without synchronization.
package wildmatch

import (
	"github.com/gowildcard/wildmatch/internal/matchchain"
)

// IgnoreCase, when passed as a flag to Compile or Matches, folds ASCII
// letters inside character classes and the full Unicode case of literal
// runs during matching.
const IgnoreCase = matchchain.IgnoreCase

// ParseError reports a syntax error encountered while compiling a pattern.
// Line and Column are zero-based.
type ParseError = matchchain.ParseError

// NoColumn is the sentinel Column value for errors with no single
// offending column.
const NoColumn = matchchain.NoColumn

// Matcher is a compiled pattern. The zero Matcher is not usable; obtain one
// from Compile. A Matcher is immutable and may be used concurrently from
// any number of goroutines.
type Matcher struct {
	seq *matchchain.Sequence
}

// Compile parses pattern under flags and returns the resulting Matcher, or
// a *ParseError if pattern is malformed. The only recognized flag is
// IgnoreCase; any other bits are accepted and ignored.
func Compile(pattern string, flags int) (*Matcher, error) {
	seq, err := matchchain.Compile(pattern, flags)
	if err != nil {
		return nil, err
	}

	return &Matcher{seq: seq}, nil
}

// MustCompile is like Compile but panics if pattern cannot be compiled. It
// is intended for tests and for package-level matcher variables built from
// constant patterns.
func MustCompile(pattern string, flags int) *Matcher {
	m, err := Compile(pattern, flags)
	if err != nil {
		panic(err)
	}

	return m
}

// Matches reports whether input satisfies the compiled pattern in its
// entirety; patterns are always anchored at both ends.
func (m *Matcher) Matches(input string) bool {
	return m.seq.Matches(input)
}

// Len reports the number of matcher nodes (excluding the terminal node) in
// the compiled chain. It is primarily useful for tests that assert on
// compiler output shape.
func (m *Matcher) Len() int {
	return m.seq.Len()
}

// Matches is a one-shot convenience wrapper that compiles pattern and tests
// it against input. Callers that test many inputs against the same pattern
// should call Compile once and reuse the resulting Matcher instead.
func Matches(pattern, input string, flags int) (bool, error) {
	m, err := Compile(pattern, flags)
	if err != nil {
		return false, err
	}

	return m.Matches(input), nil
}

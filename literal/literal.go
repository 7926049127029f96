// Package literal provides multi-literal matching over an Aho-Corasick
// automaton.
//
// Ordered alternation over many literal branches costs one attempt per
// branch per position. For alternations of plain literals a Set answers
// "which literal starts here" in a single automaton pass, and doubles as an
// unanchored scanner for prefilter-style callers.
package literal

import (
	"errors"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/combex"
)

// ErrNoPatterns indicates Compile was called without any non-empty literal.
var ErrNoPatterns = errors.New("literal set needs at least one non-empty pattern")

// Set is a compiled collection of literal patterns. A Set is immutable and
// safe for concurrent use.
type Set struct {
	auto *ahocorasick.Automaton
}

// Compile builds a set from the given literals. Empty literals are rejected:
// a zero-width literal matches everywhere and belongs in grammar structure,
// not in a scanning automaton.
func Compile(words ...string) (*Set, error) {
	if len(words) == 0 {
		return nil, ErrNoPatterns
	}
	builder := ahocorasick.NewBuilder()
	for _, w := range words {
		if w == "" {
			return nil, ErrNoPatterns
		}
		builder.AddPattern([]byte(w))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Set{auto: auto}, nil
}

// MustCompile is Compile that panics on error, for sets known valid at
// program start.
func MustCompile(words ...string) *Set {
	s, err := Compile(words...)
	if err != nil {
		panic("literal: Compile failed: " + err.Error())
	}
	return s
}

// Find returns the span of the leftmost occurrence of any literal at or
// after position at.
func (s *Set) Find(hay []byte, at int) (combex.Span, bool) {
	if at < 0 || at >= len(hay) {
		return combex.Span{}, false
	}
	m := s.auto.Find(hay, at)
	if m == nil {
		return combex.Span{}, false
	}
	return combex.Span{Begin: m.Start, Len: m.End - m.Start}, true
}

// IsMatch reports whether any literal occurs anywhere in hay.
func (s *Set) IsMatch(hay []byte) bool {
	return s.auto.IsMatch(hay)
}

// Matcher returns an anchored combex matcher: it succeeds when one of the
// set's literals begins exactly at the cursor's current position, consuming
// the literal the automaton prefers there. It composes with the rest of a
// grammar like any other matcher.
func (s *Set) Matcher() combex.Matcher {
	return combex.MatcherFunc(func(c *combex.Cursor, caps *combex.Captures) (combex.Span, error) {
		off := c.Offset()
		rest, err := c.Rest(off)
		if err != nil {
			return combex.Span{}, err
		}
		if len(rest) == 0 {
			return combex.Span{}, combex.ErrOutOfBounds
		}
		m := s.auto.Find(rest, 0)
		if m == nil || m.Start != 0 {
			return combex.Span{}, &combex.MismatchError{Pos: off, Expected: "one of the literal set"}
		}
		if err := c.Advance(m.End); err != nil {
			return combex.Span{}, err
		}
		return combex.Span{Begin: off, Len: m.End}, nil
	})
}

// Scanner iterates the non-overlapping occurrences of the set's literals in
// hay, leftmost first.
type Scanner struct {
	set *Set
	hay []byte
	pos int
}

// Scan creates a scanner over hay starting at position 0.
func (s *Set) Scan(hay []byte) *Scanner {
	return &Scanner{set: s, hay: hay}
}

// Next returns the next occurrence span, or false when no literal occurs in
// the remaining input.
func (sc *Scanner) Next() (combex.Span, bool) {
	span, ok := sc.set.Find(sc.hay, sc.pos)
	if !ok {
		return combex.Span{}, false
	}
	sc.pos = span.End()
	return span, true
}

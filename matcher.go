package combex

import (
	"bytes"
	"strconv"

	"github.com/coregx/combex/internal/trace"
)

// Matcher is an immutable description of how to consume input starting at the
// cursor's current position. On success it returns the matched span and
// leaves the cursor at the span's end; on failure it returns one of the
// taxonomy errors (see error.go).
//
// Matchers hold no per-attempt mutable state. All state for an attempt lives
// in the Cursor and Captures passed in, so the same matcher value can be
// shared across unrelated, even concurrent, attempts.
type Matcher interface {
	Match(c *Cursor, caps *Captures) (Span, error)
}

// MatcherFunc adapts an ordinary function to the Matcher interface.
type MatcherFunc func(c *Cursor, caps *Captures) (Span, error)

// Match implements Matcher.
func (f MatcherFunc) Match(c *Cursor, caps *Captures) (Span, error) {
	return f(c, caps)
}

// TryMatch runs the matcher at the cursor's current position with no capture
// store. Grammars containing Cap nodes must be run through TryCapture or with
// an explicit store.
func TryMatch(m Matcher, c *Cursor) (Span, error) {
	span, err := m.Match(c, nil)
	if trace.Enabled() {
		trace.Match("try_match", span.Begin, span.Len, err)
	}
	return span, err
}

// IsMatch reports whether the matcher succeeds at the cursor's current
// position. The cursor is advanced exactly as by TryMatch.
func IsMatch(m Matcher, c *Cursor) bool {
	_, err := m.Match(c, nil)
	return err == nil
}

// TryCapture runs the matcher and, on success, records the resulting span
// into the store's slot, appending if the slot already holds entries. A slot
// outside the store's capacity fails with a CaptureError and writes nothing.
func TryCapture(slot int, m Matcher, c *Cursor, caps *Captures) (Span, error) {
	span, err := m.Match(c, caps)
	if err != nil {
		return Span{}, err
	}
	if err := caps.add(slot, span); err != nil {
		return Span{}, err
	}
	return span, nil
}

// Cap wraps a matcher so that its span is recorded into the slot of the
// capture store supplied to the match attempt. Under a repetition combinator
// each successful repetition appends another span to the slot.
func Cap(slot int, m Matcher) Matcher {
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		return TryCapture(slot, m, c, caps)
	})
}

// Str matches the literal string at the current position.
func Str(lit string) Matcher {
	return Bytes([]byte(lit))
}

// Bytes matches the literal byte sequence at the current position.
func Bytes(lit []byte) Matcher {
	quoted := strconv.Quote(string(lit))
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		off := c.Offset()
		rest, err := c.Rest(off)
		if err != nil {
			return Span{}, err
		}
		if len(rest) < len(lit) {
			return Span{}, ErrOutOfBounds
		}
		if !bytes.Equal(rest[:len(lit)], lit) {
			return Span{}, mismatch(off, quoted)
		}
		if err := c.Advance(len(lit)); err != nil {
			return Span{}, err
		}
		return Span{Begin: off, Len: len(lit)}, nil
	})
}

package combex

import (
	"math"

	"github.com/coregx/combex/internal/trace"
)

// Unbounded marks a repetition with no upper limit.
const Unbounded = math.MaxInt

// Cond is a continuation predicate for lookahead-driven repetition. After the
// unit predicate accepts a unit, the condition receives a read-only view of
// the cursor plus the accepted unit (with its absolute offset) and decides
// whether the repetition should consume it and continue. Returning false ends
// the repetition successfully at the current length, before the unit is
// consumed; an error aborts the attempt.
//
// The condition may use Cursor.PeekAt or Cursor.Rest to inspect input beyond
// the unit, which is how data-dependent stop rules are expressed without
// backtracking: a greedy loop never rewinds past a consumed unit, so any
// "only take this if more of X follows" rule must be part of the grammar.
type Cond func(c *Cursor, u Unit) (bool, error)

// One matches exactly one unit satisfying the predicate.
// Fails with ErrOutOfBounds at end of input.
func One(p Pred) Matcher {
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		u, err := c.Peek()
		if err != nil {
			return Span{}, err
		}
		if !p(u) {
			return Span{}, mismatch(u.Offset, "one matching unit")
		}
		if err := c.Advance(u.Width); err != nil {
			return Span{}, err
		}
		return Span{Begin: u.Offset, Len: u.Width}, nil
	})
}

// ZeroOne matches at most one unit satisfying the predicate and succeeds with
// a zero-length span when none matches.
func ZeroOne(p Pred) Matcher {
	return Repeat(p, 0, 1)
}

// OneMore greedily matches one or more consecutive units satisfying the
// predicate.
func OneMore(p Pred) Matcher {
	return Repeat(p, 1, Unbounded)
}

// ZeroMore greedily matches zero or more consecutive units satisfying the
// predicate. It never fails.
func ZeroMore(p Pred) Matcher {
	return Repeat(p, 0, Unbounded)
}

// Repeat greedily matches between min and max consecutive units satisfying
// the predicate. Matching stops at max repetitions or at the first unit the
// predicate rejects, whichever comes first; fewer than min consumed units is
// a mismatch. Use Unbounded for max to remove the upper limit.
//
// Repeat panics if min is negative or max < min: bounds describe the grammar
// and an impossible range is a programming error.
func Repeat(p Pred, min, max int) Matcher {
	return RepeatIf(p, min, max, nil)
}

// RepeatIf is Repeat with a continuation condition consulted once per
// accepted unit, before that unit is consumed. A nil cond behaves like
// Repeat. See Cond for the stop semantics.
func RepeatIf(p Pred, min, max int, cond Cond) Matcher {
	if min < 0 || max < min {
		panic("combex: invalid repetition bounds")
	}
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		off := c.Offset()
		pos := off
		cnt := 0
		for cnt < max {
			u, err := c.PeekAt(pos)
			if err != nil {
				break
			}
			if !p(u) {
				break
			}
			if cond != nil {
				ok, err := cond(c, u)
				if err != nil {
					return Span{}, err
				}
				if !ok {
					break
				}
			}
			pos += u.Width
			cnt++
		}
		if cnt < min {
			if trace.Enabled() {
				trace.Match("repeat", off, 0, ErrMismatch)
			}
			return Span{}, mismatch(off, "repeated units")
		}
		if err := c.Seek(pos); err != nil {
			return Span{}, err
		}
		span := Span{Begin: off, Len: pos - off}
		if trace.Enabled() {
			trace.Match("repeat", off, span.Len, nil)
		}
		return span, nil
	})
}

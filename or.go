package combex

import "github.com/coregx/combex/internal/trace"

// Or tries each branch in order from the same starting offset, rewinding the
// cursor between attempts. The first branch to succeed wins, regardless of
// how much later branches would have matched. When every branch fails, the
// last branch's error propagates and the cursor is restored to the starting
// offset.
//
// A branch that writes captures before failing leaves those spans in the
// store; keep Cap nodes out of speculative branches or reset the slot before
// reuse.
func Or(ms ...Matcher) Matcher {
	if len(ms) == 0 {
		panic("combex: Or requires at least one branch")
	}
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		off := c.Offset()
		var lastErr error
		for _, m := range ms {
			if err := c.Seek(off); err != nil {
				return Span{}, err
			}
			span, err := m.Match(c, caps)
			if err == nil {
				if trace.Enabled() {
					trace.Match("or", off, span.Len, nil)
				}
				return span, nil
			}
			lastErr = err
		}
		if err := c.Seek(off); err != nil {
			return Span{}, err
		}
		if trace.Enabled() {
			trace.Match("or", off, 0, lastErr)
		}
		return Span{}, lastErr
	})
}

// Longest evaluates every branch from the same starting offset and commits
// the one with the greatest span length, breaking ties in favor of the
// earlier branch. Use it where leftmost-longest alternation is needed instead
// of Or's first-success priority.
//
// Every branch runs, so captures written by losing branches remain in the
// store; the same caution as for Or applies.
func Longest(ms ...Matcher) Matcher {
	if len(ms) == 0 {
		panic("combex: Longest requires at least one branch")
	}
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		off := c.Offset()
		var (
			best    Span
			bestEnd int
			found   bool
			lastErr error
		)
		for _, m := range ms {
			if err := c.Seek(off); err != nil {
				return Span{}, err
			}
			span, err := m.Match(c, caps)
			if err != nil {
				lastErr = err
				continue
			}
			if !found || span.Len > best.Len {
				best = span
				bestEnd = c.Offset()
				found = true
			}
		}
		if !found {
			if err := c.Seek(off); err != nil {
				return Span{}, err
			}
			return Span{}, lastErr
		}
		if err := c.Seek(bestEnd); err != nil {
			return Span{}, err
		}
		return best, nil
	})
}

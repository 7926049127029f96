package combex

// Start is a zero-width matcher that succeeds only at offset 0.
func Start() Matcher {
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		if c.Offset() != 0 {
			return Span{}, mismatch(c.Offset(), "start of input")
		}
		return Span{}, nil
	})
}

// End is a zero-width matcher that succeeds only at the input length.
func End() Matcher {
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		if c.Offset() != c.Len() {
			return Span{}, mismatch(c.Offset(), "end of input")
		}
		return Span{Begin: c.Offset()}, nil
	})
}

// Empty is a zero-width matcher that always succeeds at the current offset.
func Empty() Matcher {
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		return Span{Begin: c.Offset()}, nil
	})
}

// Fail is a matcher that never succeeds.
func Fail() Matcher {
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		return Span{}, mismatch(c.Offset(), "nothing")
	})
}

// Consume matches exactly n bytes without inspecting them. On a text cursor
// the landing position must be a code-point boundary.
func Consume(n int) Matcher {
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		off := c.Offset()
		if err := c.Advance(n); err != nil {
			return Span{}, err
		}
		return Span{Begin: off, Len: n}, nil
	})
}

// Not is a zero-width negative lookahead: it succeeds exactly when the inner
// matcher fails at the current offset, consuming nothing either way. The
// probe runs without a capture store.
func Not(m Matcher) Matcher {
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		off := c.Offset()
		_, err := m.Match(c, nil)
		if serr := c.Seek(off); serr != nil {
			return Span{}, serr
		}
		if err == nil {
			return Span{}, mismatch(off, "inner pattern to fail")
		}
		return Span{Begin: off}, nil
	})
}

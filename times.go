package combex

// Times greedily repeats a sub-matcher between min and max times. A failing
// attempt ends the repetition: the cursor rewinds to the end of the last
// successful repetition and, if at least min repetitions were consumed, the
// combinator succeeds with the span covering them. Fewer than min repetitions
// restores the starting offset and fails with a mismatch.
//
// The rewind here treats the failed attempt as expected control flow, like an
// alternation branch; committed repetitions are never undone.
func Times(m Matcher, min, max int) Matcher {
	if min < 0 || max < min {
		panic("combex: invalid repetition bounds")
	}
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		off := c.Offset()
		span := Span{Begin: off}
		cnt := 0
		for cnt < max {
			mark := c.Offset()
			s, err := m.Match(c, caps)
			if err != nil {
				if serr := c.Seek(mark); serr != nil {
					return Span{}, serr
				}
				break
			}
			cnt++
			span = span.Join(s)
			if s.IsEmpty() && c.Offset() == mark {
				// Zero-width repetition would loop forever.
				break
			}
		}
		if cnt < min {
			if err := c.Seek(off); err != nil {
				return Span{}, err
			}
			return Span{}, mismatch(off, "repeated pattern")
		}
		return span, nil
	})
}

package combex

// Then matches first, then second starting where first left off. The overall
// span covers both children. On failure the first failing child's error
// propagates unchanged and the cursor stays wherever that child stopped:
// sequences commit past earlier children and never rewind.
func Then(first, second Matcher) Matcher {
	return Seq(first, second)
}

// Seq matches every child in order, committing after each one. An empty Seq
// is a zero-width success.
func Seq(ms ...Matcher) Matcher {
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		span := Span{Begin: c.Offset()}
		for _, m := range ms {
			s, err := m.Match(c, caps)
			if err != nil {
				return Span{}, err
			}
			span = span.Join(s)
		}
		return span, nil
	})
}

package combex

// Opt makes a matcher optional: on failure the cursor is restored to the
// pre-attempt offset and a zero-length span is returned. Equivalent to
// Or(m, Empty()).
func Opt(m Matcher) Matcher {
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		off := c.Offset()
		span, err := m.Match(c, caps)
		if err != nil {
			if serr := c.Seek(off); serr != nil {
				return Span{}, serr
			}
			return Span{Begin: off}, nil
		}
		return span, nil
	})
}

// Quote wraps a matcher with required left and right delimiters. All three
// parts must match in sequence; the overall span covers delimiters and
// content. Captures recorded inside the inner matcher cover the content only,
// which is how quoted values are extracted without their quotes:
//
//	quoted := combex.Quote(combex.Cap(0, combex.ZeroMore(combex.Is('"').Not())),
//		combex.Str(`"`), combex.Str(`"`))
func Quote(inner, left, right Matcher) Matcher {
	return Seq(left, inner, right)
}

// Pad surrounds a matcher with optional padding on both sides, typically
// whitespace. Padding failures are ignored; the span covers any padding that
// did match plus the inner match.
func Pad(m, pad Matcher) Matcher {
	return Seq(Opt(pad), m, Opt(pad))
}

// PadLeft applies optional padding before the matcher only.
func PadLeft(m, pad Matcher) Matcher {
	return Seq(Opt(pad), m)
}

// PadRight applies optional padding after the matcher only.
func PadRight(m, pad Matcher) Matcher {
	return Seq(m, Opt(pad))
}

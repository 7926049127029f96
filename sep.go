package combex

import "github.com/coregx/combex/internal/trace"

// SepOnce matches left, exactly one separator, then right, as a committed
// sequence. The overall span covers all three parts.
func SepOnce(left, sep, right Matcher) Matcher {
	return Seq(left, sep, right)
}

// SepOpt adjusts Separate's list shape.
type SepOpt struct {
	// MinItems is the smallest number of items required; zero means one.
	MinItems int

	// AllowTrailing permits a separator after the final item. The trailing
	// separator is consumed and included in the span.
	AllowTrailing bool
}

// Separate matches one or more items divided by the separator:
// item (sep item)*. A leading separator fails because the first item is
// required; a separator not followed by an item fails as an unmatched
// trailing separator. See SeparateOpt for looser shapes.
func Separate(item, sep Matcher) Matcher {
	return SeparateOpt(item, sep, SepOpt{})
}

// SeparateOpt is Separate with explicit list options.
func SeparateOpt(item, sep Matcher, opt SepOpt) Matcher {
	min := opt.MinItems
	if min < 1 {
		min = 1
	}
	return MatcherFunc(func(c *Cursor, caps *Captures) (Span, error) {
		off := c.Offset()
		span := Span{Begin: off}
		cnt := 0
		for {
			attempt := c.Offset()
			itemSpan, err := item.Match(c, caps)
			if err != nil {
				if cnt == 0 {
					// No first item: report its failure as-is.
					return Span{}, err
				}
				if !opt.AllowTrailing {
					// A separator was consumed but no item follows.
					return Span{}, err
				}
				if serr := c.Seek(attempt); serr != nil {
					return Span{}, serr
				}
				break
			}
			cnt++
			span = span.Join(itemSpan)

			mark := c.Offset()
			sepSpan, err := sep.Match(c, caps)
			if err != nil {
				if serr := c.Seek(mark); serr != nil {
					return Span{}, serr
				}
				break
			}
			span = span.Join(sepSpan)
		}
		if cnt < min {
			if err := c.Seek(off); err != nil {
				return Span{}, err
			}
			return Span{}, mismatch(off, "separated items")
		}
		if trace.Enabled() {
			trace.Match("separate", off, span.Len, nil)
		}
		return span, nil
	})
}

package combex

// SpanIter lazily produces successive non-overlapping match spans by invoking
// a matcher against the remaining suffix of the input after each success. The
// sequence ends at the first failure or at end of input. An iterator holds no
// state beyond its cursor; restart by constructing a new iterator over a
// fresh (or Reset) cursor.
type SpanIter struct {
	m    Matcher
	c    *Cursor
	caps *Captures
	done bool
}

// NewSpanIter creates an iterator driving the matcher over the cursor.
// A nil capture store is allowed for grammars without Cap nodes.
func NewSpanIter(m Matcher, c *Cursor, caps *Captures) *SpanIter {
	return &SpanIter{m: m, c: c, caps: caps}
}

// Next returns the next match span, or false when iteration has ended.
// A zero-length match advances the cursor by one unit so iteration always
// terminates.
func (it *SpanIter) Next() (Span, bool) {
	if it.done {
		return Span{}, false
	}
	span, err := it.m.Match(it.c, it.caps)
	if err != nil {
		it.done = true
		return Span{}, false
	}
	if span.IsEmpty() {
		u, err := it.c.Peek()
		if err != nil {
			it.done = true
			return span, true
		}
		if err := it.c.Advance(u.Width); err != nil {
			it.done = true
		}
	}
	return span, true
}

// UnitIter lazily produces the input's offset/unit pairs from the cursor's
// current position to the end.
type UnitIter struct {
	c *Cursor
}

// NewUnitIter creates a unit iterator over the cursor.
func NewUnitIter(c *Cursor) *UnitIter {
	return &UnitIter{c: c}
}

// Next returns the unit at the current position and advances past it, or
// false at end of input.
func (it *UnitIter) Next() (Unit, bool) {
	u, err := it.c.Peek()
	if err != nil {
		return Unit{}, false
	}
	if err := it.c.Advance(u.Width); err != nil {
		return Unit{}, false
	}
	return u, true
}

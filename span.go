package combex

import "fmt"

// Span denotes a matched extent in input units: the half-open byte range
// [Begin, Begin+Len). A zero-length span is valid and marks an epsilon match
// (anchors, optional matchers that matched nothing).
type Span struct {
	Begin int
	Len   int
}

// End returns the offset one past the last unit covered by the span.
func (s Span) End() int {
	return s.Begin + s.Len
}

// IsEmpty reports whether the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Len == 0
}

// Join extends s to cover through the end of other. The other span must not
// start before s; contiguity is not required, any gap becomes part of the
// joined span.
func (s Span) Join(other Span) Span {
	if other.End() > s.End() {
		s.Len = other.End() - s.Begin
	}
	return s
}

// String implements fmt.Stringer.
func (s Span) String() string {
	return fmt.Sprintf("{beg: %d, len: %d}", s.Begin, s.Len)
}

// Captures stores spans recorded during a match attempt, organized into a
// fixed number of slots declared up front. A slot holds zero or more spans;
// repeated captures into the same slot append in match order.
//
// A Captures value is exclusively owned by one match attempt at a time.
// Matchers themselves hold no mutable state, so sharing a grammar across
// goroutines only requires giving each attempt its own store.
type Captures struct {
	slots [][]Span
}

// NewCaptures creates a store with the given number of slots.
func NewCaptures(capacity int) *Captures {
	return &Captures{slots: make([][]Span, capacity)}
}

// Capacity returns the number of declared slots.
func (c *Captures) Capacity() int {
	return len(c.slots)
}

// Spans returns the spans recorded in the slot, in match order. The returned
// slice is owned by the store and valid until the next Reset.
func (c *Captures) Spans(slot int) ([]Span, error) {
	if slot < 0 || slot >= len(c.slots) {
		return nil, &CaptureError{Slot: slot, Capacity: len(c.slots)}
	}
	return c.slots[slot], nil
}

// Contains reports whether the slot holds at least one span.
func (c *Captures) Contains(slot int) bool {
	return slot >= 0 && slot < len(c.slots) && len(c.slots[slot]) > 0
}

// Reset clears every slot without releasing capacity, so one store can be
// reused across many inputs without reallocating.
func (c *Captures) Reset() {
	for i := range c.slots {
		c.slots[i] = c.slots[i][:0]
	}
}

// add records a span into the slot. Out-of-range slots (including a nil
// store) are reported, never silently dropped.
func (c *Captures) add(slot int, span Span) error {
	if c == nil {
		return &CaptureError{Slot: slot, Capacity: 0}
	}
	if slot < 0 || slot >= len(c.slots) {
		return &CaptureError{Slot: slot, Capacity: len(c.slots)}
	}
	c.slots[slot] = append(c.slots[slot], span)
	return nil
}

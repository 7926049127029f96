package combex

import "unicode/utf8"

// Cursor owns a view of the input and the current scan position. It carries
// no matching logic: matchers read units through Peek/PeekAt and commit
// progress through Advance.
//
// A cursor comes in two flavors. Text cursors decode UTF-8 code points and
// always rest on a code-point boundary; byte cursors operate on raw 8-bit
// units with no decoding. Both index the input by byte offset, so spans are
// directly usable as slice bounds in either flavor.
//
// A cursor is exclusively owned by the match attempt using it and must not be
// shared while a match is in progress. Matchers themselves are immutable, so
// concurrent matching only requires one cursor (and one capture store) per
// goroutine.
type Cursor struct {
	data   []byte
	offset int
	text   bool
}

// NewText creates a text cursor over s, positioned at offset 0.
func NewText(s string) *Cursor {
	return &Cursor{data: []byte(s), text: true}
}

// NewBytes creates a byte cursor over b, positioned at offset 0.
// The cursor aliases b; the caller must not mutate it during matching.
func NewBytes(b []byte) *Cursor {
	return &Cursor{data: b}
}

// IsText reports whether the cursor decodes UTF-8 code points.
func (c *Cursor) IsText() bool {
	return c.text
}

// Len returns the total input length in bytes.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Offset returns the current scan position.
func (c *Cursor) Offset() int {
	return c.offset
}

// Peek reads the unit at the current offset without advancing.
// Returns ErrOutOfBounds at end of input.
func (c *Cursor) Peek() (Unit, error) {
	return c.PeekAt(c.offset)
}

// PeekAt reads the unit at an arbitrary absolute offset without moving the
// cursor. Lookahead conditions use this to inspect input beyond the current
// position.
func (c *Cursor) PeekAt(offset int) (Unit, error) {
	if offset < 0 || offset >= len(c.data) {
		return Unit{}, ErrOutOfBounds
	}
	if !c.text {
		return Unit{Offset: offset, Value: rune(c.data[offset]), Width: 1}, nil
	}
	r, size := utf8.DecodeRune(c.data[offset:])
	return Unit{Offset: offset, Value: r, Width: size}, nil
}

// Advance moves the offset forward by n bytes. It fails with ErrOutOfBounds
// if the new offset would exceed the input length, or if a text cursor would
// land in the middle of a code point.
func (c *Cursor) Advance(n int) error {
	if n < 0 {
		return ErrOutOfBounds
	}
	return c.Seek(c.offset + n)
}

// Seek repositions the cursor at an absolute offset, applying the same
// bounds and code-point boundary checks as Advance. Alternation and branch
// combinators use Seek to restore a saved position; sequence matchers never
// rewind.
func (c *Cursor) Seek(offset int) error {
	if offset < 0 || offset > len(c.data) {
		return ErrOutOfBounds
	}
	if c.text && offset < len(c.data) && !utf8.RuneStart(c.data[offset]) {
		return ErrOutOfBounds
	}
	c.offset = offset
	return nil
}

// Slice returns the raw bytes covered by the span.
func (c *Cursor) Slice(s Span) ([]byte, error) {
	if s.Begin < 0 || s.Len < 0 || s.End() > len(c.data) {
		return nil, ErrOutOfBounds
	}
	return c.data[s.Begin:s.End()], nil
}

// Rest returns the raw input suffix starting at the absolute offset. The
// suffix may be empty when offset equals the input length.
func (c *Cursor) Rest(offset int) ([]byte, error) {
	if offset < 0 || offset > len(c.data) {
		return nil, ErrOutOfBounds
	}
	return c.data[offset:], nil
}

// Reset moves the cursor back to offset 0 over the same input.
func (c *Cursor) Reset() {
	c.offset = 0
}

// ResetText rebinds the cursor to new text at offset 0. A text cursor reuses
// its internal buffer when it has capacity; a byte cursor allocates a fresh
// one, since its buffer aliases caller memory.
func (c *Cursor) ResetText(s string) {
	if c.text {
		c.data = append(c.data[:0], s...)
	} else {
		c.data = []byte(s)
	}
	c.offset = 0
	c.text = true
}

// ResetBytes rebinds the cursor to new bytes at offset 0 without copying.
// The flavor switches to raw bytes.
func (c *Cursor) ResetBytes(b []byte) {
	c.data = b
	c.offset = 0
	c.text = false
}

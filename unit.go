package combex

// Unit is a single decoded input value at a known offset: one code point for
// text cursors, one byte for byte cursors. Units are produced transiently by
// Peek/PeekAt and predicate evaluation; they are never stored.
type Unit struct {
	// Offset is the absolute byte offset of the unit within the input.
	Offset int

	// Value is the decoded code point. Byte cursors report the raw byte
	// widened to a rune, so predicates work uniformly over both flavors.
	Value rune

	// Width is the size of the unit in bytes: 1 for byte cursors, 1-4 for
	// text cursors.
	Width int
}

package combex

import (
	"errors"
	"testing"
)

func TestSeqSpansChildren(t *testing.T) {
	c := NewText("key=value")
	m := Seq(OneMore(ASCIIAlphabetic()), Str("="), OneMore(ASCIIAlphabetic()))

	span, err := TryMatch(m, c)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if span != (Span{Begin: 0, Len: 9}) {
		t.Errorf("span = %v, want {beg: 0, len: 9}", span)
	}
	if c.Offset() != 9 {
		t.Errorf("offset = %d, want 9", c.Offset())
	}
}

func TestSeqCommitsPastEarlierChildren(t *testing.T) {
	// The first failing child's error propagates and the cursor stays where
	// that child stopped: sequences never rewind.
	c := NewText("abxx")
	m := Seq(Str("ab"), Str("cd"))

	_, err := TryMatch(m, c)
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("error = %v, want ErrMismatch", err)
	}
	if c.Offset() != 2 {
		t.Errorf("offset after failure = %d, want 2 (committed past %q)", c.Offset(), "ab")
	}

	var me *MismatchError
	if !errors.As(err, &me) || me.Pos != 2 {
		t.Errorf("mismatch position = %+v, want Pos 2", me)
	}
}

func TestSeqEmpty(t *testing.T) {
	c := NewText("anything")
	span, err := TryMatch(Seq(), c)
	if err != nil || span.Len != 0 {
		t.Errorf("empty Seq = %v, %v, want zero-width success", span, err)
	}
}

func TestThenIsPairSeq(t *testing.T) {
	c := NewText("ab")
	span, err := TryMatch(Then(Str("a"), Str("b")), c)
	if err != nil || span.Len != 2 {
		t.Errorf("Then = %v, %v, want len 2", span, err)
	}
}

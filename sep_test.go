package combex

import (
	"errors"
	"testing"
)

func TestSepOnce(t *testing.T) {
	c := NewText("key:value")
	m := SepOnce(OneMore(ASCIIAlphabetic()), Str(":"), OneMore(ASCIIAlphabetic()))

	span, err := TryMatch(m, c)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if span.Len != 9 {
		t.Errorf("span.Len = %d, want 9", span.Len)
	}
}

func TestSeparate(t *testing.T) {
	item := OneMore(ASCIIAlphabetic())
	sep := Str(",")

	tests := []struct {
		name    string
		input   string
		opt     SepOpt
		wantLen int
		wantErr bool
	}{
		{"three items", "a,b,c", SepOpt{}, 5, false},
		{"single item", "abc", SepOpt{}, 3, false},
		{"stops before junk", "a,b!rest", SepOpt{}, 3, false},
		{"leading separator", ",a", SepOpt{}, 0, true},
		{"trailing separator rejected", "a,b,", SepOpt{}, 0, true},
		{"trailing separator allowed", "a,b,", SepOpt{AllowTrailing: true}, 4, false},
		{"min met", "a,b,c", SepOpt{MinItems: 3}, 5, false},
		{"min not met", "a,b", SepOpt{MinItems: 3}, 0, true},
		{"empty input", "", SepOpt{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewText(tt.input)
			span, err := TryMatch(SeparateOpt(item, sep, tt.opt), c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("matched %v, want failure", span)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if span.Len != tt.wantLen {
				t.Errorf("span.Len = %d, want %d", span.Len, tt.wantLen)
			}
		})
	}
}

func TestSeparateErrorKinds(t *testing.T) {
	item := OneMore(ASCIIAlphabetic())
	m := Separate(item, Str(","))

	// A leading separator surfaces the first item's failure.
	c := NewText(",a")
	if _, err := TryMatch(m, c); !errors.Is(err, ErrMismatch) {
		t.Errorf("leading separator error = %v, want ErrMismatch", err)
	}

	// An empty input surfaces the first item's failure too.
	c = NewText("")
	if _, err := TryMatch(m, c); !errors.Is(err, ErrMismatch) {
		t.Errorf("empty input error = %v, want ErrMismatch", err)
	}
}

func TestSeparateCapturesEachItem(t *testing.T) {
	item := Cap(0, OneMore(ASCIIAlphabetic()))
	m := Separate(item, Str(","))

	c := NewText("aa,b,ccc")
	caps := NewCaptures(1)
	if _, err := m.Match(c, caps); err != nil {
		t.Fatalf("error: %v", err)
	}

	spans, err := caps.Spans(0)
	if err != nil {
		t.Fatalf("Spans error: %v", err)
	}
	want := []Span{{Begin: 0, Len: 2}, {Begin: 3, Len: 1}, {Begin: 5, Len: 3}}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d: %v", len(spans), len(want), spans)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("spans[%d] = %v, want %v", i, spans[i], want[i])
		}
	}
}

package literal

import (
	"errors"
	"testing"

	"github.com/coregx/combex"
)

func TestCompileRejectsEmpty(t *testing.T) {
	if _, err := Compile(); !errors.Is(err, ErrNoPatterns) {
		t.Errorf("Compile() error = %v, want ErrNoPatterns", err)
	}
	if _, err := Compile("foo", ""); !errors.Is(err, ErrNoPatterns) {
		t.Errorf("Compile with empty word error = %v, want ErrNoPatterns", err)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic on empty set")
		}
	}()
	MustCompile()
}

func TestFind(t *testing.T) {
	s := MustCompile("cat", "dog")

	tests := []struct {
		name string
		hay  string
		at   int
		want combex.Span
		ok   bool
	}{
		{"leftmost", "a cat and a dog", 0, combex.Span{Begin: 2, Len: 3}, true},
		{"after first", "a cat and a dog", 5, combex.Span{Begin: 12, Len: 3}, true},
		{"no occurrence", "a bird", 0, combex.Span{}, false},
		{"at past end", "cat", 3, combex.Span{}, false},
		{"negative at", "cat", -1, combex.Span{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := s.Find([]byte(tt.hay), tt.at)
			if ok != tt.ok || span != tt.want {
				t.Errorf("Find(%q, %d) = %v, %v, want %v, %v", tt.hay, tt.at, span, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsMatch(t *testing.T) {
	s := MustCompile("err", "warn")
	if !s.IsMatch([]byte("level=warn msg=disk")) {
		t.Error("IsMatch = false, want true")
	}
	if s.IsMatch([]byte("level=info")) {
		t.Error("IsMatch = true, want false")
	}
}

func TestMatcherAnchored(t *testing.T) {
	m := MustCompile("foo", "bar").Matcher()

	c := combex.NewText("foobar")
	span, err := combex.TryMatch(m, c)
	if err != nil || span != (combex.Span{Begin: 0, Len: 3}) {
		t.Fatalf("first = %v, %v, want {beg: 0, len: 3}", span, err)
	}
	span, err = combex.TryMatch(m, c)
	if err != nil || span != (combex.Span{Begin: 3, Len: 3}) {
		t.Fatalf("second = %v, %v, want {beg: 3, len: 3}", span, err)
	}

	// An occurrence later in the input is not a match at the position.
	c = combex.NewText("xfoo")
	if _, err := combex.TryMatch(m, c); !errors.Is(err, combex.ErrMismatch) {
		t.Errorf("unanchored occurrence error = %v, want ErrMismatch", err)
	}
	if c.Offset() != 0 {
		t.Errorf("offset = %d, want 0", c.Offset())
	}

	c = combex.NewText("")
	if _, err := combex.TryMatch(m, c); !errors.Is(err, combex.ErrOutOfBounds) {
		t.Errorf("empty input error = %v, want ErrOutOfBounds", err)
	}
}

func TestMatcherComposes(t *testing.T) {
	keyword := MustCompile("let", "const", "var").Matcher()
	decl := combex.Seq(
		keyword,
		combex.OneMore(combex.ASCIIWhitespace()),
		combex.OneMore(combex.ASCIIAlphabetic()),
	)

	c := combex.NewText("const answer")
	span, err := combex.TryMatch(decl, c)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if span.Len != 12 {
		t.Errorf("span.Len = %d, want 12", span.Len)
	}
}

func TestScanner(t *testing.T) {
	s := MustCompile("foo")
	sc := s.Scan([]byte("a foo bar foo!"))

	var got []combex.Span
	for {
		span, ok := sc.Next()
		if !ok {
			break
		}
		got = append(got, span)
	}

	want := []combex.Span{{Begin: 2, Len: 3}, {Begin: 10, Len: 3}}
	if len(got) != len(want) {
		t.Fatalf("got %d spans, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("spans[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

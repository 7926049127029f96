package combex

import (
	"sync"
	"testing"
)

func nestedList() Matcher {
	value := NewRef()
	list := Seq(Str("["), SeparateOpt(value, Str(","), SepOpt{}), Str("]"))
	value.Bind(Or(OneMore(ASCIIDigit()), list))
	return Seq(value, End())
}

func TestRefRecursiveGrammar(t *testing.T) {
	m := nestedList()

	tests := []struct {
		input string
		ok    bool
	}{
		{"1", true},
		{"[1]", true},
		{"[1,2,3]", true},
		{"[1,[2,3],4]", true},
		{"[[1],[[2]]]", true},
		{"[]", false},
		{"[1,]", false},
		{"[1,[2]", false},
		{"x", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := NewText(tt.input)
			_, err := TryMatch(m, c)
			if got := err == nil; got != tt.ok {
				t.Errorf("match(%q) ok = %v (err %v), want %v", tt.input, got, err, tt.ok)
			}
		})
	}
}

func TestRefUnboundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic on unbound Ref")
		}
	}()
	c := NewText("x")
	NewRef().Match(c, nil) //nolint:errcheck
}

func TestSyncRefSharedAcrossGoroutines(t *testing.T) {
	value := NewSyncRef()
	list := Seq(Str("("), Separate(value, Str(" ")), Str(")"))
	value.Bind(Or(OneMore(ASCIIAlphabetic()), list))

	inputs := []string{"(a b c)", "(a (b c) d)", "x", "((a))"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Each goroutine gets its own cursor; the matcher is shared.
			for _, in := range inputs {
				c := NewText(in)
				if _, err := TryMatch(value, c); err != nil {
					t.Errorf("goroutine %d: match(%q) error: %v", i, in, err)
				}
			}
		}(i)
	}
	wg.Wait()
}

// Package combex provides a programmatic pattern-matching engine for Go.
//
// combex recognizes regular-expression-like patterns — literals, character
// classes, anchors, quantifiers, alternation, separators, grouping — through
// direct composition of small matcher values instead of compiling a pattern
// string into an automaton. Callers build a grammar once, in code, and run it
// against a cursor over Unicode text or raw bytes, recording matched
// sub-ranges in a capture store.
//
// Basic usage:
//
//	// Build a grammar (once)
//	word := combex.OneMore(combex.ASCIIAlphabetic())
//	num := combex.OneMore(combex.ASCIIDigit())
//	pair := combex.Seq(combex.Cap(0, word), combex.Str("="), combex.Cap(1, num))
//
//	// Run it against an input
//	cur := combex.NewText("answer=42")
//	caps := combex.NewCaptures(2)
//	if _, err := pair.Match(cur, caps); err == nil {
//	    spans, _ := caps.Spans(1)
//	    // spans[0] covers "42"
//	}
//
// Design:
//   - Matchers are immutable values; all per-attempt state lives in the
//     Cursor and Captures, so one grammar serves any number of concurrent
//     attempts as long as each supplies its own cursor and store.
//   - Matching is backtracking-free: once a repetition commits past a unit it
//     never rewinds to try a shorter alternative. Data-dependent stop rules
//     are expressed with continuation predicates (RepeatIf) that look ahead
//     through the cursor instead of relying on engine backtracking. This
//     trades worst-case guarantees for speed by construction: an adversarial
//     continuation predicate can rescan the remaining input.
//   - Failures are typed values from a four-kind taxonomy (ErrOutOfBounds,
//     ErrMismatch, ErrCaptureRange, ErrConvert); combinators propagate the
//     first child failure unchanged, and only alternation, optionality and
//     Branch treat child failure as control flow.
//
// Recursive grammars use Ref or SyncRef handles; multi-literal alternations
// can be accelerated with the companion literal package.
package combex

import (
	"io"

	"github.com/coregx/combex/internal/trace"
)

// EnableTrace routes per-combinator match tracing to w as structured debug
// events. Tracing is for grammar debugging; enable it before matching starts
// and not concurrently with match attempts.
func EnableTrace(w io.Writer) {
	trace.Enable(w)
}

// DisableTrace turns match tracing back off.
func DisableTrace() {
	trace.Disable()
}

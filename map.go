package combex

import (
	"errors"
	"strconv"
)

// Mapped runs an inner matcher and converts the matched slice to a typed
// value. It implements Matcher, so it composes like any other matcher; use
// Value to obtain the converted result.
type Mapped[T any] struct {
	inner Matcher
	conv  func([]byte) (T, error)
}

// MapValue wraps a matcher with a conversion applied to the matched slice.
// A failing conversion surfaces as a ConvertError carrying the offending
// slice; the cursor position committed by the inner matcher is not rolled
// back.
func MapValue[T any](m Matcher, conv func([]byte) (T, error)) *Mapped[T] {
	return &Mapped[T]{inner: m, conv: conv}
}

// Value matches at the cursor's current position and converts the result.
func (p *Mapped[T]) Value(c *Cursor, caps *Captures) (T, Span, error) {
	var zero T
	span, err := p.inner.Match(c, caps)
	if err != nil {
		return zero, Span{}, err
	}
	raw, err := c.Slice(span)
	if err != nil {
		return zero, Span{}, err
	}
	v, err := p.conv(raw)
	if err != nil {
		return zero, span, &ConvertError{Input: raw, Cause: err}
	}
	return v, span, nil
}

// Match implements Matcher. The conversion still runs so that conversion
// failures are not masked, but the value is discarded.
func (p *Mapped[T]) Match(c *Cursor, caps *Captures) (Span, error) {
	_, span, err := p.Value(c, caps)
	return span, err
}

// Collected repeats a Mapped matcher and gathers each repetition's value
// into an ordered slice.
type Collected[T any] struct {
	inner *Mapped[T]
	min   int
}

// Collect repeats the mapped matcher greedily, requiring at least min
// repetitions. Like Times, a failing attempt ends collection and rewinds
// only that attempt.
func Collect[T any](p *Mapped[T], min int) *Collected[T] {
	if min < 0 {
		panic("combex: invalid repetition bounds")
	}
	return &Collected[T]{inner: p, min: min}
}

// Values matches repeatedly and returns the converted values in match order.
func (cl *Collected[T]) Values(c *Cursor, caps *Captures) ([]T, Span, error) {
	off := c.Offset()
	span := Span{Begin: off}
	var out []T
	for {
		mark := c.Offset()
		v, s, err := cl.inner.Value(c, caps)
		if err != nil {
			if isConvert(err) {
				// Conversion failures are real errors, not a stop signal.
				return nil, Span{}, err
			}
			if serr := c.Seek(mark); serr != nil {
				return nil, Span{}, serr
			}
			break
		}
		out = append(out, v)
		span = span.Join(s)
		if s.IsEmpty() && c.Offset() == mark {
			break
		}
	}
	if len(out) < cl.min {
		if err := c.Seek(off); err != nil {
			return nil, Span{}, err
		}
		return nil, Span{}, mismatch(off, "collected values")
	}
	return out, span, nil
}

// Match implements Matcher, discarding the collected values.
func (cl *Collected[T]) Match(c *Cursor, caps *Captures) (Span, error) {
	_, span, err := cl.Values(c, caps)
	return span, err
}

func isConvert(err error) bool {
	var ce *ConvertError
	return errors.As(err, &ce)
}

// Text converts a matched slice to a string. Handy with MapValue.
func Text(raw []byte) (string, error) {
	return string(raw), nil
}

// Int converts a matched slice to an int in base 10.
func Int(raw []byte) (int, error) {
	return strconv.Atoi(string(raw))
}

package combex

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every failure returned by a matcher wraps exactly one of
// these sentinels, so callers can classify failures with errors.Is without
// inspecting the concrete type.
var (
	// ErrOutOfBounds indicates a cursor advance or peek past the end of input,
	// or an advance that would leave a text cursor in the middle of a code point.
	ErrOutOfBounds = errors.New("offset out of bounds")

	// ErrMismatch indicates a predicate or literal failed to match at a position.
	ErrMismatch = errors.New("input mismatch")

	// ErrCaptureRange indicates a capture slot index outside the declared capacity.
	ErrCaptureRange = errors.New("capture slot out of range")

	// ErrConvert indicates a value conversion applied to a matched slice failed.
	ErrConvert = errors.New("conversion failed")
)

// MismatchError reports that the input at Pos did not satisfy the matcher.
// Expected is a short description of what the matcher was looking for.
type MismatchError struct {
	Pos      int
	Expected string
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("mismatch at offset %d: expected %s", e.Pos, e.Expected)
}

// Unwrap returns ErrMismatch so errors.Is(err, ErrMismatch) holds.
func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// mismatch builds the failure for a matcher that inspected input at pos.
func mismatch(pos int, expected string) error {
	return &MismatchError{Pos: pos, Expected: expected}
}

// CaptureError reports a capture slot outside the store's capacity.
// Capacity is zero when no store was supplied at all.
type CaptureError struct {
	Slot     int
	Capacity int
}

// Error implements the error interface.
func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture slot %d out of range (capacity %d)", e.Slot, e.Capacity)
}

// Unwrap returns ErrCaptureRange so errors.Is(err, ErrCaptureRange) holds.
func (e *CaptureError) Unwrap() error {
	return ErrCaptureRange
}

// ConvertError reports that a mapping stage could not convert the matched
// slice. Input is the offending slice; Cause is the converter's error.
// The cursor position committed by the inner matcher is unaffected.
type ConvertError struct {
	Input []byte
	Cause error
}

// Error implements the error interface.
func (e *ConvertError) Error() string {
	return fmt.Sprintf("cannot convert %q: %v", e.Input, e.Cause)
}

// Unwrap returns the converter's error.
func (e *ConvertError) Unwrap() error {
	return e.Cause
}

// Is reports true for ErrConvert, keeping the error inside the taxonomy while
// Unwrap exposes the underlying cause.
func (e *ConvertError) Is(target error) bool {
	return target == ErrConvert
}

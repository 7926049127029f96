package combex

import (
	"strings"
	"unicode"
)

// Pred is a pure boolean test over a single input unit. Predicates never
// consume input; matchers like One and Repeat drive the cursor and consult
// the predicate at each position.
type Pred func(Unit) bool

// And returns a predicate true when both p and q hold. q is not evaluated
// when p fails.
func (p Pred) And(q Pred) Pred {
	return func(u Unit) bool { return p(u) && q(u) }
}

// Or returns a predicate true when either p or q holds. q is not evaluated
// when p succeeds.
func (p Pred) Or(q Pred) Pred {
	return func(u Unit) bool { return p(u) || q(u) }
}

// Not inverts the predicate. A unit must still exist at the position: the
// matcher consuming the predicate fails at end of input rather than
// vacuously succeeding.
func (p Pred) Not() Pred {
	return func(u Unit) bool { return !p(u) }
}

// Is matches exactly the given code point (or byte value, widened).
func Is(r rune) Pred {
	return func(u Unit) bool { return u.Value == r }
}

// InRange matches units in the inclusive range [lo, hi].
func InRange(lo, hi rune) Pred {
	return func(u Unit) bool { return u.Value >= lo && u.Value <= hi }
}

// InSet matches units whose value appears in set.
func InSet(set string) Pred {
	return func(u Unit) bool { return strings.ContainsRune(set, u.Value) }
}

// Any matches every unit.
func Any() Pred {
	return func(Unit) bool { return true }
}

// None matches no unit.
func None() Pred {
	return func(Unit) bool { return false }
}

// Wild matches any unit except a line feed, like an unflagged regex dot.
func Wild() Pred {
	return func(u Unit) bool { return u.Value != '\n' }
}

// Named classes, mirroring the unicode package's categories.

// Alphabetic matches letters.
func Alphabetic() Pred {
	return func(u Unit) bool { return unicode.IsLetter(u.Value) }
}

// Alphanumeric matches letters and decimal digits.
func Alphanumeric() Pred {
	return func(u Unit) bool { return unicode.IsLetter(u.Value) || unicode.IsDigit(u.Value) }
}

// Digit matches decimal digits.
func Digit() Pred {
	return func(u Unit) bool { return unicode.IsDigit(u.Value) }
}

// Numeric matches numeric code points, including non-decimal forms.
func Numeric() Pred {
	return func(u Unit) bool { return unicode.IsNumber(u.Value) }
}

// Lowercase matches lowercase letters.
func Lowercase() Pred {
	return func(u Unit) bool { return unicode.IsLower(u.Value) }
}

// Uppercase matches uppercase letters.
func Uppercase() Pred {
	return func(u Unit) bool { return unicode.IsUpper(u.Value) }
}

// Whitespace matches white space.
func Whitespace() Pred {
	return func(u Unit) bool { return unicode.IsSpace(u.Value) }
}

// Control matches control code points.
func Control() Pred {
	return func(u Unit) bool { return unicode.IsControl(u.Value) }
}

// ASCII sub-classes.

// ASCII matches any 7-bit unit.
func ASCII() Pred {
	return func(u Unit) bool { return u.Value <= unicode.MaxASCII }
}

// ASCIIAlphabetic matches [A-Za-z].
func ASCIIAlphabetic() Pred {
	return func(u Unit) bool {
		return (u.Value >= 'a' && u.Value <= 'z') || (u.Value >= 'A' && u.Value <= 'Z')
	}
}

// ASCIIAlphanumeric matches [0-9A-Za-z].
func ASCIIAlphanumeric() Pred {
	return ASCIIAlphabetic().Or(ASCIIDigit())
}

// ASCIIDigit matches [0-9].
func ASCIIDigit() Pred {
	return func(u Unit) bool { return u.Value >= '0' && u.Value <= '9' }
}

// ASCIIHexDigit matches [0-9A-Fa-f].
func ASCIIHexDigit() Pred {
	return func(u Unit) bool {
		return (u.Value >= '0' && u.Value <= '9') ||
			(u.Value >= 'a' && u.Value <= 'f') ||
			(u.Value >= 'A' && u.Value <= 'F')
	}
}

// ASCIILowercase matches [a-z].
func ASCIILowercase() Pred {
	return func(u Unit) bool { return u.Value >= 'a' && u.Value <= 'z' }
}

// ASCIIUppercase matches [A-Z].
func ASCIIUppercase() Pred {
	return func(u Unit) bool { return u.Value >= 'A' && u.Value <= 'Z' }
}

// ASCIIWhitespace matches space, tab, line feed, form feed and carriage return.
func ASCIIWhitespace() Pred {
	return func(u Unit) bool {
		switch u.Value {
		case ' ', '\t', '\n', '\f', '\r':
			return true
		}
		return false
	}
}

// ASCIIControl matches ASCII control characters, including DEL.
func ASCIIControl() Pred {
	return func(u Unit) bool { return u.Value < 0x20 || u.Value == 0x7f }
}

// ASCIIGraphic matches visible ASCII characters [!-~].
func ASCIIGraphic() Pred {
	return func(u Unit) bool { return u.Value >= '!' && u.Value <= '~' }
}

// ASCIIPunctuation matches ASCII punctuation: graphic characters that are
// neither letters nor digits.
func ASCIIPunctuation() Pred {
	return func(u Unit) bool {
		return (u.Value >= '!' && u.Value <= '/') ||
			(u.Value >= ':' && u.Value <= '@') ||
			(u.Value >= '[' && u.Value <= '`') ||
			(u.Value >= '{' && u.Value <= '~')
	}
}

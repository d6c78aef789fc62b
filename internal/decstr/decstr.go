// Package decstr holds the decimal string helpers shared by the value type
// and the arithmetic backends.
//
// A decimal string is formatted according to the following EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// The canonical form additionally has no leading zeros in the integer part,
// no trailing zeros in the fractional part and, unless a backend asks for a
// signed zero explicitly, no sign on zero.
package decstr

import (
	"errors"
	"strings"
)

var (
	ErrSyntax         = errors.New("invalid number")
	ErrDivisionByZero = errors.New("division by zero")
)

// Valid reports whether s is a decimal string.
func Valid(s string) bool {
	var (
		pos   int
		width int
		whole bool
		frac  bool
	)

	width = len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		whole = true
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			frac = true
			pos++
		}
		if !frac {
			return false
		}
	}

	return whole && pos == width
}

// IsNeg reports whether s carries a minus sign.
func IsNeg(s string) bool {
	return strings.HasPrefix(s, "-")
}

// Split returns the sign, the integer digits and the fractional digits of s.
func Split(s string) (neg bool, whole, frac string) {
	if IsNeg(s) {
		neg = true
		s = s[1:]
	}
	whole, frac, _ = strings.Cut(s, ".")
	return neg, whole, frac
}

// IsZero reports whether all digits of s are zeros.
func IsZero(s string) bool {
	_, whole, frac := Split(s)
	return zeros(whole) && zeros(frac)
}

func zeros(digits string) bool {
	return strings.Trim(digits, "0") == ""
}

// Join assembles a canonical decimal string from its parts.
// A minus sign is written whenever neg is true, zero included.
func Join(neg bool, whole, frac string) string {
	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	frac = strings.TrimRight(frac, "0")

	var b strings.Builder
	b.Grow(len(whole) + len(frac) + 2)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(whole)
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// Canon returns the canonical form of s. Zero is always unsigned.
func Canon(s string) string {
	neg, whole, frac := Split(s)
	if zeros(whole) && zeros(frac) {
		neg = false
	}
	return Join(neg, whole, frac)
}

// Signed returns the canonical magnitude of s with the sign given by neg.
// Unlike [Canon], zero keeps the requested sign.
func Signed(s string, neg bool) string {
	_, whole, frac := Split(s)
	return Join(neg, whole, frac)
}

// Scaled renders the unsigned coefficient digits divided by 10^scale.
func Scaled(neg bool, digits string, scale int) string {
	if scale <= 0 {
		return Join(neg, digits, "")
	}
	if pad := scale + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	cut := len(digits) - scale
	return Join(neg, digits[:cut], digits[cut:])
}

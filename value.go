package number

import (
	"errors"
	"strconv"
	"strings"

	"github.com/govalues/number/internal/decstr"
)

// Value type is a representation of an arbitrary-precision decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A value type is a struct with two fields:
//
//   - Number: a decimal string, see the package documentation for its grammar.
//   - Backend: the arithmetic backend the value was created with.
//     A value without a backend uses [DefaultBackend].
//
// Results of arithmetic operations inherit the backend of the receiver.
type Value struct {
	num  string  // the decimal string, empty means "0"
	calc Backend // the arithmetic backend, nil means the default one
}

var (
	// ErrInvalidNumber is returned when a string is not a decimal number.
	ErrInvalidNumber = decstr.ErrSyntax
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = decstr.ErrDivisionByZero
	// ErrUnsupportedType is returned by [Of] and [Value.Scan] for kinds they cannot convert.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrUnsupportedOperation is returned for unknown operation codes and names.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrBackendInstalled is returned by [SetDefaultBackend] once the default backend is fixed.
	ErrBackendInstalled = errors.New("default backend already installed")
	// ErrNilBackend is returned by [SetDefaultBackend] for a nil backend.
	ErrNilBackend = errors.New("nil backend")
)

func (v Value) text() string {
	if v.num == "" {
		return "0"
	}
	return v.num
}

func (v Value) backend() Backend {
	if v.calc != nil {
		return v.calc
	}
	return DefaultBackend()
}

// Backend returns the arithmetic backend used by v.
func (v Value) Backend() Backend {
	return v.backend()
}

// WithBackend returns a copy of v bound to backend b.
// A nil b binds the copy to [DefaultBackend].
func (v Value) WithBackend(b Backend) Value {
	v.calc = b
	return v
}

// split divides v into its integer part (sign included) and its fractional
// part without trailing zeros.
func (v Value) split() (whole, frac string) {
	whole, frac, _ = strings.Cut(v.text(), ".")
	return whole, strings.TrimRight(frac, "0")
}

// IsInt returns true if the fractional part of v has no significant digits.
func (v Value) IsInt() bool {
	_, frac := v.split()
	return frac == ""
}

// HasFrac returns true if the fractional part of v has significant digits.
func (v Value) HasFrac() bool {
	return !v.IsInt()
}

// IsNeg returns true if v is negative-signed, "-0" included.
func (v Value) IsNeg() bool {
	return decstr.IsNeg(v.text())
}

// IsPos returns true if v is not negative-signed, "0" included.
func (v Value) IsPos() bool {
	return !v.IsNeg()
}

// String method implements the [fmt.Stringer] interface and returns
// the decimal string of v without trailing fractional zeros.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Value) String() string {
	whole, frac := v.split()
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}

// Int64 returns the integer part of v, truncated towards zero.
// If the integer part does not fit into int64, the result is clamped
// to the int64 range and ok is false.
func (v Value) Int64() (n int64, ok bool) {
	whole, _ := v.split()
	n, err := strconv.ParseInt(whole, 10, 64)
	return n, err == nil
}

// Float64 returns the float64 nearest to v.
// If v is out of the float64 range, the result is an infinity and ok is false.
func (v Value) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(v.String(), 64)
	return f, err == nil
}

package number

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/number/internal/decstr"
	"github.com/govalues/number/internal/textutil"
)

// Parse converts a string to a value.
//
// The input must be valid UTF-8. It is cleaned before validation:
// whitespace (including zero-width and filler characters) is trimmed and
// collapsed, a single leading '+' is removed and a trailing '.' is
// completed with '0'. The result must then match the grammar described in
// the package documentation, otherwise Parse returns [ErrInvalidNumber].
//
// Parse keeps the digits of the input, including leading integer zeros and
// trailing fractional zeros.
func Parse(s string) (Value, error) {
	num, ok := textutil.Squish(s)
	if !ok {
		return Value{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidNumber)
	}
	num = strings.TrimPrefix(num, "+")
	if strings.HasSuffix(num, ".") {
		num += "0"
	}
	if !decstr.Valid(num) {
		return Value{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidNumber)
	}
	return Value{num: num}, nil
}

// FromInt64 converts an integer to a value.
func FromInt64(n int64) Value {
	return Value{num: strconv.FormatInt(n, 10)}
}

// FromUint64 converts an unsigned integer to a value.
func FromUint64(n uint64) Value {
	return Value{num: strconv.FormatUint(n, 10)}
}

// FromFloat64 converts a float to a value using the shortest decimal
// representation that round-trips to f, without exponent notation.
// FromFloat64 returns [ErrInvalidNumber] if f is NaN or an infinity.
func FromFloat64(f float64) (Value, error) {
	return fromFloat(f, 64)
}

// FromFloat32 is like [FromFloat64] for float32.
func FromFloat32(f float32) (Value, error) {
	return fromFloat(float64(f), 32)
}

func fromFloat(f float64, bitSize int) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("converting %v: %w", f, ErrInvalidNumber)
	}
	return Value{num: strconv.FormatFloat(f, 'f', -1, bitSize)}, nil
}

// Of converts a Go value to a value.
//
// Supported kinds are the built-in integer, float and string types,
// [Value], non-nil *[Value] and the [Operand] kinds.
// A [Value] is copied together with its backend.
// Of returns [ErrUnsupportedType] for any other kind.
func Of(x any) (Value, error) {
	switch x := x.(type) {
	case Value:
		return x, nil
	case *Value:
		if x == nil {
			return Value{}, fmt.Errorf("converting %T: %w", x, ErrUnsupportedType)
		}
		return *x, nil
	case Operand:
		return x.operand()
	case int:
		return FromInt64(int64(x)), nil
	case int8:
		return FromInt64(int64(x)), nil
	case int16:
		return FromInt64(int64(x)), nil
	case int32:
		return FromInt64(int64(x)), nil
	case int64:
		return FromInt64(x), nil
	case uint:
		return FromUint64(uint64(x)), nil
	case uint8:
		return FromUint64(uint64(x)), nil
	case uint16:
		return FromUint64(uint64(x)), nil
	case uint32:
		return FromUint64(uint64(x)), nil
	case uint64:
		return FromUint64(x), nil
	case float32:
		return FromFloat32(x)
	case float64:
		return FromFloat64(x)
	case string:
		return Parse(x)
	default:
		return Value{}, fmt.Errorf("converting %T: %w", x, ErrUnsupportedType)
	}
}

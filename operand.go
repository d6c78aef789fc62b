package number

// Operand is an argument of an arithmetic or comparison operation.
// The set of operands is closed: it is implemented only by [Value], [Int],
// [Uint], [Float] and [Str]. Use [Of] to convert other Go values.
type Operand interface {
	operand() (Value, error)
}

type (
	// Int is a signed integer operand.
	Int int64
	// Uint is an unsigned integer operand.
	Uint uint64
	// Float is a floating-point operand.
	// It is converted using the shortest decimal representation that
	// round-trips to the same float64.
	Float float64
	// Str is a string operand. It is converted with [Parse].
	Str string
)

func (v Value) operand() (Value, error) { return v, nil }
func (n Int) operand() (Value, error)   { return FromInt64(int64(n)), nil }
func (n Uint) operand() (Value, error)  { return FromUint64(uint64(n)), nil }
func (f Float) operand() (Value, error) { return FromFloat64(float64(f)) }
func (s Str) operand() (Value, error)   { return Parse(string(s)) }

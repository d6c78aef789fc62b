package number

// Context creates values bound to a specific backend.
// The zero Context uses [DefaultBackend], and package-level functions such as
// [Parse], [Of] and [Sum] are shorthands for the zero Context.
//
// Values created through a Context carry its backend, and so do the results
// of arithmetic operations on them.
type Context struct {
	calc Backend
}

// NewContext returns a context bound to backend b.
// A nil b is equivalent to the zero Context.
func NewContext(b Backend) Context {
	return Context{calc: b}
}

// Backend returns the backend used by c.
func (c Context) Backend() Backend {
	if c.calc != nil {
		return c.calc
	}
	return DefaultBackend()
}

func (c Context) bind(v Value) Value {
	if c.calc != nil {
		v.calc = c.calc
	}
	return v
}

// Zero returns 0 bound to the backend of c.
func (c Context) Zero() Value {
	return c.bind(Value{})
}

// Parse is like [Parse] but binds the result to the backend of c.
func (c Context) Parse(s string) (Value, error) {
	v, err := Parse(s)
	if err != nil {
		return Value{}, err
	}
	return c.bind(v), nil
}

// Of is like [Of] but binds the result to the backend of c.
func (c Context) Of(x any) (Value, error) {
	v, err := Of(x)
	if err != nil {
		return Value{}, err
	}
	return c.bind(v), nil
}

// FromInt64 is like [FromInt64] but binds the result to the backend of c.
func (c Context) FromInt64(n int64) Value {
	return c.bind(FromInt64(n))
}

// FromFloat64 is like [FromFloat64] but binds the result to the backend of c.
func (c Context) FromFloat64(f float64) (Value, error) {
	v, err := FromFloat64(f)
	if err != nil {
		return Value{}, err
	}
	return c.bind(v), nil
}

// Sum returns the sum of the operands computed with the backend of c.
// Sum returns 0 if there are no operands.
func (c Context) Sum(ops ...Operand) (Value, error) {
	if len(ops) == 0 {
		return c.Zero(), nil
	}
	first, err := ops[0].operand()
	if err != nil {
		return Value{}, err
	}
	return c.bind(first).Add(ops[1:]...)
}

// Mean returns the arithmetic mean of the operands computed with the
// backend of c. Mean returns 0 if there are no operands.
func (c Context) Mean(ops ...Operand) (Value, error) {
	if len(ops) == 0 {
		return c.Zero(), nil
	}
	sum, err := c.Sum(ops...)
	if err != nil {
		return Value{}, err
	}
	return sum.Quo(Int(len(ops)))
}

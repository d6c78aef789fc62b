package number

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding values.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return v
}

// MustOf is like [Of] but panics if x cannot be converted.
func MustOf(x any) Value {
	v, err := Of(x)
	if err != nil {
		panic(fmt.Sprintf("MustOf(%v) failed: %v", x, err))
	}
	return v
}

// MustAdd is like [Value.Add] but panics if computing error.
func (v Value) MustAdd(ops ...Operand) Value {
	w, err := v.Add(ops...)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", v, err))
	}
	return w
}

// MustSub is like [Value.Sub] but panics if computing error.
func (v Value) MustSub(ops ...Operand) Value {
	w, err := v.Sub(ops...)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", v, err))
	}
	return w
}

// MustMul is like [Value.Mul] but panics if computing error.
func (v Value) MustMul(ops ...Operand) Value {
	w, err := v.Mul(ops...)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", v, err))
	}
	return w
}

// MustQuo is like [Value.Quo] but panics if computing error.
func (v Value) MustQuo(ops ...Operand) Value {
	w, err := v.Quo(ops...)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", v, err))
	}
	return w
}

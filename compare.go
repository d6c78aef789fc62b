package number

// Cmp compares v and x numerically and returns:
//
//	-1 if v < x
//	 0 if v == x
//	+1 if v > x
//
// Both values are truncated to the backend precision before comparison.
// Cmp returns an error only if x cannot be converted.
func (v Value) Cmp(x Operand) (int, error) {
	w, err := x.operand()
	if err != nil {
		return 0, err
	}
	return v.backend().Cmp(v.String(), w.String()), nil
}

// Equal returns true if v == x.
func (v Value) Equal(x Operand) (bool, error) {
	r, err := v.Cmp(x)
	return r == 0 && err == nil, err
}

// NotEqual returns true if v != x.
func (v Value) NotEqual(x Operand) (bool, error) {
	r, err := v.Cmp(x)
	return r != 0 && err == nil, err
}

// Greater returns true if v > x.
func (v Value) Greater(x Operand) (bool, error) {
	r, err := v.Cmp(x)
	return r > 0 && err == nil, err
}

// GreaterOrEqual returns true if v >= x.
func (v Value) GreaterOrEqual(x Operand) (bool, error) {
	r, err := v.Cmp(x)
	return r >= 0 && err == nil, err
}

// Less returns true if v < x.
func (v Value) Less(x Operand) (bool, error) {
	r, err := v.Cmp(x)
	return r < 0 && err == nil, err
}

// LessOrEqual returns true if v <= x.
func (v Value) LessOrEqual(x Operand) (bool, error) {
	r, err := v.Cmp(x)
	return r <= 0 && err == nil, err
}

// IsZero returns true if v is numerically equal to 0.
// Both "0" and "-0" are zeros, and so is any value that truncates to 0.
func (v Value) IsZero() bool {
	return v.backend().Cmp(v.String(), "0") == 0
}

// Neg returns v multiplied by -1.
// The sign of a zero is flipped too: the negation of "0" is "-0".
func (v Value) Neg() (Value, error) {
	return v.Mul(Int(-1))
}

// Abs returns the absolute value of v.
// A negative-signed v is negated, otherwise v is returned unchanged.
func (v Value) Abs() (Value, error) {
	if v.IsNeg() {
		return v.Neg()
	}
	return v, nil
}

// NegAbs returns the negated absolute value of v.
// A positive-signed v is negated, otherwise v is returned unchanged.
func (v Value) NegAbs() (Value, error) {
	if v.IsPos() {
		return v.Neg()
	}
	return v, nil
}

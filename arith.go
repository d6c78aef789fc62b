package number

import (
	"fmt"
	"strings"
)

// Op is an arithmetic operation code.
type Op int

const (
	OpAdd Op = iota + 1 // addition
	OpSub               // subtraction
	OpMul               // multiplication
	OpQuo               // truncated division
)

// String returns the operator symbol of op.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpQuo:
		return "/"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// ParseOp converts an operation name or symbol to an operation code.
// Names are case-insensitive.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return OpAdd, nil
	case "sub", "-":
		return OpSub, nil
	case "mul", "*":
		return OpMul, nil
	case "quo", "div", "/":
		return OpQuo, nil
	default:
		return 0, fmt.Errorf("parsing operation %q: %w", s, ErrUnsupportedOperation)
	}
}

func (op Op) binary(b Backend) (func(x, y string) (string, error), error) {
	switch op {
	case OpAdd:
		return b.Add, nil
	case OpSub:
		return b.Sub, nil
	case OpMul:
		return b.Mul, nil
	case OpQuo:
		return b.Quo, nil
	default:
		return nil, fmt.Errorf("applying %v: %w", op, ErrUnsupportedOperation)
	}
}

// Apply folds operation op over the operands from left to right,
// starting with v. With no operands Apply returns v unchanged.
//
// Apply returns an error if:
//   - op is not one of [OpAdd], [OpSub], [OpMul], [OpQuo];
//   - an operand cannot be converted;
//   - the backend fails, for example on division by zero.
func (v Value) Apply(op Op, ops ...Operand) (Value, error) {
	calc := v.backend()
	f, err := op.binary(calc)
	if err != nil {
		return Value{}, err
	}
	acc := v
	for _, o := range ops {
		w, err := o.operand()
		if err != nil {
			return Value{}, err
		}
		num, err := f(acc.String(), w.String())
		if err != nil {
			return Value{}, fmt.Errorf("computing [%v %v %v]: %w", acc, op, w, err)
		}
		acc = Value{num: num, calc: v.calc}
	}
	return acc, nil
}

// Add returns the sum of v and the operands, added from left to right.
func (v Value) Add(ops ...Operand) (Value, error) {
	return v.Apply(OpAdd, ops...)
}

// Sub returns v minus each of the operands, subtracted from left to right.
func (v Value) Sub(ops ...Operand) (Value, error) {
	return v.Apply(OpSub, ops...)
}

// Mul returns the product of v and the operands, multiplied from left to right.
func (v Value) Mul(ops ...Operand) (Value, error) {
	return v.Apply(OpMul, ops...)
}

// Quo returns v divided by each of the operands from left to right:
//
//	v.Quo(a, b) == (v / a) / b
//
// Quo returns [ErrDivisionByZero] if any divisor is zero.
func (v Value) Quo(ops ...Operand) (Value, error) {
	return v.Apply(OpQuo, ops...)
}

// Sum returns the sum of the operands.
// Sum returns 0 if there are no operands.
func Sum(ops ...Operand) (Value, error) {
	return Context{}.Sum(ops...)
}

// Mean returns the arithmetic mean of the operands.
// Mean returns 0 if there are no operands.
func Mean(ops ...Operand) (Value, error) {
	return Context{}.Mean(ops...)
}

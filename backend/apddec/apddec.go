// Package apddec implements an arithmetic backend on top of
// [github.com/cockroachdb/apd/v3] decimals.
package apddec

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/govalues/number/internal/decstr"
)

// Backend is a fixed-precision decimal calculator.
// It is stateless and safe for concurrent use.
type Backend struct {
	prec int
}

// New returns a backend that keeps prec fractional digits.
// Negative precisions are treated as zero.
func New(prec int) *Backend {
	if prec < 0 {
		prec = 0
	}
	return &Backend{prec: prec}
}

// Precision returns the number of fractional digits kept by the backend.
func (b *Backend) Precision() int {
	return b.prec
}

// context returns an arithmetic context wide enough to hold every digit of
// x op y that survives truncation to the backend precision.
func (b *Backend) context(x, y string) *apd.Context {
	ctx := apd.BaseContext.WithPrecision(uint32(len(x) + len(y) + b.prec + 2))
	ctx.Rounding = apd.RoundDown
	return ctx
}

func parse(s string) (*apd.Decimal, error) {
	if !decstr.Valid(s) {
		return nil, fmt.Errorf("parsing %q: %w", s, decstr.ErrSyntax)
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", s, decstr.ErrSyntax)
	}
	return d, nil
}

func parsePair(a, b string) (x, y *apd.Decimal, err error) {
	x, err = parse(a)
	if err != nil {
		return nil, nil, err
	}
	y, err = parse(b)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

type operation func(ctx *apd.Context, z, x, y *apd.Decimal) (apd.Condition, error)

// apply computes op(x, y) and truncates the result towards zero.
func (b *Backend) apply(op operation, x, y string) (string, error) {
	d, e, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	ctx := b.context(x, y)
	var z, q apd.Decimal
	if _, err := op(ctx, &z, d, e); err != nil {
		return "", err
	}
	if _, err := ctx.Quantize(&q, &z, -int32(b.prec)); err != nil {
		return "", err
	}
	return q.Text('f'), nil
}

// Add returns x + y.
func (b *Backend) Add(x, y string) (string, error) {
	z, err := b.apply((*apd.Context).Add, x, y)
	if err != nil {
		return "", err
	}
	return decstr.Canon(z), nil
}

// Sub returns x - y.
func (b *Backend) Sub(x, y string) (string, error) {
	z, err := b.apply((*apd.Context).Sub, x, y)
	if err != nil {
		return "", err
	}
	return decstr.Canon(z), nil
}

// Mul returns x * y.
// The sign of the result is the product of the operand signs, even when the
// truncated magnitude is zero.
func (b *Backend) Mul(x, y string) (string, error) {
	z, err := b.apply((*apd.Context).Mul, x, y)
	if err != nil {
		return "", err
	}
	return decstr.Signed(z, decstr.IsNeg(x) != decstr.IsNeg(y)), nil
}

// Quo returns x / y.
// See [Backend.Mul] for the sign of a zero result.
func (b *Backend) Quo(x, y string) (string, error) {
	e, err := parse(y)
	if err != nil {
		return "", err
	}
	if e.IsZero() {
		if _, err := parse(x); err != nil {
			return "", err
		}
		return "", decstr.ErrDivisionByZero
	}
	z, err := b.apply((*apd.Context).Quo, x, y)
	if err != nil {
		return "", err
	}
	return decstr.Signed(z, decstr.IsNeg(x) != decstr.IsNeg(y)), nil
}

// Cmp compares x and y after truncating both to the backend precision.
// Cmp panics if either argument is not a decimal string.
func (b *Backend) Cmp(x, y string) int {
	d, e, err := parsePair(x, y)
	if err != nil {
		panic(fmt.Sprintf("Cmp(%q, %q) failed: %v", x, y, err))
	}
	ctx := b.context(x, y)
	var p, q apd.Decimal
	if _, err := ctx.Quantize(&p, d, -int32(b.prec)); err != nil {
		panic(fmt.Sprintf("Cmp(%q, %q) failed: %v", x, y, err))
	}
	if _, err := ctx.Quantize(&q, e, -int32(b.prec)); err != nil {
		panic(fmt.Sprintf("Cmp(%q, %q) failed: %v", x, y, err))
	}
	return p.Cmp(&q)
}

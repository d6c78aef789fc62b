// Package shopdec implements an arithmetic backend on top of
// [github.com/shopspring/decimal].
package shopdec

import (
	"fmt"

	"github.com/govalues/number/internal/decstr"
	"github.com/shopspring/decimal"
)

// Backend is a fixed-precision decimal calculator.
// It is stateless and safe for concurrent use.
type Backend struct {
	prec int32
}

// New returns a backend that keeps prec fractional digits.
// Negative precisions are treated as zero.
func New(prec int) *Backend {
	if prec < 0 {
		prec = 0
	}
	return &Backend{prec: int32(prec)}
}

// Precision returns the number of fractional digits kept by the backend.
func (b *Backend) Precision() int {
	return int(b.prec)
}

func parse(s string) (decimal.Decimal, error) {
	if !decstr.Valid(s) {
		return decimal.Zero, fmt.Errorf("parsing %q: %w", s, decstr.ErrSyntax)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %q: %w", s, decstr.ErrSyntax)
	}
	return d, nil
}

func parsePair(a, b string) (x, y decimal.Decimal, err error) {
	x, err = parse(a)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	y, err = parse(b)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return x, y, nil
}

// Add returns x + y.
func (b *Backend) Add(x, y string) (string, error) {
	d, e, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	return decstr.Canon(d.Add(e).Truncate(b.prec).String()), nil
}

// Sub returns x - y.
func (b *Backend) Sub(x, y string) (string, error) {
	d, e, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	return decstr.Canon(d.Sub(e).Truncate(b.prec).String()), nil
}

// Mul returns x * y.
// The sign of the result is the product of the operand signs, even when the
// truncated magnitude is zero.
func (b *Backend) Mul(x, y string) (string, error) {
	d, e, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	z := d.Mul(e).Truncate(b.prec)
	return decstr.Signed(z.String(), decstr.IsNeg(x) != decstr.IsNeg(y)), nil
}

// Quo returns x / y.
// See [Backend.Mul] for the sign of a zero result.
func (b *Backend) Quo(x, y string) (string, error) {
	d, e, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	if e.IsZero() {
		return "", decstr.ErrDivisionByZero
	}
	// QuoRem truncates the quotient towards zero.
	q, _ := d.QuoRem(e, b.prec)
	return decstr.Signed(q.String(), decstr.IsNeg(x) != decstr.IsNeg(y)), nil
}

// Cmp compares x and y after truncating both to the backend precision.
// Cmp panics if either argument is not a decimal string.
func (b *Backend) Cmp(x, y string) int {
	d, e, err := parsePair(x, y)
	if err != nil {
		panic(fmt.Sprintf("Cmp(%q, %q) failed: %v", x, y, err))
	}
	return d.Truncate(b.prec).Cmp(e.Truncate(b.prec))
}

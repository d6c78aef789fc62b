// Package infdec implements the default arithmetic backend on top of
// [gopkg.in/inf.v0] decimals.
//
// Every result is the exact result truncated towards zero to the configured
// number of fractional digits.
package infdec

import (
	"fmt"

	"github.com/govalues/number/internal/decstr"
	"gopkg.in/inf.v0"
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

func (b *Backend) scale() inf.Scale {
	return inf.Scale(b.prec)
}

func parse(s string) (*inf.Dec, error) {
	if !decstr.Valid(s) {
		return nil, fmt.Errorf("parsing %q: %w", s, decstr.ErrSyntax)
	}
	d, ok := new(inf.Dec).SetString(s)
	if !ok {
		return nil, fmt.Errorf("parsing %q: %w", s, decstr.ErrSyntax)
	}
	return d, nil
}

func parsePair(a, b string) (x, y *inf.Dec, err error) {
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

// truncate rounds x towards zero.
func (b *Backend) truncate(x *inf.Dec) *inf.Dec {
	return new(inf.Dec).Round(x, b.scale(), inf.RoundDown)
}

// Add returns x + y.
func (b *Backend) Add(x, y string) (string, error) {
	d, e, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	z := new(inf.Dec).Add(d, e)
	return decstr.Canon(b.truncate(z).String()), nil
}

// Sub returns x - y.
func (b *Backend) Sub(x, y string) (string, error) {
	d, e, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	z := new(inf.Dec).Sub(d, e)
	return decstr.Canon(b.truncate(z).String()), nil
}

// Mul returns x * y.
// The sign of the result is the product of the operand signs, even when the
// truncated magnitude is zero.
func (b *Backend) Mul(x, y string) (string, error) {
	d, e, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	z := new(inf.Dec).Mul(d, e)
	return decstr.Signed(b.truncate(z).String(), decstr.IsNeg(x) != decstr.IsNeg(y)), nil
}

// Quo returns x / y.
// See [Backend.Mul] for the sign of a zero result.
func (b *Backend) Quo(x, y string) (string, error) {
	d, e, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	if e.Sign() == 0 {
		return "", decstr.ErrDivisionByZero
	}
	z := new(inf.Dec).QuoRound(d, e, b.scale(), inf.RoundDown)
	return decstr.Signed(z.String(), decstr.IsNeg(x) != decstr.IsNeg(y)), nil
}

// Cmp compares x and y after truncating both to the backend precision.
// Cmp panics if either argument is not a decimal string.
func (b *Backend) Cmp(x, y string) int {
	d, e, err := parsePair(x, y)
	if err != nil {
		panic(fmt.Sprintf("Cmp(%q, %q) failed: %v", x, y, err))
	}
	return b.truncate(d).Cmp(b.truncate(e))
}

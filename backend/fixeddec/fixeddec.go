// Package fixeddec implements a dependency-free arithmetic backend.
//
// A decimal is kept as a sign, an arbitrary-precision integer coefficient and
// a scale, so that the value equals (-1)^neg * coef / 10^scale.
// Every result is the exact result truncated towards zero to the configured
// number of fractional digits. The backend serves as the reference against
// which the library-based backends are cross-checked.
package fixeddec

import (
	"fmt"

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

type decimal struct {
	neg   bool  // indicates whether the decimal is negative
	coef  *bint // the coefficient of the decimal
	scale int   // the position of the floating decimal point
}

func parse(dec string) (decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		coef    *bint
		scale   int
		hascoef bool
		hasfrac bool
	)

	coef = new(bint)
	width = len(dec)

	// Sign
	if pos < width && dec[pos] == '-' {
		neg = true
		pos++
	}

	// Integer
	for pos < width && dec[pos] >= '0' && dec[pos] <= '9' {
		hascoef = true
		coef.fsa(coef, dec[pos]-'0')
		pos++
	}

	// Fraction
	if pos < width && dec[pos] == '.' {
		pos++
		for pos < width && dec[pos] >= '0' && dec[pos] <= '9' {
			hasfrac = true
			coef.fsa(coef, dec[pos]-'0')
			scale++
			pos++
		}
		if !hasfrac {
			return decimal{}, fmt.Errorf("parsing %q: no fraction: %w", dec, decstr.ErrSyntax)
		}
	}

	if pos != width {
		return decimal{}, fmt.Errorf("parsing %q: invalid character at %v: %w", dec, pos, decstr.ErrSyntax)
	}
	if !hascoef {
		return decimal{}, fmt.Errorf("parsing %q: no coefficient: %w", dec, decstr.ErrSyntax)
	}

	return decimal{neg: neg, coef: coef, scale: scale}, nil
}

func parsePair(a, b string) (x, y decimal, err error) {
	x, err = parse(a)
	if err != nil {
		return decimal{}, decimal{}, err
	}
	y, err = parse(b)
	if err != nil {
		return decimal{}, decimal{}, err
	}
	return x, y, nil
}

func (d decimal) isZero() bool {
	return d.coef.sign() == 0
}

// sign returns -1, 0 or +1. Zero is unsigned regardless of neg.
func (d decimal) sign() int {
	switch {
	case d.isZero():
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// trunc rounds d towards zero to at most prec fractional digits.
func (d decimal) trunc(prec int) decimal {
	if d.scale <= prec {
		return d
	}
	coef := new(bint)
	coef.rshDown(d.coef, d.scale-prec)
	return decimal{neg: d.neg, coef: coef, scale: prec}
}

// string renders the magnitude of d; the caller decides the sign.
func (d decimal) string() string {
	return decstr.Scaled(false, d.coef.string(), d.scale)
}

// align returns the coefficients of d and e rescaled to a common scale.
func align(d, e decimal) (dcoef, ecoef *bint, scale int) {
	dcoef = new(bint)
	ecoef = new(bint)
	switch {
	case d.scale == e.scale:
		dcoef.setBint(d.coef)
		ecoef.setBint(e.coef)
		scale = d.scale
	case e.scale < d.scale:
		dcoef.setBint(d.coef)
		ecoef.lsh(e.coef, d.scale-e.scale)
		scale = d.scale
	default:
		dcoef.lsh(d.coef, e.scale-d.scale)
		ecoef.setBint(e.coef)
		scale = e.scale
	}
	return dcoef, ecoef, scale
}

func (b *Backend) add(d, e decimal) string {
	var neg bool

	dcoef, ecoef, scale := align(d, e)

	// Sign
	if dcoef.cmp(ecoef) > 0 {
		neg = d.neg
	} else {
		neg = e.neg
	}

	// Coefficient
	if d.neg != e.neg {
		dcoef.dist(dcoef, ecoef)
	} else {
		dcoef.add(dcoef, ecoef)
	}

	z := decimal{neg: neg, coef: dcoef, scale: scale}.trunc(b.prec)
	return decstr.Canon(decstr.Scaled(z.neg, z.coef.string(), z.scale))
}

// Add returns x + y.
func (b *Backend) Add(x, y string) (string, error) {
	d, e, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	return b.add(d, e), nil
}

// Sub returns x - y.
func (b *Backend) Sub(x, y string) (string, error) {
	d, e, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	e.neg = !e.neg
	return b.add(d, e), nil
}

// Mul returns x * y.
// The sign of the result is the product of the operand signs, even when the
// truncated magnitude is zero.
func (b *Backend) Mul(x, y string) (string, error) {
	d, e, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	coef := new(bint)
	coef.mul(d.coef, e.coef)
	z := decimal{coef: coef, scale: d.scale + e.scale}.trunc(b.prec)
	return decstr.Signed(z.string(), d.neg != e.neg), nil
}

// Quo returns x / y.
// See [Backend.Mul] for the sign of a zero result.
func (b *Backend) Quo(x, y string) (string, error) {
	d, e, err := parsePair(x, y)
	if err != nil {
		return "", err
	}
	if e.isZero() {
		return "", decstr.ErrDivisionByZero
	}

	// floor(x / y * 10^prec) = (dcoef * 10^(escale + prec)) div (ecoef * 10^dscale)
	num := new(bint)
	num.lsh(d.coef, e.scale+b.prec)
	den := new(bint)
	den.lsh(e.coef, d.scale)
	num.quo(num, den)

	z := decimal{coef: num, scale: b.prec}
	return decstr.Signed(z.string(), d.neg != e.neg), nil
}

// Cmp compares x and y after truncating both to the backend precision.
// Cmp panics if either argument is not a decimal string.
func (b *Backend) Cmp(x, y string) int {
	d, e, err := parsePair(x, y)
	if err != nil {
		panic(fmt.Sprintf("Cmp(%q, %q) failed: %v", x, y, err))
	}
	d = d.trunc(b.prec)
	e = e.trunc(b.prec)

	// Special case: different signs
	switch {
	case e.sign() < d.sign():
		return 1
	case d.sign() < e.sign():
		return -1
	}

	// General case
	dcoef, ecoef, _ := align(d, e)
	switch dcoef.cmp(ecoef) {
	case 1:
		return d.sign()
	case -1:
		return -e.sign()
	default:
		return 0
	}
}

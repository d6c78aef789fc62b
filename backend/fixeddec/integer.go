package fixeddec

import (
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = func() [64]*bint {
	var cache [64]*bint
	ten := big.NewInt(10)
	for i := range cache {
		z := new(big.Int)
		z.Exp(ten, big.NewInt(int64(i)), nil)
		cache[i] = (*bint)(z)
	}
	return cache
}()

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// dist calculates z = abs(x - y).
func (z *bint) dist(x, y *bint) {
	switch x.cmp(y) {
	case 1:
		z.sub(x, y)
	default:
		z.sub(y, x)
	}
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// quo calculates z = x / y, truncated towards zero.
func (z *bint) quo(x, y *bint) {
	r := getBint()
	defer putBint(r)
	// Passing r to prevent heap allocations.
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	if power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	(*big.Int)(z).Exp(big.NewInt(10), big.NewInt(int64(power)), nil)
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	if shift <= 0 {
		z.setBint(x)
		return
	}
	y := getBint()
	defer putBint(y)
	y.pow10(shift)
	z.mul(x, y)
}

// fsa (Fused Shift and Addition) calculates z = x * 10 + d
// for a single decimal digit d.
func (z *bint) fsa(x *bint, d byte) {
	z.mul(x, bpow10[1])
	z.add(z, bdigits[d])
}

// bdigits holds the decimal digits as big integers.
var bdigits = func() [10]*bint {
	var digits [10]*bint
	for i := range digits {
		digits[i] = (*bint)(big.NewInt(int64(i)))
	}
	return digits
}()

// rshDown (Right Shift) calculates z = x / 10^shift and rounds
// result towards zero.
func (z *bint) rshDown(x *bint, shift int) {
	// Special cases
	switch {
	case x.sign() == 0:
		z.setInt64(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	// General case
	y := getBint()
	defer putBint(y)
	y.pow10(shift)
	z.quo(x, y)
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}

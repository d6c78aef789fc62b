/*
Package number implements immutable arbitrary-precision decimal numbers
with pluggable fixed-precision arithmetic.

# Representation

[Value] holds a decimal string formatted according to the following EBNF
grammar:

	sign           ::= '-'
	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
	significand    ::= digits '.' digits | digits
	numeric-string ::= [sign] significand

The integer part has no length limit.
A parsed value keeps the digits it was written with, so "007.50" stays
"007.50" until an arithmetic operation recomputes it.
[Value.String] strips trailing fractional zeros: "1.50" is printed as "1.5".

A negative zero "-0" is representable.
It is negative-signed and numerically equal to zero:
[Value.IsNeg] reports true, while [Value.IsZero] and [Value.Equal] treat it as 0.

The zero value of [Value] is the number 0.

# Backends

Arithmetic is delegated to a [Backend].
A backend computes the exact mathematical result and truncates it towards
zero to a fixed number of fractional digits, [DefaultPrecision] by default:

	1 / 3 = 0.33333333333333
	2 / 3 = 0.66666666666666

Comparison truncates both operands the same way, so values that differ only
beyond the precision compare equal.

Sums and differences never produce a negative zero.
Products and quotients carry the sign of the operands even when the truncated
magnitude is zero, e.g. 0 * -1 = -0.

The package ships four interchangeable backends:

  - [github.com/govalues/number/backend/infdec], the default, on top of gopkg.in/inf.v0.
  - [github.com/govalues/number/backend/apddec], on top of github.com/cockroachdb/apd/v3.
  - [github.com/govalues/number/backend/shopdec], on top of github.com/shopspring/decimal.
  - [github.com/govalues/number/backend/fixeddec], a dependency-free reference implementation.

The process-wide default is created lazily on first use.
It can be replaced once, before first use, with [SetDefaultBackend].
A [Context] binds values to an explicit backend instead.

# Operations

[Value.Add], [Value.Sub], [Value.Mul] and [Value.Quo] accept any number of
operands and fold them from left to right:

	v.Quo(a, b, c) == ((v / a) / b) / c

With no operands they return the receiver unchanged.
[Sum] and [Mean] aggregate a list of operands; both return 0 for an empty list.

Operands are [Value], [Int], [Uint], [Float] or [Str].
Arbitrary Go values are converted with [Of].

# Errors

Methods are pure and panic-free, except for the Must* helpers.
Errors are returned in the following cases:

  - Invalid number: a string does not match the grammar, or a float is NaN or infinite.
  - Unsupported type: [Of] or [Value.Scan] receives an unknown kind.
  - Unsupported operation: [Value.Apply] receives an unknown [Op].
  - Division by zero.
*/
package number

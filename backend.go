package number

// Backend performs fixed-precision decimal arithmetic on decimal strings.
//
// Inputs match the grammar described in the package documentation.
// Results are the exact mathematical result truncated towards zero to
// Precision() fractional digits, without leading integer zeros and without
// trailing fractional zeros.
//
// Add and Sub never return "-0".
// Mul and Quo return a negative-signed result whenever exactly one operand
// is negative-signed, even if the truncated magnitude is zero.
// Quo returns [ErrDivisionByZero] if the divisor is zero.
// Cmp truncates both operands before comparing them and returns -1, 0 or +1.
// Cmp panics if an operand is not a decimal string.
//
// Implementations must be safe for concurrent use.
type Backend interface {
	Precision() int
	Add(x, y string) (string, error)
	Sub(x, y string) (string, error)
	Mul(x, y string) (string, error)
	Quo(x, y string) (string, error)
	Cmp(x, y string) int
}

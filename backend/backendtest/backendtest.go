// Package backendtest provides the conformance suite shared by every
// arithmetic backend.
package backendtest

import (
	"testing"

	"github.com/govalues/number/internal/decstr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Backend mirrors number.Backend so that backend packages can be tested
// without importing the number package.
type Backend interface {
	Precision() int
	Add(x, y string) (string, error)
	Sub(x, y string) (string, error)
	Mul(x, y string) (string, error)
	Quo(x, y string) (string, error)
	Cmp(x, y string) int
}

// Factory creates a backend with the given precision.
type Factory func(prec int) Backend

type binaryCase struct {
	x, y, want string
}

// Run executes the conformance suite against backends created by newBackend.
func Run(t *testing.T, newBackend Factory) {
	t.Helper()

	t.Run("Precision", func(t *testing.T) {
		for _, prec := range []int{0, 2, 14, 30} {
			assert.Equal(t, prec, newBackend(prec).Precision())
		}
	})

	b := newBackend(14)

	t.Run("Add", func(t *testing.T) {
		runBinary(t, b.Add, []binaryCase{
			{"1", "2", "3"},
			{"0.1", "0.2", "0.3"},
			{"1.50", "1.50", "3"},
			{"-1", "1", "0"},
			{"1", "-1", "0"},
			{"-0", "-0", "0"},
			{"-0", "0", "0"},
			{"007", "0.5", "7.5"},
			{"-2.5", "1", "-1.5"},
			{"123456789012345678901234567890", "1", "123456789012345678901234567891"},
			{"0.000000000000001", "0.000000000000009", "0.00000000000001"},
			{"-0.000000000000001", "0", "0"},
			{"99999999999999999999.99999999999999", "0.00000000000001", "100000000000000000000"},
		})
	})

	t.Run("Sub", func(t *testing.T) {
		runBinary(t, b.Sub, []binaryCase{
			{"3", "2", "1"},
			{"2", "3", "-1"},
			{"1", "1", "0"},
			{"-0", "0", "0"},
			{"0", "-0", "0"},
			{"5", "0.00000000000001", "4.99999999999999"},
			{"0.3", "0.1", "0.2"},
			{"-1.5", "-1.5", "0"},
			{"100000000000000000000", "0.00000000000001", "99999999999999999999.99999999999999"},
		})
	})

	t.Run("Mul", func(t *testing.T) {
		runBinary(t, b.Mul, []binaryCase{
			{"2", "3", "6"},
			{"1.5", "1.5", "2.25"},
			{"-2", "3", "-6"},
			{"-2", "-3", "6"},
			{"0", "-1", "-0"},
			{"-0", "-1", "0"},
			{"-0", "1", "-0"},
			{"-0.222561", "-1", "0.222561"},
			{"-0.00000001", "0.0000001", "-0"},
			{"0.00000001", "0.0000001", "0"},
			{"-3", "0.333333333333333333", "-0.99999999999999"},
			{"123456789012345678901234567890", "10", "1234567890123456789012345678900"},
		})
	})

	t.Run("Quo", func(t *testing.T) {
		runBinary(t, b.Quo, []binaryCase{
			{"6", "3", "2"},
			{"1", "3", "0.33333333333333"},
			{"2", "3", "0.66666666666666"},
			{"-1", "3", "-0.33333333333333"},
			{"1", "-3", "-0.33333333333333"},
			{"-2", "-3", "0.66666666666666"},
			{"10", "4", "2.5"},
			{"0", "-5", "-0"},
			{"-0", "-5", "0"},
			{"1", "0.000000000000001", "1000000000000000"},
			{"0.00000000000001", "3", "0"},
			{"-0.00000000000001", "3", "-0"},
			{"1234567890123456789012345678900", "10", "123456789012345678901234567890"},
		})
	})

	t.Run("Quo/zero", func(t *testing.T) {
		for _, y := range []string{"0", "-0", "0.000", "00"} {
			_, err := b.Quo("1", y)
			require.ErrorIs(t, err, decstr.ErrDivisionByZero, "Quo(1, %q)", y)
		}
	})

	t.Run("Cmp", func(t *testing.T) {
		tests := []struct {
			x, y string
			want int
		}{
			{"0", "0.0", 0},
			{"-0", "0", 0},
			{"1", "2", -1},
			{"2", "1", 1},
			{"-1", "1", -1},
			{"1.50", "1.5", 0},
			{"0.000000000000001", "0", 0},
			{"-0.000000000000001", "0", 0},
			{"0.00000000000001", "0", 1},
			{"-0.00000000000001", "0", -1},
			{"123456789012345678901234567890", "123456789012345678901234567889", 1},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, b.Cmp(tt.x, tt.y), "Cmp(%q, %q)", tt.x, tt.y)
		}
	})

	t.Run("Cmp/panic", func(t *testing.T) {
		assert.Panics(t, func() { b.Cmp("abc", "1") })
	})

	t.Run("Invalid", func(t *testing.T) {
		ops := map[string]func(x, y string) (string, error){
			"Add": b.Add,
			"Sub": b.Sub,
			"Mul": b.Mul,
			"Quo": b.Quo,
		}
		for name, op := range ops {
			for _, x := range []string{"", "abc", "1.", ".5", "+1", "1e3"} {
				_, err := op(x, "1")
				assert.ErrorIs(t, err, decstr.ErrSyntax, "%v(%q, 1)", name, x)
				_, err = op("1", x)
				assert.ErrorIs(t, err, decstr.ErrSyntax, "%v(1, %q)", name, x)
			}
		}
	})

	t.Run("Precision/2", func(t *testing.T) {
		b := newBackend(2)
		runBinary(t, b.Quo, []binaryCase{
			{"1", "3", "0.33"},
			{"-2", "3", "-0.66"},
		})
		runBinary(t, b.Mul, []binaryCase{
			{"1.23", "1.1", "1.35"},
		})
		runBinary(t, b.Add, []binaryCase{
			{"0.001", "0.004", "0"},
		})
	})

	t.Run("Precision/0", func(t *testing.T) {
		b := newBackend(0)
		runBinary(t, b.Quo, []binaryCase{
			{"7", "2", "3"},
			{"-7", "2", "-3"},
		})
		runBinary(t, b.Sub, []binaryCase{
			{"5.9", "0.2", "5"},
		})
		assert.Equal(t, 0, b.Cmp("1.9", "1"))
	})
}

func runBinary(t *testing.T, op func(x, y string) (string, error), tests []binaryCase) {
	t.Helper()
	for _, tt := range tests {
		got, err := op(tt.x, tt.y)
		if assert.NoError(t, err, "(%q, %q)", tt.x, tt.y) {
			assert.Equal(t, tt.want, got, "(%q, %q)", tt.x, tt.y)
		}
	}
}

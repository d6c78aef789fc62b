package fixeddec

import (
	"strings"
	"testing"

	"github.com/govalues/number/backend/backendtest"
	"github.com/govalues/number/internal/decstr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend(t *testing.T) {
	backendtest.Run(t, func(prec int) backendtest.Backend {
		return New(prec)
	})
}

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s     string
			neg   bool
			coef  string
			scale int
		}{
			{"0", false, "0", 0},
			{"-0", true, "0", 0},
			{"007", false, "7", 0},
			{"1.50", false, "150", 2},
			{"-0.00001", true, "1", 5},
			{"123456789012345678901234567890.123", false, "123456789012345678901234567890123", 3},
		}
		for _, tt := range tests {
			got, err := parse(tt.s)
			require.NoError(t, err, "parse(%q)", tt.s)
			assert.Equal(t, tt.neg, got.neg, "parse(%q).neg", tt.s)
			assert.Equal(t, tt.coef, got.coef.string(), "parse(%q).coef", tt.s)
			assert.Equal(t, tt.scale, got.scale, "parse(%q).scale", tt.s)
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, s := range []string{"", "-", ".1", "1.", "1..2", "1a", "+1", "1e2"} {
			_, err := parse(s)
			assert.ErrorIs(t, err, decstr.ErrSyntax, "parse(%q)", s)
		}
	})
}

func TestBint_rshDown(t *testing.T) {
	tests := []struct {
		x     string
		shift int
		want  string
	}{
		{"0", 5, "0"},
		{"12345", 0, "12345"},
		{"12345", 2, "123"},
		{"12399", 2, "123"},
		{"12345", 5, "0"},
		{"1" + zeros(80), 70, "1" + zeros(10)},
	}
	for _, tt := range tests {
		x, err := parse(tt.x)
		require.NoError(t, err)
		got := new(bint)
		got.rshDown(x.coef, tt.shift)
		assert.Equal(t, tt.want, got.string(), "%v.rshDown(%v)", tt.x, tt.shift)
	}
}

func TestBint_lsh(t *testing.T) {
	x, err := parse("7")
	require.NoError(t, err)
	got := new(bint)
	got.lsh(x.coef, 100)
	assert.Equal(t, "7"+zeros(100), got.string())
	// the shared cache must stay intact
	assert.Equal(t, "10", bpow10[1].string())
}

func zeros(n int) string {
	return strings.Repeat("0", n)
}

package number

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Cmp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			v    string
			x    Operand
			want int
		}{
			{"0", Str("0.0"), 0},
			{"-0", Int(0), 0},
			{"0", Int(1), -1},
			{"1", Int(0), 1},
			{"0.1", FromInt64(1), -1},
			{"-1", Int(1), -1},
			{"1.50", Str("1.5"), 0},
			{"007", Int(7), 0},
			{"0.000000000000001", Int(0), 0},
			{"0.00000000000001", Int(0), 1},
			{"123456789012345678901234567890", Str("123456789012345678901234567889"), 1},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.v).Cmp(tt.x)
			require.NoError(t, err, "%q.Cmp(%v)", tt.v, tt.x)
			assert.Equal(t, tt.want, got, "%q.Cmp(%v)", tt.v, tt.x)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MustParse("1").Cmp(Str("one"))
		assert.ErrorIs(t, err, ErrInvalidNumber)
	})
}

func TestValue_comparisons(t *testing.T) {
	type predicate func(v Value, x Operand) (bool, error)

	predicates := map[string]predicate{
		"Equal":          Value.Equal,
		"NotEqual":       Value.NotEqual,
		"Greater":        Value.Greater,
		"GreaterOrEqual": Value.GreaterOrEqual,
		"Less":           Value.Less,
		"LessOrEqual":    Value.LessOrEqual,
	}

	tests := []struct {
		v    string
		x    Operand
		want map[string]bool
	}{
		{
			"0", Str("0.0"),
			map[string]bool{"Equal": true, "NotEqual": false, "Greater": false, "GreaterOrEqual": true, "Less": false, "LessOrEqual": true},
		},
		{
			"0", Str("1"),
			map[string]bool{"Equal": false, "NotEqual": true, "Greater": false, "GreaterOrEqual": false, "Less": true, "LessOrEqual": true},
		},
		{
			"1", Int(0),
			map[string]bool{"Equal": false, "NotEqual": true, "Greater": true, "GreaterOrEqual": true, "Less": false, "LessOrEqual": false},
		},
		{
			"0.1", FromInt64(1),
			map[string]bool{"Equal": false, "NotEqual": true, "Greater": false, "GreaterOrEqual": false, "Less": true, "LessOrEqual": true},
		},
	}

	for _, tt := range tests {
		for name, pred := range predicates {
			got, err := pred(MustParse(tt.v), tt.x)
			require.NoError(t, err, "%q.%v(%v)", tt.v, name, tt.x)
			assert.Equal(t, tt.want[name], got, "%q.%v(%v)", tt.v, name, tt.x)
		}
	}

	t.Run("error", func(t *testing.T) {
		for name, pred := range predicates {
			got, err := pred(FromInt64(1), Str("?"))
			assert.ErrorIs(t, err, ErrInvalidNumber, name)
			assert.False(t, got, name)
		}
	})
}

func TestValue_IsZero(t *testing.T) {
	tests := []struct {
		v    Operand
		want bool
	}{
		{Str("0"), true},
		{Int(15), false},
		{Int(-25), false},
		{Str("-0"), true},
		{Str("0.000"), true},
		{Str("0.000000000000001"), true},
		{Str("0.00000000000001"), false},
	}
	for _, tt := range tests {
		v, err := tt.v.operand()
		require.NoError(t, err)
		assert.Equal(t, tt.want, v.IsZero(), "%v.IsZero()", tt.v)
	}
}

func TestValue_Abs(t *testing.T) {
	tests := []struct {
		v    Operand
		want string
	}{
		{Str("0"), "0"},
		{Str("-0"), "0"},
		{Int(15), "15"},
		{Str("-15"), "15"},
		{Str("-0.222561"), "0.222561"},
	}
	for _, tt := range tests {
		v, err := tt.v.operand()
		require.NoError(t, err)
		got, err := v.Abs()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "%v.Abs()", tt.v)
	}
}

func TestValue_NegAbs(t *testing.T) {
	tests := []struct {
		v    Operand
		want string
	}{
		{Str("0"), "-0"},
		{Str("-0"), "-0"},
		{Int(15), "-15"},
		{Str("-15"), "-15"},
		{Str("-0.222561"), "-0.222561"},
	}
	for _, tt := range tests {
		v, err := tt.v.operand()
		require.NoError(t, err)
		got, err := v.NegAbs()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "%v.NegAbs()", tt.v)
	}
}

func TestValue_Neg(t *testing.T) {
	tests := []struct {
		v, want string
	}{
		{"0", "-0"},
		{"-0", "0"},
		{"1.50", "-1.5"},
		{"-2", "2"},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.v).Neg()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "%q.Neg()", tt.v)
	}
}

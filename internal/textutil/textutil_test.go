package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquish(t *testing.T) {
	tests := map[string]struct {
		in, want string
	}{
		"empty":          {"", ""},
		"plain":          {"12.5", "12.5"},
		"trim":           {"  \t12.5\n ", "12.5"},
		"collapse":       {"1  \t 2", "1 2"},
		"bom":            {"\uFEFF42", "42"},
		"zero width":     {"4\u200B", "4"},
		"hangul filler":  {"\u31647\u1160", "7"},
		"no-break space": {"\u00A08\u00A0", "8"},
		"nfc":            {"é", "é"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := Squish(tt.in)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSquish_invalidUTF8(t *testing.T) {
	for _, s := range []string{"1\xff2", "\xff-5", "1\xff000", "\xc3"} {
		_, ok := Squish(s)
		assert.False(t, ok, "Squish(%q)", s)
	}
}

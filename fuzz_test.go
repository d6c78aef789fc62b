package number

import (
	"errors"
	"testing"

	"github.com/govalues/number/backend/apddec"
	"github.com/govalues/number/backend/fixeddec"
	"github.com/govalues/number/backend/infdec"
	"github.com/govalues/number/backend/shopdec"
)

var corpus = []struct {
	x, y string
}{
	{"0", "0"},
	{"-0", "1"},
	{"1", "3"},
	{"2", "-3"},
	{"0.1", "0.2"},
	{"1.50", "-0.0001"},
	{"-0.00000001", "0.0000001"},
	{"123456789012345678901234567890", "0.000000000000001"},
	{"99999999999999.99999999999999", "0.00000000000001"},
	{"-7", "2"},
}

func FuzzBackends(f *testing.F) {
	for _, c := range corpus {
		f.Add(c.x, c.y)
	}

	reference := fixeddec.New(DefaultPrecision)
	backends := map[string]Backend{
		"infdec":  infdec.New(DefaultPrecision),
		"apddec":  apddec.New(DefaultPrecision),
		"shopdec": shopdec.New(DefaultPrecision),
	}

	f.Fuzz(
		func(t *testing.T, x, y string) {
			d, err := Parse(x)
			if err != nil {
				t.Skip()
				return
			}
			e, err := Parse(y)
			if err != nil {
				t.Skip()
				return
			}
			if len(d.String()) > 64 || len(e.String()) > 64 {
				t.Skip()
				return
			}
			ds, es := d.String(), e.String()

			for _, op := range []Op{OpAdd, OpSub, OpMul, OpQuo} {
				ref, _ := op.binary(reference)
				want, wantErr := ref(ds, es)
				for name, b := range backends {
					g, _ := op.binary(b)
					got, err := g(ds, es)
					switch {
					case wantErr != nil:
						if !errors.Is(err, wantErr) {
							t.Errorf("%v: %q %v %q failed with %v, want %v", name, ds, op, es, err, wantErr)
						}
					case err != nil:
						t.Errorf("%v: %q %v %q failed: %v", name, ds, op, es, err)
					case got != want:
						t.Errorf("%v: %q %v %q = %q, want %q", name, ds, op, es, got, want)
					}
				}
			}

			want := reference.Cmp(ds, es)
			for name, b := range backends {
				if got := b.Cmp(ds, es); got != want {
					t.Errorf("%v: Cmp(%q, %q) = %v, want %v", name, ds, es, got, want)
				}
			}
		},
	)
}

package common

import "testing"

func TestFixedInteger(t *testing.T) {
	cases := []struct {
		name string
		in   Fixed
		want int
	}{
		{"zero", FixedFromInt(0), 0},
		{"whole", FixedFromInt(320), 320},
		{"fraction_truncates", FixedFromFloat(319.999), 319},
		{"negative_truncates_toward_zero", FixedFromFloat(-1.5), -1},
		{"negative_whole", FixedFromInt(-48), -48},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.in.Integer(); got != c.want {
				t.Fatalf("Integer() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestFixedArithmetic(t *testing.T) {
	t.Run("mul_int", func(t *testing.T) {
		if got := FixedFromInt(20).MulInt(16); got != FixedFromInt(320) {
			t.Fatalf("20*16 = %d, want %d", got.Integer(), 320)
		}
	})

	t.Run("mul_fixed", func(t *testing.T) {
		got := FixedFromInt(10).Mul(FixedFromFloat(0.5))
		if got != FixedFromInt(5) {
			t.Fatalf("10*0.5 = %v, want 5", got.Float64())
		}
	})

	t.Run("float_round_trip", func(t *testing.T) {
		f := FixedFromFloat(1.25)
		if f.Float64() != 1.25 {
			t.Fatalf("Float64() = %v, want 1.25", f.Float64())
		}
	})

	t.Run("point_add", func(t *testing.T) {
		p := PointFromInts(3, 4).Add(PointFromInts(-1, 2))
		if p.X.Integer() != 2 || p.Y.Integer() != 6 {
			t.Fatalf("got (%d,%d), want (2,6)", p.X.Integer(), p.Y.Integer())
		}
	})
}

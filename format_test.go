package rpn_test

import (
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/zephyrtronium/rpn"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		want string
	}{
		{"zero", 0, "0"},
		{"neg-zero", math.Copysign(0, -1), "0"},
		{"int", 7, "7"},
		{"neg-int", -7, "-7"},
		{"half", 1.5, "1.5"},
		{"noise", 0.1 + 0.2, "0.3"},
		{"carry", 0.999999999, "1"},
		{"carry-int", 9.999999999, "10"},
		{"tie", 0.001953125, "0.00195313"},
		{"neg-tie", -0.001953125, "-0.00195313"},
		{"tiny", 1e-9, "0"},
		{"neg-tiny", -1e-9, "0"},
		{"micro", 0.000001, "0.000001"},
		{"exp-small", 1e-7, "1e-7"},
		{"exp-smaller", 1e-8, "1e-8"},
		{"long", 123456789.123456789, "123456789.12345679"},
		{"big", 1e20, "100000000000000000000"},
		{"exp-big", 1e21, "1e+21"},
		{"exp-big-frac", 1.5e21, "1.5e+21"},
		{"exp-neg-big", -2.5e300, "-2.5e+300"},
		{"nan", math.NaN(), "NaN"},
		{"pi", math.Pi, "π"},
		{"neg-pi", -math.Pi, "-π"},
		{"tau", 2 * math.Pi, "τ"},
		{"phi", (1 + math.Sqrt(5)) / 2, "φ"},
		{"inf", math.Inf(1), "∞"},
		{"neg-inf", math.Inf(-1), "-∞"},
		{"e", math.E, "e"},
		{"neg-e", -math.E, "-e"},
		{"near-pi", 3.14159265, "3.14159265"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := rpn.Format(c.v); got != c.want {
				t.Errorf("Format(%g): want %q, got %q", c.v, c.want, got)
			}
		})
	}
}

func TestFormatConstantsIdempotent(t *testing.T) {
	for _, c := range rpn.Constants() {
		s := rpn.Format(c.Value)
		if s != c.Name {
			t.Errorf("%s formats as %q", c.Name, s)
		}
		vals, err := rpn.Eval(s)
		if err != nil {
			t.Errorf("%s: formatted %q doesn't evaluate: %v", c.Name, s, err)
			continue
		}
		if again := rpn.Format(vals[0]); again != s {
			t.Errorf("%s: formatted %q reformats as %q", c.Name, s, again)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 10000; i++ {
		// Spread magnitudes over many decades.
		v := (rng.Float64()*2 - 1) * math.Pow(10, float64(rng.IntN(13)-6))
		s := rpn.Format(v)
		r, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("Format(%v) = %q doesn't parse: %v", v, s, err)
		}
		if math.Abs(r-v) > 1e-8 {
			t.Errorf("Format(%v) = %q is too far from its input", v, s)
		}
		if s2 := rpn.Format(v); s2 != s {
			t.Errorf("Format(%v) changed from %q to %q", v, s, s2)
		}
	}
}

func TestFormatAll(t *testing.T) {
	got := rpn.FormatAll([]float64{1, math.Pi, 0.5})
	want := []string{"1", "π", "0.5"}
	if len(got) != len(want) {
		t.Fatalf("want %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: want %q, got %q", i, want[i], got[i])
		}
	}
}

func TestJoin(t *testing.T) {
	cases := []struct {
		name string
		vals []float64
		sep  string
		want string
	}{
		{"default", []float64{1, 0.1 + 0.2, -math.Pi}, "", "1, 0.3, -π"},
		{"custom", []float64{1, 2}, " ; ", "1 ; 2"},
		{"single", []float64{math.Inf(1)}, "|", "∞"},
		{"none", nil, "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := rpn.Join(c.vals, c.sep); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

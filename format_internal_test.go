package rpn

import "testing"

func TestFixed(t *testing.T) {
	cases := []struct {
		v    float64
		prec int
		want string
	}{
		{0, 8, "0.00000000"},
		{1.5, 8, "1.50000000"},
		{0.1 + 0.2, 8, "0.30000000"},
		{0.001953125, 8, "0.00195313"},
		{-0.001953125, 8, "-0.00195313"},
		{0.125, 2, "0.13"},
		{0.999999999, 8, "1.00000000"},
		{9.999999999, 8, "10.00000000"},
		{-1e-10, 8, "-0.00000000"},
	}
	for _, c := range cases {
		if got := fixed(c.v, c.prec); got != c.want {
			t.Errorf("fixed(%g, %d): want %q, got %q", c.v, c.prec, c.want, got)
		}
	}
}

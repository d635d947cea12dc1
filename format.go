package rpn

import (
	"math"
	"strconv"
	"strings"
)

// Digits is the number of fractional digits Format keeps.
const Digits = 8

// Format converts a value to its display form. Values equal to a constant or
// to the negation of one are shown by the constant's name, e.g. "π" or "-∞".
// Other values are rounded to Digits fractional digits, which removes the
// noise of binary arithmetic: 0.1 + 0.2 is shown as "0.3".
func Format(v float64) string {
	for _, c := range constants {
		if v == c.Value {
			return c.Name
		}
	}
	for _, c := range constants {
		if v == -c.Value {
			return "-" + c.Name
		}
	}
	if math.IsNaN(v) || math.Abs(v) >= 1e21 {
		return numstr(v)
	}
	r, err := strconv.ParseFloat(fixed(v, Digits), 64)
	if err != nil {
		panic("rpn: bad fixed-point text for " + strconv.FormatFloat(v, 'g', -1, 64) + ": " + err.Error())
	}
	return numstr(r)
}

// FormatAll formats each value in vals.
func FormatAll(vals []float64) []string {
	r := make([]string, len(vals))
	for i, v := range vals {
		r[i] = Format(v)
	}
	return r
}

// Join formats vals and joins them with sep, or DefaultSep if sep is empty.
func Join(vals []float64, sep string) string {
	if sep == "" {
		sep = DefaultSep
	}
	return strings.Join(FormatAll(vals), sep)
}

// fixed formats a finite v with exactly prec fractional digits. Unlike
// strconv, ties round away from zero, based on the exact binary value.
func fixed(v float64, prec int) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	// 1074 fractional digits represent any float64 exactly.
	s := strconv.FormatFloat(v, 'f', 1074, 64)
	dot := strings.IndexByte(s, '.')
	end := dot + 1 + prec
	b := []byte(s[:end])
	if s[end] >= '5' {
		i := len(b) - 1
		for ; i >= 0; i-- {
			if b[i] == '.' {
				continue
			}
			if b[i] != '9' {
				b[i]++
				break
			}
			b[i] = '0'
		}
		if i < 0 {
			b = append([]byte{'1'}, b...)
		}
	}
	return sign + string(b)
}

// numstr formats v using the shortest decimal that parses back to v. Plain
// notation is used for magnitudes in [1e-6, 1e21), exponent notation such as
// 1e-8 or 1.5e+21 otherwise. Both zeros are "0".
func numstr(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	digits := strings.Replace(mant, ".", "", 1)
	x, err := strconv.Atoi(exp)
	if err != nil {
		panic("rpn: bad exponent in " + mant + "e" + exp)
	}
	// The value is 0.digits × 10^n.
	n, k := x+1, len(digits)
	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}
	r := sign + digits[:1]
	if k > 1 {
		r += "." + digits[1:]
	}
	if x < 0 {
		return r + "e-" + strconv.Itoa(-x)
	}
	return r + "e+" + strconv.Itoa(x)
}

package rpn

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		// empty tokens
		{"", []lexToken{{text: "", kind: tokenNum, pos: 1}}},
		{"1  2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "", kind: tokenNum, pos: 3}, {text: "2", kind: tokenNum, pos: 4}}},
		{" ", []lexToken{{text: "", kind: tokenNum, pos: 1}, {text: "", kind: tokenNum, pos: 2}}},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}},
		{"1.5", []lexToken{{text: "1.5", kind: tokenNum, pos: 1}}},
		{"..", []lexToken{{text: "..", kind: tokenNum, pos: 1}}},
		{"-1", []lexToken{{text: "1", kind: tokenNum, neg: true, pos: 1}}},
		{"1e5", []lexToken{{text: "1e5", kind: tokenBad, pos: 1}}},
		// operators
		{"3 4 +", []lexToken{{text: "3", kind: tokenNum, pos: 1}, {text: "4", kind: tokenNum, pos: 3}, {text: "+", kind: tokenOp, pos: 5}}},
		{"-", []lexToken{{text: "-", kind: tokenOp, pos: 1}}},
		{"--", []lexToken{{text: "-", kind: tokenOp, neg: true, pos: 1}}},
		{"-x", []lexToken{{text: "x", kind: tokenOp, neg: true, pos: 1}}},
		{"√", []lexToken{{text: "√", kind: tokenOp, pos: 1}}},
		{"%%", []lexToken{{text: "%%", kind: tokenOp, pos: 1}}},
		{"<=", []lexToken{{text: "<=", kind: tokenOp, pos: 1}}},
		// constants
		{"pi", []lexToken{{text: "pi", kind: tokenConst, pos: 1}}},
		{"-pi", []lexToken{{text: "pi", kind: tokenConst, neg: true, pos: 1}}},
		{"π 2", []lexToken{{text: "π", kind: tokenConst, pos: 1}, {text: "2", kind: tokenNum, pos: 3}}},
		{"tau ∞ e", []lexToken{{text: "tau", kind: tokenConst, pos: 1}, {text: "∞", kind: tokenConst, pos: 5}, {text: "e", kind: tokenConst, pos: 7}}},
		// bad
		{"foo", []lexToken{{text: "foo", kind: tokenBad, pos: 1}}},
		{"-foo", []lexToken{{text: "foo", kind: tokenBad, neg: true, pos: 1}}},
		{"PI", []lexToken{{text: "PI", kind: tokenBad, pos: 1}}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks := lex(c.src)
			if len(toks) != len(c.tokens) {
				t.Fatalf("%q: want %d tokens %v, got %d %v", c.src, len(c.tokens), c.tokens, len(toks), toks)
			}
			for i, tok := range toks {
				if tok != c.tokens[i] {
					t.Errorf("%q: token %d: want %v, got %v", c.src, i, c.tokens[i], tok)
				}
			}
		})
	}
}

func TestNumval(t *testing.T) {
	cases := []struct {
		src string
		v   float64
	}{
		{"", 0},
		{"0", 0},
		{"007", 7},
		{"1.", 1},
		{".5", 0.5},
		{"3.25", 3.25},
		{".", math.NaN()},
		{"..", math.NaN()},
		{"1.2.3", math.NaN()},
		{strings.Repeat("9", 400), math.Inf(1)},
	}
	for _, c := range cases {
		v := numval(c.src)
		if math.IsNaN(c.v) {
			if !math.IsNaN(v) {
				t.Errorf("%q: want NaN, got %g", c.src, v)
			}
			continue
		}
		if v != c.v {
			t.Errorf("%q: want %g, got %g", c.src, c.v, v)
		}
	}
}

func TestEvalOperatorFault(t *testing.T) {
	opsByAlias["boom"] = &Operator{
		Name:  "explosion",
		Arity: 1,
		Apply: func([]float64) (float64, error) {
			return 0, errors.New("not a math error")
		},
	}
	defer delete(opsByAlias, "boom")
	defer func() {
		if recover() == nil {
			t.Error("operator failing with a non-MathError didn't panic")
		}
	}()
	Eval("1 boom")
}

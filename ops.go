package rpn

import (
	"math"
	"strings"
)

// Operator is a function of the values on top of the stack.
type Operator struct {
	// Name identifies the operator in error messages. Several operators may
	// share a name, e.g. "comparison".
	Name string
	// Aliases are the tokens which apply the operator. They are matched
	// against lower-cased input.
	Aliases []string
	// Arity is the number of values the operator pops, either 1 or 2.
	Arity int
	// Apply computes the operator's result. args has length Arity and holds
	// the popped values in the order they were pushed. Apply returns only
	// *MathError errors.
	Apply func(args []float64) (float64, error)
}

// maxSafeInteger is the largest integer n such that n and n+1 are both
// exactly representable as float64.
const maxSafeInteger = 1<<53 - 1

var operators = []Operator{
	{"addition", []string{"+"}, 2, dyadic(func(a, b float64) float64 { return a + b })},
	{"subtraction", []string{"-"}, 2, dyadic(func(a, b float64) float64 { return a - b })},
	{"multiplication", []string{"*", "×", "x"}, 2, func(args []float64) (float64, error) {
		a, b := args[0], args[1]
		if math.IsInf(a, 1) && b == 0 || a == 0 && math.IsInf(b, 1) {
			return 0, mathErr("multiplication", "cannot multiply "+Format(a)+" by "+Format(b))
		}
		return a * b, nil
	}},
	{"division", []string{"/", "÷"}, 2, func(args []float64) (float64, error) {
		if args[1] == 0 {
			return 0, mathErr("division", "cannot divide by 0")
		}
		return args[0] / args[1], nil
	}},
	{"factorial", []string{"!"}, 1, factorial},
	{"exponentiation", []string{"^", "**"}, 2, dyadic(math.Pow)},
	{"remainder", []string{"%"}, 2, func(args []float64) (float64, error) {
		if args[1] == 0 {
			return 0, mathErr("remainder", "cannot divide by 0")
		}
		return math.Mod(args[0], args[1]), nil
	}},
	{"modulo", []string{"mod", "%%"}, 2, func(args []float64) (float64, error) {
		a, b := args[0], args[1]
		if b == 0 {
			return 0, mathErr("modulo", "cannot divide by 0")
		}
		return math.Mod(math.Mod(a, b)+b, b), nil
	}},
	{"root", []string{"root"}, 2, func(args []float64) (float64, error) {
		if args[1] == 0 {
			return 0, mathErr("root", "cannot find a 0th root")
		}
		return math.Pow(args[0], 1/args[1]), nil
	}},
	{"square root", []string{"sqrt", "√"}, 1, monadic(math.Sqrt)},
	{"absolute value", []string{"|", "abs"}, 1, monadic(math.Abs)},
	{"equation", []string{"="}, 2, relation(func(a, b float64) bool { return a == b })},
	{"equation", []string{"!="}, 2, relation(func(a, b float64) bool { return a != b })},
	{"comparison", []string{"<"}, 2, relation(func(a, b float64) bool { return a < b })},
	{"comparison", []string{">"}, 2, relation(func(a, b float64) bool { return a > b })},
	{"comparison", []string{"<="}, 2, relation(func(a, b float64) bool { return a <= b })},
	{"comparison", []string{">="}, 2, relation(func(a, b float64) bool { return a >= b })},
}

var opsByAlias = func() map[string]*Operator {
	m := make(map[string]*Operator)
	for i := range operators {
		for _, a := range operators[i].Aliases {
			m[a] = &operators[i]
		}
	}
	return m
}()

// LookupOperator finds the operator with the given alias. Matching is
// case-insensitive.
func LookupOperator(tok string) (Operator, bool) {
	op := opsByAlias[strings.ToLower(tok)]
	if op == nil {
		return Operator{}, false
	}
	return *op, true
}

// Operators returns the known operators in definition order.
func Operators() []Operator {
	r := make([]Operator, len(operators))
	copy(r, operators)
	return r
}

// monadic wraps a total function of one variable.
func monadic(f func(float64) float64) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		return f(args[0]), nil
	}
}

// dyadic wraps a total function of two variables.
func dyadic(f func(a, b float64) float64) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		return f(args[0], args[1]), nil
	}
}

// relation wraps a predicate so that it yields 1 when it holds and 0
// otherwise.
func relation(f func(a, b float64) bool) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		if f(args[0], args[1]) {
			return 1, nil
		}
		return 0, nil
	}
}

func factorial(args []float64) (float64, error) {
	a := args[0]
	if a < 0 || a > maxSafeInteger || a != math.Trunc(a) {
		// NaN and infinities also land here: NaN fails a != Trunc(a) and
		// +Inf fails the bound.
		return 0, mathErr("factorial", "cannot find the factorial of "+Format(a))
	}
	r := 1.0
	for n := a; n > 0; n-- {
		r *= n
		if math.IsInf(r, 1) {
			// Every further factor is positive.
			break
		}
	}
	return r, nil
}

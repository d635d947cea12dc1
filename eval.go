package rpn

import (
	"errors"
	"strings"
)

// DefaultSep separates displayed values when no separator is given.
const DefaultSep = ", "

// machine holds the stack for a single evaluation.
type machine struct {
	stack []float64
}

// push adds a value to the top of the stack.
func (m *machine) push(v float64) {
	m.stack = append(m.stack, v)
}

// top returns the n topmost values in the order they were pushed. The
// returned slice aliases the stack.
func (m *machine) top(n int) []float64 {
	return m.stack[len(m.stack)-n:]
}

// drop removes the n topmost values.
func (m *machine) drop(n int) {
	m.stack = m.stack[:len(m.stack)-n]
}

// step applies one token to the stack.
func (m *machine) step(tok lexToken) error {
	factor := 1.0
	if tok.neg {
		factor = -1
	}
	switch tok.kind {
	case tokenNum:
		m.push(numval(tok.text) * factor)
	case tokenOp:
		// The sign prefix does not apply to operators.
		op := opsByAlias[tok.text]
		if len(m.stack) < op.Arity {
			return underflow(tok.pos, op.Name, len(m.stack))
		}
		r, err := op.Apply(m.top(op.Arity))
		if err != nil {
			var merr *MathError
			if !errors.As(err, &merr) {
				panic("rpn: operator " + op.Name + " failed: " + err.Error())
			}
			merr.Col = tok.pos
			return merr
		}
		m.drop(op.Arity)
		m.push(r)
	case tokenConst:
		m.push(constsByAlias[tok.text].Value * factor)
	case tokenBad:
		return &ParseError{Col: tok.pos, Token: tok.text}
	default:
		panic("rpn: invalid token " + tok.String())
	}
	return nil
}

// normalize prepares raw input for lexing.
func normalize(src string) string {
	return strings.ToLower(strings.TrimSpace(src))
}

// Eval evaluates an RPN expression and returns the values left on the stack,
// bottom first. Input is trimmed and lower-cased, then split into tokens on
// each single space. A token is a number if it consists only of digits and
// dots, otherwise an operator or constant alias. A token of more than one
// character starting with "-" negates the number or constant it names.
//
// If a token is not understood, the result is a *ParseError. If an operator
// cannot be applied, the result is a *MathError. In either case no values are
// returned.
func Eval(src string) ([]float64, error) {
	toks := lex(normalize(src))
	m := machine{stack: make([]float64, 0, len(toks))}
	for _, tok := range toks {
		if err := m.step(tok); err != nil {
			return nil, err
		}
	}
	return m.stack, nil
}

// Display evaluates an expression and returns its formatted values joined by
// sep, or DefaultSep if sep is empty. If evaluation fails, the result is the
// error message.
func Display(src, sep string) string {
	vals, err := Eval(src)
	if err != nil {
		return err.Error()
	}
	return Join(vals, sep)
}

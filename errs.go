package rpn

import "strconv"

// ParseError is an error indicating a token that is neither a number, an
// operator, nor a constant. It implements InputError.
type ParseError struct {
	// Col is the position of the token.
	Col int
	// Token is the token that was not understood, without its sign prefix.
	Token string
}

func (err *ParseError) Error() string {
	return "bad token " + err.Token
}

func (err *ParseError) Pos() int {
	return err.Col
}

// MathError is an error indicating an operator that cannot be applied to the
// values on the stack, either because there are too few of them or because
// they are outside the operator's domain. It implements InputError.
type MathError struct {
	// Col is the position of the operator token. Operator functions leave it
	// zero; the evaluator fills it in.
	Col int
	// Op is the name of the operator, e.g. "division".
	Op string
	// Msg is the complete message shown to the user.
	Msg string
}

func (err *MathError) Error() string {
	return err.Msg
}

func (err *MathError) Pos() int {
	return err.Col
}

// mathErr is a shortcut to create a MathError for an operator function.
func mathErr(op, msg string) *MathError {
	return &MathError{Op: op, Msg: msg}
}

// underflow creates the error for an operator applied to too few values.
func underflow(col int, op string, have int) *MathError {
	return &MathError{
		Col: col,
		Op:  op,
		Msg: "cannot perform " + op + " operation on " + strconv.Itoa(have) + " values",
	}
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*ParseError)(nil)
	_ InputError = (*MathError)(nil)
)

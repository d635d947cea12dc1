// Package rpn implements a reverse Polish notation calculator.
//
// An expression is a list of tokens separated by single spaces, evaluated left
// to right against a stack. "2 3 4 + *" pushes 2, 3, and 4, replaces 3 and 4
// with their sum, and multiplies that by 2, leaving 14. Numbers are digits and
// dots; operators and constants have one or more aliases, so "3 4 ×" and
// "3 4 x" are the same. A leading "-" negates a number or constant: "-pi".
//
// Everything left on the stack is the result. Format converts values back to
// text, showing constants by name and hiding floating-point noise.
package rpn

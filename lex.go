package rpn

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

type lexToken struct {
	// text is the token without its sign prefix.
	text string
	kind tokenKind
	// neg is whether the token had a sign prefix.
	neg bool
	pos int
}

func (t lexToken) String() string {
	s := t.text
	if t.neg {
		s = "-" + s
	}
	return t.kind.String() + ":" + s + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a run of digits and dots, possibly empty.
	tokenNum
	// tokenOp is an operator alias.
	tokenOp
	// tokenConst is a constant alias.
	tokenConst
	// tokenBad is anything else.
	tokenBad
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenConst:
		return "Const"
	case tokenBad:
		return "Bad"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Separator is the only character which separates tokens. Each occurrence
// ends a token, so consecutive separators produce empty tokens.
const Separator = " "

// lex splits normalized input into classified tokens. Every string, including
// the empty one, produces at least one token.
func lex(src string) []lexToken {
	fields := strings.Split(src, Separator)
	toks := make([]lexToken, 0, len(fields))
	pos := 1
	for _, f := range fields {
		tok := lexToken{text: f, pos: pos}
		pos += utf8.RuneCountInString(f) + 1
		if len(f) > 1 && f[0] == '-' {
			tok.text = f[1:]
			tok.neg = true
		}
		tok.kind = classify(tok.text)
		toks = append(toks, tok)
	}
	return toks
}

// classify determines the kind of a token. Numbers take precedence over
// operators, which take precedence over constants.
func classify(s string) tokenKind {
	if isNum(s) {
		return tokenNum
	}
	if opsByAlias[s] != nil {
		return tokenOp
	}
	if constsByAlias[s] != nil {
		return tokenConst
	}
	return tokenBad
}

func isNum(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '.' && (s[i] < '0' || '9' < s[i]) {
			return false
		}
	}
	return true
}

// numval converts the text of a number token to its value. The empty string
// is zero, overflowing digit strings are infinite, and texts that are not
// decimals, like "." or "1.2.3", are NaN.
func numval(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

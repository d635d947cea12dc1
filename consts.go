package rpn

import (
	"math"
	"strings"
)

// Constant is a named number which may appear as a token.
type Constant struct {
	// Name is the symbol used when formatting the constant's value.
	Name string
	// Aliases are the tokens which push the constant. They are matched
	// against lower-cased input.
	Aliases []string
	Value   float64
}

// constants is ordered. Format checks earlier entries first.
var constants = []Constant{
	{"π", []string{"pi", "π"}, math.Pi},
	{"τ", []string{"tau", "τ"}, 2 * math.Pi},
	{"φ", []string{"phi", "φ"}, (1 + math.Sqrt(5)) / 2},
	{"∞", []string{"infinity", "∞"}, math.Inf(1)},
	{"e", []string{"e"}, math.E},
}

var constsByAlias = func() map[string]*Constant {
	m := make(map[string]*Constant)
	for i := range constants {
		for _, a := range constants[i].Aliases {
			m[a] = &constants[i]
		}
	}
	return m
}()

// LookupConstant finds the constant with the given alias. Matching is
// case-insensitive.
func LookupConstant(tok string) (Constant, bool) {
	c := constsByAlias[strings.ToLower(tok)]
	if c == nil {
		return Constant{}, false
	}
	return *c, true
}

// Constants returns the known constants in the order the formatter checks
// them.
func Constants() []Constant {
	r := make([]Constant, len(constants))
	copy(r, constants)
	return r
}

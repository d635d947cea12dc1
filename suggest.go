package rpn

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDist is the largest edit distance Suggest accepts.
const maxSuggestDist = 2

// Suggest finds the operator or constant alias closest to tok by edit
// distance, for hinting at a replacement for a bad token. Operators are
// preferred over constants at equal distance. The result is false if no alias
// is close enough to be a plausible typo, or if tok is already an alias.
func Suggest(tok string) (string, bool) {
	tok = strings.ToLower(tok)
	if tok == "" || opsByAlias[tok] != nil || constsByAlias[tok] != nil {
		return "", false
	}
	best, dist := "", maxSuggestDist+1
	try := func(alias string) {
		d := levenshtein.ComputeDistance(tok, alias)
		if d < dist {
			best, dist = alias, d
		}
	}
	for _, op := range operators {
		for _, a := range op.Aliases {
			try(a)
		}
	}
	for _, c := range constants {
		for _, a := range c.Aliases {
			try(a)
		}
	}
	// Short tokens are within a couple of edits of everything.
	if best == "" || dist >= utf8.RuneCountInString(tok) {
		return "", false
	}
	return best, true
}

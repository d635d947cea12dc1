// Package session holds the state of an interactive calculator session: the
// list of committed answers, the live answer for the current input, and the
// keypad.
package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/zephyrtronium/rpn"
)

// Entry is one answer in the history list.
type Entry struct {
	ID uuid.UUID
	// Expr is the expression as typed.
	Expr string
	// Result is the displayed values or the error message.
	Result string
	// Failed is whether Result is an error message.
	Failed bool
	// Hint suggests a replacement when evaluation failed on a bad token.
	Hint string
}

// History is the list of answers for a session. The last answer is always
// live: it follows the input until it is committed. History is not safe for
// concurrent use.
type History struct {
	sep     string
	limit   int
	entries []Entry
	live    Entry
}

// New creates a history whose values are joined by sep and which keeps at
// most limit committed entries, or any number if limit is zero.
func New(sep string, limit int) *History {
	h := &History{sep: sep, limit: limit}
	h.live = h.eval(uuid.New(), "")
	return h
}

// eval evaluates expr into an entry. It calls Eval rather than Display so
// that a bad token can be turned into a hint.
func (h *History) eval(id uuid.UUID, expr string) Entry {
	e := Entry{ID: id, Expr: expr}
	vals, err := rpn.Eval(expr)
	if err != nil {
		e.Result = err.Error()
		e.Failed = true
		var perr *rpn.ParseError
		if errors.As(err, &perr) {
			if s, ok := rpn.Suggest(perr.Token); ok {
				e.Hint = "did you mean " + s + "?"
			}
		}
		return e
	}
	e.Result = rpn.Join(vals, h.sep)
	return e
}

// Update re-evaluates the live answer for new input.
func (h *History) Update(expr string) Entry {
	h.live = h.eval(h.live.ID, expr)
	return h.live
}

// Live returns the live answer.
func (h *History) Live() Entry {
	return h.live
}

// Commit freezes the live answer into the history list and starts a new live
// answer for the same input. If the list is over its limit, the oldest
// entries are dropped. Returns the committed entry.
func (h *History) Commit() Entry {
	done := h.live
	h.entries = append(h.entries, done)
	if h.limit > 0 && len(h.entries) > h.limit {
		n := copy(h.entries, h.entries[len(h.entries)-h.limit:])
		clear(h.entries[n:])
		h.entries = h.entries[:n]
	}
	h.live = h.eval(uuid.New(), done.Expr)
	return done
}

// Clear empties the input and re-evaluates the live answer.
func (h *History) Clear() Entry {
	return h.Update("")
}

// Recall loads the expression of committed entry i, counting from the oldest,
// into the live answer. The result is false if there is no such entry.
func (h *History) Recall(i int) (string, bool) {
	if i < 0 || i >= len(h.entries) {
		return "", false
	}
	expr := h.entries[i].Expr
	h.Update(expr)
	return expr, true
}

// Entries returns the committed entries, oldest first.
func (h *History) Entries() []Entry {
	r := make([]Entry, len(h.entries))
	copy(r, h.entries)
	return r
}

// Len returns the number of committed entries.
func (h *History) Len() int {
	return len(h.entries)
}

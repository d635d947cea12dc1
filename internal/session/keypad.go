package session

import "unicode/utf8"

// Insert types a keypad label into text as though it replaced the selection
// from start to end, in runes. A space is put before the label unless the
// text before the selection already ends in one; at the very start of the
// text this still adds a space, which evaluation trims. Returns the new text
// and the cursor position just after the label.
func Insert(text string, start, end int, label string) (string, int) {
	r := []rune(text)
	lo := clamp(min(start, end), len(r))
	hi := clamp(max(start, end), len(r))
	prefix := string(r[:lo])
	n := utf8.RuneCountInString(label)
	if lo == 0 || r[lo-1] != ' ' {
		prefix += " "
		n++
	}
	return prefix + label + string(r[hi:]), lo + n
}

func clamp(i, n int) int {
	return max(0, min(i, n))
}

// Keypad is a row of buttons with one focused at a time.
type Keypad struct {
	labels []string
	focus  int
}

// NewKeypad creates a keypad with the given labels, focused on the first.
func NewKeypad(labels []string) *Keypad {
	return &Keypad{labels: append([]string(nil), labels...)}
}

// Labels returns the keypad's labels in order.
func (k *Keypad) Labels() []string {
	return append([]string(nil), k.labels...)
}

// Focus returns the index of the focused button.
func (k *Keypad) Focus() int {
	return k.focus
}

// Focused returns the label of the focused button. The result is false if
// the keypad is empty.
func (k *Keypad) Focused() (string, bool) {
	if len(k.labels) == 0 {
		return "", false
	}
	return k.labels[k.focus], true
}

// Move shifts focus by d buttons, wrapping around either end.
func (k *Keypad) Move(d int) {
	if len(k.labels) == 0 {
		return
	}
	k.focus = ((k.focus+d)%len(k.labels) + len(k.labels)) % len(k.labels)
}

// Press types the focused button's label into text at the selection. See
// Insert. If the keypad is empty, text is returned unchanged.
func (k *Keypad) Press(text string, start, end int) (string, int) {
	l, ok := k.Focused()
	if !ok {
		return text, end
	}
	return Insert(text, start, end, l)
}

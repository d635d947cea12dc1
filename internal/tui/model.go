// Package tui is the interactive terminal front end: an expression input
// whose answer updates on every keystroke, a history of committed answers,
// and a keypad of operators and constants.
package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/rpn/internal/session"
)

// Options configures a Model.
type Options struct {
	// Separator joins the values of an answer.
	Separator string
	// HistoryLimit is the most committed answers kept, or 0 for no limit.
	HistoryLimit int
	// Keypad lists the keypad's labels.
	Keypad []string
	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// Model is the bubbletea model of a calculator session.
type Model struct {
	input   textinput.Model
	history *session.History
	keypad  *session.Keypad
	keys    keyMap
	help    help.Model
	log     *slog.Logger
	// sel is the selected committed answer. history.Len() selects none.
	sel    int
	width  int
	height int
}

// New creates a model from options.
func New(opts Options) Model {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = "3 4 +"
	in.Focus()

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Model{
		input:   in,
		history: session.New(opts.Separator, opts.HistoryLimit),
		keypad:  session.NewKeypad(opts.Keypad),
		keys:    newKeyMap(),
		help:    help.New(),
		log:     log,
	}
}

// Run runs the model as a full-screen program until the user quits or ctx is
// canceled.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(0, msg.Width-6)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Commit):
			e := m.history.Commit()
			m.sel = m.history.Len()
			m.log.Debug("commit", "id", e.ID, "expr", e.Expr, "result", e.Result, "failed", e.Failed)
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.input.SetValue("")
			m.history.Clear()
			m.sel = m.history.Len()
			m.log.Debug("clear")
			return m, nil
		case key.Matches(msg, m.keys.NextKey):
			m.keypad.Move(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevKey):
			m.keypad.Move(-1)
			return m, nil
		case key.Matches(msg, m.keys.Press):
			pos := m.input.Position()
			text, cursor := m.keypad.Press(m.input.Value(), pos, pos)
			m.input.SetValue(text)
			m.input.SetCursor(cursor)
			m.history.Update(text)
			l, _ := m.keypad.Focused()
			m.log.Debug("keypad press", "label", l, "expr", text)
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.sel > 0 {
				m.recall(m.sel - 1)
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.sel < m.history.Len()-1 {
				m.recall(m.sel + 1)
			} else {
				m.sel = m.history.Len()
			}
			return m, nil
		}
	}

	old := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != old {
		m.history.Update(v)
	}
	return m, cmd
}

// recall loads the expression of committed answer i into the input.
func (m *Model) recall(i int) {
	expr, ok := m.history.Recall(i)
	if !ok {
		return
	}
	m.sel = i
	m.input.SetValue(expr)
	m.input.CursorEnd()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("rpn"))
	b.WriteString("\n\n")

	entries := m.history.Entries()
	if n := m.historyRows(); n < len(entries) {
		entries = entries[len(entries)-n:]
	}
	first := m.history.Len() - len(entries)
	for i, e := range entries {
		line := exprStyle.Render(e.Expr) + "  " + renderResult(e)
		if first+i == m.sel {
			line = selectedStyle.Render(e.Expr + "  " + e.Result)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	live := m.history.Live()
	res := liveStyle.Render(live.Result)
	if live.Failed {
		res = errorStyle.Render(live.Result)
	}
	box := res
	if live.Hint != "" {
		box += "\n" + hintStyle.Render(live.Hint)
	}
	b.WriteString(boxStyle.Render(box))
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.keypadView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func renderResult(e session.Entry) string {
	if e.Failed {
		return errorStyle.Render(e.Result)
	}
	return resultStyle.Render(e.Result)
}

// historyRows is the number of committed answers that fit on screen.
func (m Model) historyRows() int {
	if m.height == 0 {
		return m.history.Len()
	}
	// title, answer box, input, keypad, help
	return max(0, m.height-16)
}

// keypadView lays out the keypad buttons in rows no wider than the window.
func (m Model) keypadView() string {
	var rows []string
	var row []string
	w := 0
	for i, l := range m.keypad.Labels() {
		s := keyStyle
		if i == m.keypad.Focus() {
			s = focusKeyStyle
		}
		k := s.Render(l)
		kw := lipgloss.Width(k)
		if m.width > 0 && w+kw > m.width && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, w = nil, 0
		}
		row = append(row, k)
		w += kw
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Live returns the answer for the current input.
func (m Model) Live() session.Entry {
	return m.history.Live()
}

// Input returns the current input text.
func (m Model) Input() string {
	return m.input.Value()
}

// History returns the committed answers, oldest first.
func (m Model) History() []session.Entry {
	return m.history.Entries()
}

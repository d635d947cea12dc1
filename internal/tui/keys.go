package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Commit  key.Binding
	Clear   key.Binding
	NextKey key.Binding
	PrevKey key.Binding
	Press   key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Commit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		Clear:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		NextKey: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next key")),
		PrevKey: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev key")),
		Press:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "press key")),
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "older")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "newer")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Clear, k.NextKey, k.Press, k.Up, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Commit, k.Clear, k.Quit},
		{k.NextKey, k.PrevKey, k.Press},
		{k.Up, k.Down},
	}
}

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	exprStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	resultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238"))
	liveStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	keyStyle      = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	focusKeyStyle = keyStyle.BorderForeground(lipgloss.Color("212")).Foreground(lipgloss.Color("212"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	doneStyle  = lipgloss.NewStyle().Strikethrough(true).Faint(true)
)

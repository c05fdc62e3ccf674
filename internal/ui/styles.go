package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	subjectStyle   = lipgloss.NewStyle().Bold(true)
	bannerStyle    = lipgloss.NewStyle().Bold(true)
	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dueTodayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	completedStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	confirmStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	footerStyle    = lipgloss.NewStyle().Faint(true)
	highStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	lowStyle       = lipgloss.NewStyle().Faint(true)
)

package models

import "github.com/charmbracelet/lipgloss"

var (
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	questionStyle = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

package text

import "github.com/charmbracelet/lipgloss"

const (
	RED    = lipgloss.Color("1")
	GREEN  = lipgloss.Color("2")
	YELLOW = lipgloss.Color("3")
	FAINT  = lipgloss.Color("8")
)

// Foreground will paint the given text with the given colour.
func Foreground(colour lipgloss.Color, text string) string {
	return lipgloss.NewStyle().Foreground(colour).Render(text)
}

// Bold renders the text in bold.
func Bold(text string) string {
	return lipgloss.NewStyle().Bold(true).Render(text)
}

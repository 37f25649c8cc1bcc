package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// No style sets a background, so a transparent terminal stays transparent.
var (
	dimColor       = lipgloss.Color("7")
	accentColor    = lipgloss.Color("12")
	successColor   = lipgloss.Color("10")
	warningColor   = lipgloss.Color("11")
	dangerColor    = lipgloss.Color("9")
	highlightColor = lipgloss.Color("13")

	// Chat roles
	UserStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	AssistantStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	BorderStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(highlightColor).
			Bold(true)

	ActiveTabStyle = SelectedStyle.
			Underline(true)

	// Generated scripts and simulated JSON
	CodeStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// RPC method names in the docs table and pickers
	MethodNameStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	OKStyle = lipgloss.NewStyle().
		Foreground(successColor)

	WarnStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	FailStyle = lipgloss.NewStyle().
			Foreground(dangerColor)
)

// FormatFooter renders alternating key/description pairs, descriptions in
// bold accent blue.
// Usage: FormatFooter("j/k", "Navigate", "Enter", "Select", "Esc", "Close")
func FormatFooter(parts ...string) string {
	var result []string
	for i := 0; i+1 < len(parts); i += 2 {
		result = append(result, parts[i]+" "+CategoryStyle.Render(parts[i+1]))
	}
	return strings.Join(result, "  ")
}

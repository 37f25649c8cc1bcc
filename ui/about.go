package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bitrpc/config"
)

var Features = []string{
	"• Generate python-bitcoinrpc scripts from a task description",
	"• Simulate Bitcoin Core JSON-RPC responses, single or batched",
	"• Ask an assistant about the library",
	"• Browse the library docs and common RPC methods",
}

func (a AppView) renderAboutModal(width, height int) string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(successColor).
		Bold(true)

	sb.WriteString(titleStyle.Render("bitrpc"))
	sb.WriteString("\n\n")

	featureStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	for _, feature := range Features {
		sb.WriteString(featureStyle.Render(feature))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	labelStyle := lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	model := "none"
	if a.provider != nil {
		model = a.provider.GetModel()
	}

	rows := [][2]string{
		{"Version:  ", a.version},
		{"Provider: ", a.cfg.ProviderID},
		{"Model:    ", model},
		{"Settings: ", config.GetSettingsFilePath()},
		{"Logs:     ", config.GetCacheDir()},
	}
	for _, row := range rows {
		sb.WriteString(labelStyle.Render(row[0]))
		sb.WriteString(valueStyle.Render(row[1]))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(featureStyle.Render(fmt.Sprintf("Press Esc or %s to close", a.kb.DisplayActionKey("about"))))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, boxStyle.Render(sb.String()))
}

package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (a AppView) renderHelpModal(width, height int) string {
	kb := a.kb

	green := lipgloss.NewStyle().
		Bold(true).
		Foreground(successColor)

	title := green.Render("bitrpc - Keyboard Shortcuts")

	blue := lipgloss.NewStyle().Foreground(accentColor)

	globalActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Global Actions"),
		fmt.Sprintf("• %-13s Script Generator", kb.DisplayActionKey("screen_generator")),
		fmt.Sprintf("• %-13s RPC Simulator", kb.DisplayActionKey("screen_simulator")),
		fmt.Sprintf("• %-13s Assistant", kb.DisplayActionKey("screen_chat")),
		fmt.Sprintf("• %-13s Library Docs", kb.DisplayActionKey("screen_docs")),
		fmt.Sprintf("• %-13s Next screen", kb.DisplayActionKey("next_screen")),
		fmt.Sprintf("• %-13s Model selection", kb.DisplayActionKey("model_selector")),
		fmt.Sprintf("• %-13s Re-check provider", kb.DisplayActionKey("check_provider")),
		fmt.Sprintf("• %-13s About", kb.DisplayActionKey("about")),
		fmt.Sprintf("• %-13s Toggle this help", kb.DisplayActionKey("help")),
		fmt.Sprintf("• %-13s Quit", kb.DisplayActionKey("quit")),
	)

	formActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Forms"),
		fmt.Sprintf("• %-13s Generate / Simulate / Send", kb.DisplayActionKey("submit")),
		fmt.Sprintf("• %-13s New line", kb.DisplayActionKey("newline")),
		fmt.Sprintf("• %-13s Next field", kb.DisplayActionKey("next_field")),
		fmt.Sprintf("• %-13s Clear input", kb.DisplayActionKey("clear_input")),
		fmt.Sprintf("• %-13s Use example prompt", kb.DisplayActionKey("use_example")),
	)

	simulatorActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Simulator"),
		fmt.Sprintf("• %-13s Single / Batch mode", kb.DisplayActionKey("toggle_mode")),
		fmt.Sprintf("• %-13s Method picker", kb.DisplayActionKey("method_picker")),
		fmt.Sprintf("• %-13s Add batch command", kb.DisplayActionKey("add_batch_command")),
		fmt.Sprintf("• %-13s Remove command", kb.DisplayActionKey("remove_batch_command")),
		"• Up/Down       Select command",
	)

	navigation := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Scrolling"),
		fmt.Sprintf("• %-13s Scroll down 1 line", kb.DisplayActionKey("scroll_down")),
		fmt.Sprintf("• %-13s Scroll up 1 line", kb.DisplayActionKey("scroll_up")),
		fmt.Sprintf("• %-13s Half page down", kb.DisplayActionKey("half_page_down")),
		fmt.Sprintf("• %-13s Half page up", kb.DisplayActionKey("half_page_up")),
		fmt.Sprintf("• %-13s Jump to top", kb.DisplayActionKey("scroll_to_top")),
		fmt.Sprintf("• %-13s Jump to bottom", kb.DisplayActionKey("scroll_to_bottom")),
	)

	column1 := lipgloss.JoinVertical(
		lipgloss.Left,
		globalActions,
		"",
		formActions,
	)

	column2 := lipgloss.JoinVertical(
		lipgloss.Left,
		simulatorActions,
		"",
		navigation,
	)

	columnStyle := lipgloss.NewStyle().Width(44).PaddingLeft(4)

	twoColumns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(column1),
		"  ",
		columnStyle.Render(column2),
	)

	footer := lipgloss.NewStyle().
		Foreground(dimColor).
		Render(fmt.Sprintf("Press %s or Esc to close this help", kb.DisplayActionKey("help")))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		twoColumns,
		"",
		footer,
	)

	helpBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2).
		Width(100)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox.Render(content),
	)
}

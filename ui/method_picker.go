package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	appmodel "bitrpc/model"
	"bitrpc/reference"
)

// handleMethodPickerUpdate drives the method picker. The filter input always
// has focus, so navigation needs the filtered (modifier) bindings or arrows.
func (a AppView) handleMethodPickerUpdate(msg tea.KeyMsg) (AppView, tea.Cmd) {
	kb := a.kb

	switch msg.String() {
	case "esc", kb.GetActionKey("method_picker"):
		a.showMethodPicker = false
		a.methodFilterInput.Blur()
		cmd := a.focusSimulator()
		return a, cmd

	case "enter":
		if a.selectedMethodIdx >= 0 && a.selectedMethodIdx < len(a.methodMatches) {
			a.selectMethod(a.methodMatches[a.selectedMethodIdx].Name)
		}
		a.showMethodPicker = false
		a.methodFilterInput.Blur()
		cmd := a.focusSimulator()
		return a, cmd

	case kb.GetActionKey("selector_down_filtered"), kb.GetActionKey("selector_down_arrow_filtered"), "down":
		if a.selectedMethodIdx < len(a.methodMatches)-1 {
			a.selectedMethodIdx++
		}
		return a, nil

	case kb.GetActionKey("selector_up_filtered"), kb.GetActionKey("selector_up_arrow_filtered"), "up":
		if a.selectedMethodIdx > 0 {
			a.selectedMethodIdx--
		}
		return a, nil
	}

	before := a.methodFilterInput.Value()
	var cmd tea.Cmd
	a.methodFilterInput, cmd = a.methodFilterInput.Update(msg)

	// A new query starts from its best match
	if a.methodFilterInput.Value() != before {
		a.methodMatches = reference.FilterMethods(a.methodFilterInput.Value())
		a.selectedMethodIdx = 0
	}

	return a, cmd
}

func renderMethodPicker(methods []reference.RPCMethod, selectedIdx int, filterInput textinput.Model, mode appmodel.SimulatorMode, width, height int) string {
	modalWidth := width - 10
	if modalWidth > 90 {
		modalWidth = 90
	}

	title := "Select RPC Method"
	if mode == appmodel.ModeBatch {
		title = "Add RPC Method to Batch"
	}
	titleSection := lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Width(modalWidth).
		Render(title)

	headerSection := lipgloss.NewStyle().
		Foreground(dimColor).
		Width(modalWidth).
		BorderTop(true).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		Render(filterInput.View())

	var lines []string
	emptyLine := strings.Repeat(" ", modalWidth)
	lines = append(lines, emptyLine)

	if len(methods) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true).
			Align(lipgloss.Center).
			Width(modalWidth).
			Render("No matches found"))
	}

	maxLines := max(height-14, 1)
	start, end := visibleWindow(len(methods), selectedIdx, maxLines)

	nameWidth := 0
	for _, m := range methods {
		nameWidth = max(nameWidth, runewidth.StringWidth(m.Name))
	}
	categoryWidth := 18

	for i := start; i < end; i++ {
		m := methods[i]

		indicator := "  "
		if i == selectedIdx {
			indicator = "▶ "
		}

		descWidth := modalWidth - len(indicator) - nameWidth - categoryWidth - 4
		line := fmt.Sprintf("%s%s  %s  %s",
			indicator,
			runewidth.FillRight(m.Name, nameWidth),
			runewidth.FillRight(truncateToWidth(m.Category, categoryWidth), categoryWidth),
			truncateToWidth(m.Description, descWidth),
		)

		lineStyle := lipgloss.NewStyle()
		if i == selectedIdx {
			lineStyle = lineStyle.Foreground(successColor).Bold(true)
		}

		lines = append(lines, lipgloss.NewStyle().Width(modalWidth).Render(lineStyle.Render(line)))
	}
	lines = append(lines, emptyLine)

	footerSection := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(modalWidth).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		Render(FormatFooter("Type", "to filter", "↑/↓", "Navigate", "Enter", "Select", "Esc", "Cancel"))

	sections := []string{titleSection, headerSection}
	sections = append(sections, lines...)
	sections = append(sections, footerSection)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

// truncateToWidth cuts s to at most w terminal cells, marking the cut with "...".
func truncateToWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= w {
		return s
	}
	if w <= 3 {
		return runewidth.Truncate(s, w, "")
	}
	return runewidth.Truncate(s, w, "...")
}

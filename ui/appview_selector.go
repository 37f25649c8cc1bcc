package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"bitrpc/config"
	"bitrpc/ollama"
	"bitrpc/provider"
)

func (a AppView) openModelSelector() (AppView, tea.Cmd) {
	if a.provider == nil {
		msg := "No generation service is configured, so there are no models to choose from."
		if env := a.cfg.APIKeyEnvName(); env != "" {
			msg += "\n\nSet " + env + " (or API_KEY) and restart."
		}
		a.showAcknowledge("No Provider", msg, ModalTypeWarning)
		return a, nil
	}

	a.closeAllModals()
	a.showModelSelector = true
	a.modelFilterInput.SetValue("")
	a.filteredModelList = nil

	// Cached list shows at once, a fresh one replaces it when it arrives
	a.modelListLoading = len(a.modelList) == 0
	return a, provider.FetchModels(a.provider)
}

func (a AppView) getModelList() []ollama.ModelInfo {
	if a.modelFilterMode && a.modelFilterInput.Value() != "" {
		return a.filteredModelList
	}
	return a.modelList
}

func (a AppView) handleModelSelectorUpdate(msg tea.KeyMsg) (AppView, tea.Cmd) {
	kb := a.kb

	// Handle model filter mode
	if a.modelFilterMode {
		switch msg.String() {
		case "esc":
			a.modelFilterMode = false
			a.modelFilterInput.Blur()
			a.modelFilterInput.SetValue("")
			a.filteredModelList = nil
			a.selectedModelIdx = 0
			return a, nil

		case "enter":
			return a.selectModel()

		case kb.GetActionKey("selector_down_filtered"), kb.GetActionKey("selector_down_arrow_filtered"), "down":
			if a.selectedModelIdx < len(a.getModelList())-1 {
				a.selectedModelIdx++
			}
			return a, nil

		case kb.GetActionKey("selector_up_filtered"), kb.GetActionKey("selector_up_arrow_filtered"), "up":
			if a.selectedModelIdx > 0 {
				a.selectedModelIdx--
			}
			return a, nil
		}

		var cmd tea.Cmd
		a.modelFilterInput, cmd = a.modelFilterInput.Update(msg)
		a.filteredModelList = filterModels(a.modelList, a.modelFilterInput.Value())

		list := a.getModelList()
		if a.selectedModelIdx >= len(list) {
			a.selectedModelIdx = max(len(list)-1, 0)
		}

		return a, cmd
	}

	// Normal model selector mode
	switch msg.String() {
	case "/":
		a.modelFilterMode = true
		a.modelFilterInput.Focus()
		a.modelFilterInput.SetValue("")
		a.filteredModelList = a.modelList
		a.selectedModelIdx = 0
		return a, textinput.Blink

	case "esc", kb.GetActionKey("model_selector"):
		a.showModelSelector = false
		return a, nil

	case kb.GetActionKey("model_selector_refresh"):
		a.modelListLoading = true
		return a, provider.FetchModels(a.provider)

	case kb.GetActionKey("selector_down"), kb.GetActionKey("selector_down_arrow"):
		if a.selectedModelIdx < len(a.getModelList())-1 {
			a.selectedModelIdx++
		}
		return a, nil

	case kb.GetActionKey("selector_up"), kb.GetActionKey("selector_up_arrow"):
		if a.selectedModelIdx > 0 {
			a.selectedModelIdx--
		}
		return a, nil

	case "enter":
		return a.selectModel()
	}

	return a, nil
}

// selectModel switches the provider to the highlighted model and persists it.
func (a AppView) selectModel() (AppView, tea.Cmd) {
	list := a.getModelList()
	a.showModelSelector = false
	a.modelFilterMode = false
	a.modelFilterInput.Blur()

	if a.selectedModelIdx < 0 || a.selectedModelIdx >= len(list) || a.provider == nil {
		return a, nil
	}

	selected := list[a.selectedModelIdx]
	a.provider.SetModel(selected.InternalName)
	a.cfg.Model = selected.InternalName

	if config.DebugLog != nil {
		config.DebugLog.Printf("[UI] Switched model to %s", selected.InternalName)
	}

	if a.saveModel != nil {
		if err := a.saveModel(selected.InternalName); err != nil && config.ErrorLog != nil {
			config.ErrorLog.Printf("Failed to save model selection: %v", err)
		}
	}

	// Re-probe with the new model
	a.providerChecked = false
	return a, provider.CheckProvider(a.provider)
}

// filterModels fuzzy-matches query against model names, best match first.
func filterModels(models []ollama.ModelInfo, query string) []ollama.ModelInfo {
	if query == "" {
		return models
	}

	targets := make([]string, len(models))
	for i, mdl := range models {
		targets[i] = mdl.Name
	}

	matches := fuzzy.Find(query, targets)
	filtered := make([]ollama.ModelInfo, len(matches))
	for i, match := range matches {
		filtered[i] = models[match.Index]
	}
	return filtered
}

func renderModelSelector(models []ollama.ModelInfo, selectedIdx int, currentModel string, filterMode bool, filterInput textinput.Model, loading bool, width, height int) string {
	modalWidth := width - 10
	if modalWidth > 80 {
		modalWidth = 80
	}
	modalHeight := height - 6

	titleSection := lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Width(modalWidth).
		Render("Select Model")

	// Header: show filter input or count
	var header string
	switch {
	case filterMode:
		header = filterInput.View()
	case loading:
		header = "Loading models..."
	default:
		header = fmt.Sprintf("%d models", len(models))
	}

	headerSection := lipgloss.NewStyle().
		Foreground(dimColor).
		Align(lipgloss.Center).
		Width(modalWidth).
		BorderTop(true).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		Render(header)

	var modelLines []string
	maxLines := max(modalHeight-8, 1) // title, borders, header, footer

	if len(models) == 0 {
		emptyMsg := "No models available"
		if filterMode {
			emptyMsg = "No matches found"
		}
		if loading {
			emptyMsg = "Fetching model list..."
		}
		modelLines = append(modelLines, lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true).
			Align(lipgloss.Center).
			Width(modalWidth).
			Render(emptyMsg))
	}

	startIdx, endIdx := visibleWindow(len(models), selectedIdx, maxLines)
	for i := startIdx; i < endIdx; i++ {
		model := models[i]

		indicator := "  "
		if i == selectedIdx {
			indicator = "▶ "
		}

		size := formatSize(model.Size)

		currentMarker := ""
		if IsCurrentModel(model, currentModel) {
			currentMarker = " (current)"
		}

		maxNameWidth := modalWidth - 20 // Reserve space for size
		name := truncateToWidth(model.Name, maxNameWidth-len(currentMarker))

		spacing := modalWidth - len(indicator) - len(name) - len(currentMarker) - len(size) - 4
		if spacing < 1 {
			spacing = 1
		}

		line := fmt.Sprintf("%s%s%s%s%s",
			indicator,
			name,
			currentMarker,
			strings.Repeat(" ", spacing),
			size,
		)

		lineStyle := lipgloss.NewStyle()
		if i == selectedIdx {
			lineStyle = lineStyle.Foreground(successColor).Bold(true)
		} else if IsCurrentModel(model, currentModel) {
			lineStyle = lineStyle.Foreground(accentColor).Bold(true)
		}

		modelLines = append(modelLines, lipgloss.NewStyle().
			Width(modalWidth).
			Render(lineStyle.Render(line)))
	}

	// Empty line before and after list
	emptyLine := strings.Repeat(" ", modalWidth)
	modelLines = append([]string{emptyLine}, modelLines...)
	modelLines = append(modelLines, emptyLine)

	var footerText string
	if filterMode {
		footerText = FormatFooter("Type", "to filter", "Alt+J/K", "Navigate", "Enter", "Select", "Esc", "Cancel")
	} else {
		footerText = FormatFooter("/", "Filter", "j/k", "Navigate", "Alt+R", "Refresh", "Enter", "Select", "Esc", "Exit")
	}
	footerSection := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(modalWidth).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		Render(footerText)

	sections := []string{titleSection, headerSection}
	sections = append(sections, modelLines...)
	sections = append(sections, footerSection)

	content := strings.Join(sections, "\n")

	modalStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return modalStyle.Render(content)
}

// formatSize converts bytes to human-readable format
func formatSize(bytes int64) string {
	// Unknown sizes (cloud providers) stay blank
	if bytes == 0 {
		return ""
	}

	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

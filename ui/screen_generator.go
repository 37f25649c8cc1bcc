package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bitrpc/config"
	"bitrpc/reference"
)

func (a AppView) handleGeneratorKey(msg tea.KeyMsg) (AppView, tea.Cmd) {
	kb := a.kb

	switch msg.String() {
	case kb.GetActionKey("submit"):
		a.generator.Task = a.taskInput.Value()
		cmd := a.generator.Submit()
		if cmd == nil {
			return a, nil
		}
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Generator] Submitting task (%d chars)", len(a.generator.Task))
		}
		a.updateResultViewport()
		return a, tea.Batch(cmd, a.loadingSpinner.Tick)

	case kb.GetActionKey("use_example"):
		examples := reference.ExamplePrompts()
		if a.generator.UseExample(a.exampleIdx) {
			a.taskInput.SetValue(a.generator.Task)
		}
		a.exampleIdx = (a.exampleIdx + 1) % len(examples)
		return a, nil

	case kb.GetActionKey("clear_input"):
		a.taskInput.Reset()
		a.generator.Task = ""
		return a, nil
	}

	if a.handleScrollKey(&a.resultView, msg) {
		return a, nil
	}

	var cmd tea.Cmd
	a.taskInput, cmd = a.taskInput.Update(msg)
	a.generator.Task = a.taskInput.Value()
	return a, cmd
}

func (a *AppView) updateResultViewport() {
	switch {
	case a.generator.Pending:
		a.resultView.SetContent(DimStyle.Render("Generating script..."))
	case a.generator.Result == "":
		a.resultView.SetContent(DimStyle.Render("Your generated Python script will appear here."))
	default:
		a.resultView.SetContent(a.generator.Result)
	}
}

func (a AppView) renderGenerator() string {
	var examples []string
	for _, ex := range reference.ExamplePrompts() {
		label := fmt.Sprintf("[%s]", ex.Label)
		if ex.Task == a.generator.Task {
			label = HighlightStyle.Render(label)
		} else {
			label = DimStyle.Render(label)
		}
		examples = append(examples, label)
	}
	examplesLine := DimStyle.Render("Examples ("+a.kb.DisplayActionKey("use_example")+"): ") + strings.Join(examples, " ")

	header := TitleStyle.Render("Generated Script")
	if a.generator.Pending {
		header += " " + a.loadingSpinner.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		a.taskInput.View(),
		examplesLine,
		header,
		CodeStyle.Render(a.resultView.View()),
	)
}

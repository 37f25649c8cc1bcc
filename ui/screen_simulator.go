package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bitrpc/config"
	appmodel "bitrpc/model"
	"bitrpc/reference"
)

// Lines between the mode line and the response label
const simulatorFormHeight = 8

func (a AppView) handleSimulatorKey(msg tea.KeyMsg) (AppView, tea.Cmd) {
	kb := a.kb
	sim := a.simulator

	switch msg.String() {
	case kb.GetActionKey("toggle_mode"):
		if sim.Mode == appmodel.ModeSingle {
			sim.SetMode(appmodel.ModeBatch)
		} else {
			sim.SetMode(appmodel.ModeSingle)
		}
		a.updateResponseViewport()
		cmd := a.focusSimulator()
		return a, cmd

	case kb.GetActionKey("method_picker"):
		return a.openMethodPicker()

	case kb.GetActionKey("submit"):
		if sim.Mode == appmodel.ModeSingle {
			sim.Method = strings.TrimSpace(a.methodInput.Value())
			sim.Params = a.paramsInput.Value()
		}
		cmd := sim.Submit()
		a.updateResponseViewport()
		if cmd == nil {
			return a, nil
		}
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Simulator] Submitting %s simulation", sim.Mode)
		}
		return a, tea.Batch(cmd, a.loadingSpinner.Tick)
	}

	if a.handleScrollKey(&a.responseView, msg) {
		return a, nil
	}

	if sim.Mode == appmodel.ModeBatch {
		return a.handleBatchKey(msg)
	}

	switch msg.String() {
	case kb.GetActionKey("next_field"), kb.GetActionKey("prev_field"):
		if a.singleField == fieldMethod {
			a.singleField = fieldParams
		} else {
			a.singleField = fieldMethod
		}
		cmd := a.focusSimulator()
		return a, cmd

	case kb.GetActionKey("clear_input"):
		if a.singleField == fieldParams {
			a.paramsInput.SetValue("")
			sim.Params = ""
		} else {
			a.methodInput.SetValue("")
			sim.Method = ""
		}
		return a, nil
	}

	var cmd tea.Cmd
	if a.singleField == fieldParams {
		a.paramsInput, cmd = a.paramsInput.Update(msg)
		sim.Params = a.paramsInput.Value()
		return a, cmd
	}

	a.methodInput, cmd = a.methodInput.Update(msg)
	sim.Method = strings.TrimSpace(a.methodInput.Value())
	return a, cmd
}

func (a AppView) handleBatchKey(msg tea.KeyMsg) (AppView, tea.Cmd) {
	kb := a.kb
	batch := a.simulator.Batch

	switch msg.String() {
	case kb.GetActionKey("add_batch_command"):
		batch.Add()
		a.batchIdx = batch.Len() - 1
		a.batchField = appmodel.FieldMethod
		a.syncBatchInput()
		return a, nil

	case kb.GetActionKey("remove_batch_command"):
		items := batch.Items()
		if a.batchIdx >= 0 && a.batchIdx < len(items) {
			batch.Remove(items[a.batchIdx].ID)
		}
		a.syncBatchInput()
		return a, nil

	case "up":
		if a.batchIdx > 0 {
			a.batchIdx--
		}
		a.syncBatchInput()
		return a, nil

	case "down":
		if a.batchIdx < batch.Len()-1 {
			a.batchIdx++
		}
		a.syncBatchInput()
		return a, nil

	case kb.GetActionKey("next_field"):
		if a.batchField == appmodel.FieldMethod {
			a.batchField = appmodel.FieldParams
		} else if batch.Len() > 0 {
			a.batchField = appmodel.FieldMethod
			a.batchIdx = (a.batchIdx + 1) % batch.Len()
		}
		a.syncBatchInput()
		return a, nil

	case kb.GetActionKey("prev_field"):
		if a.batchField == appmodel.FieldParams {
			a.batchField = appmodel.FieldMethod
		} else if batch.Len() > 0 {
			a.batchField = appmodel.FieldParams
			a.batchIdx = (a.batchIdx - 1 + batch.Len()) % batch.Len()
		}
		a.syncBatchInput()
		return a, nil

	case kb.GetActionKey("clear_input"):
		a.batchInput.SetValue("")
		a.applyBatchInput()
		return a, nil
	}

	if batch.Len() == 0 {
		return a, nil
	}

	var cmd tea.Cmd
	a.batchInput, cmd = a.batchInput.Update(msg)
	a.applyBatchInput()
	return a, cmd
}

// applyBatchInput writes the edit field back into the selected batch command.
func (a *AppView) applyBatchInput() {
	items := a.simulator.Batch.Items()
	if a.batchIdx < 0 || a.batchIdx >= len(items) {
		return
	}
	a.simulator.Batch.Update(items[a.batchIdx].ID, a.batchField, a.batchInput.Value())
}

// syncBatchInput loads the selected batch cell into the edit field.
func (a *AppView) syncBatchInput() {
	items := a.simulator.Batch.Items()
	if len(items) == 0 {
		a.batchIdx = 0
		a.batchInput.Prompt = "Edit: "
		a.batchInput.Placeholder = "no commands, press " + a.kb.DisplayActionKey("add_batch_command") + " to add one"
		a.batchInput.SetValue("")
		return
	}

	if a.batchIdx >= len(items) {
		a.batchIdx = len(items) - 1
	}
	if a.batchIdx < 0 {
		a.batchIdx = 0
	}

	cmd := items[a.batchIdx]
	if a.batchField == appmodel.FieldParams {
		a.batchInput.Prompt = fmt.Sprintf("#%d Params: ", a.batchIdx+1)
		a.batchInput.Placeholder = "e.g. 0"
		a.batchInput.SetValue(cmd.Params)
	} else {
		a.batchInput.Prompt = fmt.Sprintf("#%d Method: ", a.batchIdx+1)
		a.batchInput.Placeholder = "e.g. getblockhash"
		a.batchInput.SetValue(cmd.Method)
	}
	a.batchInput.CursorEnd()
}

// focusSimulator focuses the input that receives keys in the current mode.
func (a *AppView) focusSimulator() tea.Cmd {
	a.methodInput.Blur()
	a.paramsInput.Blur()
	a.batchInput.Blur()

	if a.simulator.Mode == appmodel.ModeBatch {
		a.syncBatchInput()
		return a.batchInput.Focus()
	}

	a.methodInput.SetValue(a.simulator.Method)
	a.paramsInput.SetValue(a.simulator.Params)
	if a.singleField == fieldParams {
		return a.paramsInput.Focus()
	}
	return a.methodInput.Focus()
}

// selectMethod applies a method chosen in the picker.
func (a *AppView) selectMethod(name string) {
	a.simulator.SelectMethod(name)

	if a.simulator.Mode == appmodel.ModeBatch {
		a.batchIdx = a.simulator.Batch.Len() - 1
		a.batchField = appmodel.FieldParams
		a.syncBatchInput()
		return
	}

	a.methodInput.SetValue(name)
	a.methodInput.CursorEnd()
	a.updateResponseViewport()
}

func (a *AppView) updateResponseViewport() {
	switch {
	case a.simulator.Pending:
		a.responseView.SetContent(DimStyle.Render("Simulating..."))
	case a.simulator.Response == "":
		a.responseView.SetContent(DimStyle.Render("The simulated JSON-RPC response will appear here."))
	default:
		a.responseView.SetContent(a.simulator.Response)
	}
}

func (a AppView) renderSimulator() string {
	sim := a.simulator

	single := "Single"
	batch := "Batch"
	if sim.Mode == appmodel.ModeSingle {
		single = SelectedStyle.Render("[" + single + "]")
		batch = DimStyle.Render(" " + batch + " ")
	} else {
		single = DimStyle.Render(" " + single + " ")
		batch = SelectedStyle.Render("[" + batch + "]")
	}
	modeLine := TitleStyle.Render("Mode: ") + single + " " + batch +
		DimStyle.Render(fmt.Sprintf("   (%s toggle, %s methods)", a.kb.DisplayActionKey("toggle_mode"), a.kb.DisplayActionKey("method_picker")))

	var form string
	if sim.Mode == appmodel.ModeSingle {
		form = a.renderSingleForm()
	} else {
		form = a.renderBatchForm()
	}
	form = lipgloss.NewStyle().Height(simulatorFormHeight).Render(form)

	header := TitleStyle.Render("Response")
	if sim.Pending {
		header += " " + a.loadingSpinner.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		modeLine,
		"",
		form,
		header,
		CodeStyle.Render(a.responseView.View()),
	)
}

func (a AppView) renderSingleForm() string {
	description := a.simulator.MethodDescription()
	if description == "" {
		description = "Custom method"
	}
	description = truncateToWidth(description, a.width-4)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		a.methodInput.View(),
		DimStyle.Render("  "+description),
		"",
		a.paramsInput.View(),
	)
}

func (a AppView) renderBatchForm() string {
	items := a.simulator.Batch.Items()
	valid := len(a.simulator.Batch.Valid())

	lines := []string{
		TitleStyle.Render(fmt.Sprintf("Batch commands (%d, %d runnable)", len(items), valid)),
	}

	start, end := visibleWindow(len(items), a.batchIdx, maxBatchRows)
	methodWidth := 24
	paramsWidth := max(a.width-methodWidth-10, 10)

	for i := start; i < end; i++ {
		cmd := items[i]
		indicator := "  "
		style := lipgloss.NewStyle()
		if i == a.batchIdx {
			indicator = "▶ "
			style = style.Foreground(successColor).Bold(true)
		}

		method := cmd.Method
		if strings.TrimSpace(method) == "" {
			method = "(empty, skipped)"
		}

		line := fmt.Sprintf("%s%2d. %s %s",
			indicator,
			i+1,
			runewidth.FillRight(truncateToWidth(method, methodWidth), methodWidth),
			truncateToWidth(cmd.Params, paramsWidth),
		)
		lines = append(lines, style.Render(line))
	}

	lines = append(lines, a.batchInput.View())

	return strings.Join(lines, "\n")
}

// visibleWindow returns the [start, end) slice of n rows that keeps selected
// in view when at most size rows fit.
func visibleWindow(n, selected, size int) (int, int) {
	if n <= size {
		return 0, n
	}
	start := selected - size/2
	if start < 0 {
		start = 0
	}
	if start > n-size {
		start = n - size
	}
	return start, start + size
}

func (a AppView) openMethodPicker() (AppView, tea.Cmd) {
	a.showMethodPicker = true
	a.methodFilterInput.SetValue("")
	a.methodMatches = reference.FilterMethods("")
	a.selectedMethodIdx = 0

	if a.simulator.Mode == appmodel.ModeSingle {
		for i, m := range a.methodMatches {
			if m.Name == a.simulator.Method {
				a.selectedMethodIdx = i
				break
			}
		}
	}

	a.methodFilterInput.Focus()
	return a, textinput.Blink
}

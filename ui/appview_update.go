package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"bitrpc/config"
	appmodel "bitrpc/model"
	"bitrpc/provider"
)

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	// Spinner ticks only while a request is in flight
	if a.pending() {
		a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
		cmds = append(cmds, cmd)
		if a.chat.Pending {
			a.updateChatViewport(true)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()

		firstSize := !a.ready
		a.ready = true

		a.updateResultViewport()
		a.updateResponseViewport()
		a.updateChatViewport(true)

		// Docs need the width before they can be rendered
		if firstSize || a.docsRendered {
			cmds = append(cmds, a.renderDocsAsync())
		}

		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		var keyCmd tea.Cmd
		a, keyCmd = a.handleKey(msg)
		cmds = append(cmds, keyCmd)
		return a, tea.Batch(cmds...)

	case appmodel.ScriptGeneratedMsg:
		a.generator.Complete(msg)
		a.updateResultViewport()
		a.resultView.GotoTop()
		return a, tea.Batch(cmds...)

	case appmodel.SimulationDoneMsg:
		a.simulator.Complete(msg)
		a.updateResponseViewport()
		a.responseView.GotoTop()
		return a, tea.Batch(cmds...)

	case appmodel.ChatReplyMsg:
		idx := a.chat.Complete(msg)
		a.updateChatViewport(true)
		cmds = append(cmds, a.renderMarkdownAsync(idx, msg.Text))
		return a, tea.Batch(cmds...)

	case appmodel.MarkdownRenderedMsg:
		a.chat.SetRendered(msg.MessageIndex, msg.Rendered)
		a.updateChatViewport(true)
		return a, tea.Batch(cmds...)

	case appmodel.DocsRenderedMsg:
		a.docsRendered = true
		a.docsView.SetContent(msg.Rendered)
		return a, tea.Batch(cmds...)

	case appmodel.ProviderCheckedMsg:
		a.providerChecked = true
		a.providerErr = msg.Err
		if msg.Err != nil && !errors.Is(msg.Err, provider.ErrNotConfigured) {
			if config.ErrorLog != nil {
				config.ErrorLog.Printf("Provider check failed: %v", msg.Err)
			}
		}
		return a, tea.Batch(cmds...)

	case appmodel.ModelsListMsg:
		a.modelListLoading = false
		if msg.Err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("Error fetching Models: %v", msg.Err)
			}
			a.showModelSelector = false
			a.showAcknowledge("Could not list models", msg.Err.Error(), ModalTypeError)
			return a, tea.Batch(cmds...)
		}

		a.modelList = msg.Models
		a.filteredModelList = filterModels(a.modelList, a.modelFilterInput.Value())
		a.selectedModelIdx = 0
		if idx, _ := FindModelByName(a.getModelList(), a.currentModel()); idx >= 0 {
			a.selectedModelIdx = idx
		}
		return a, tea.Batch(cmds...)
	}

	// Everything else (cursor blink and the like) goes to the focused widget
	a, cmd = a.updateFocused(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

func (a AppView) handleKey(msg tea.KeyMsg) (AppView, tea.Cmd) {
	kb := a.kb

	// PRIORITY 0: Always-global shortcuts
	if msg.String() == kb.GetActionKey("quit") || msg.String() == "ctrl+c" {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[UI] Quit requested")
		}
		return a, tea.Quit
	}

	if a.showAcknowledgeModal {
		switch msg.String() {
		case "enter", "esc":
			a.showAcknowledgeModal = false
		}
		return a, nil
	}

	if msg.String() == kb.GetActionKey("help") {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		if msg.String() == "esc" {
			a.showHelp = false
		}
		return a, nil
	}

	if msg.String() == kb.GetActionKey("about") {
		a.showAbout = !a.showAbout
		return a, nil
	}
	if a.showAbout {
		if msg.String() == "esc" {
			a.showAbout = false
		}
		return a, nil
	}

	// PRIORITY 1: Modals that own the keyboard
	if a.showModelSelector {
		return a.handleModelSelectorUpdate(msg)
	}
	if a.showMethodPicker {
		return a.handleMethodPickerUpdate(msg)
	}

	// PRIORITY 2: Global actions
	switch msg.String() {
	case kb.GetActionKey("model_selector"):
		return a.openModelSelector()

	case kb.GetActionKey("check_provider"):
		a.providerChecked = false
		return a, provider.CheckProvider(a.provider)

	case kb.GetActionKey("screen_generator"):
		cmd := a.setScreen(screenGenerator)
		return a, cmd

	case kb.GetActionKey("screen_simulator"):
		cmd := a.setScreen(screenSimulator)
		return a, cmd

	case kb.GetActionKey("screen_chat"):
		cmd := a.setScreen(screenChat)
		return a, cmd

	case kb.GetActionKey("screen_docs"):
		cmd := a.setScreen(screenDocs)
		return a, cmd

	case kb.GetActionKey("next_screen"):
		return a, a.setScreen((a.active + 1) % screen(len(screenNames)))
	}

	// PRIORITY 3: The active screen
	switch a.active {
	case screenGenerator:
		return a.handleGeneratorKey(msg)
	case screenSimulator:
		return a.handleSimulatorKey(msg)
	case screenChat:
		return a.handleChatKey(msg)
	case screenDocs:
		if a.handleScrollKey(&a.docsView, msg) {
			return a, nil
		}
		var cmd tea.Cmd
		a.docsView, cmd = a.docsView.Update(msg)
		return a, cmd
	}

	return a, nil
}

// handleScrollKey applies the scrolling actions to vp and reports whether msg was one.
func (a AppView) handleScrollKey(vp *viewport.Model, msg tea.KeyMsg) bool {
	kb := a.kb

	switch msg.String() {
	case kb.GetActionKey("scroll_down"), kb.GetActionKey("scroll_down_arrow"):
		vp.ScrollDown(1)
	case kb.GetActionKey("scroll_up"), kb.GetActionKey("scroll_up_arrow"):
		vp.ScrollUp(1)
	case kb.GetActionKey("half_page_down"):
		vp.HalfPageDown()
	case kb.GetActionKey("half_page_up"):
		vp.HalfPageUp()
	case kb.GetActionKey("page_down"):
		vp.PageDown()
	case kb.GetActionKey("page_up"):
		vp.PageUp()
	case kb.GetActionKey("scroll_to_top"):
		vp.GotoTop()
	case kb.GetActionKey("scroll_to_bottom"):
		vp.GotoBottom()
	default:
		return false
	}
	return true
}

// updateFocused forwards a non-key message to the active screen's input.
func (a AppView) updateFocused(msg tea.Msg) (AppView, tea.Cmd) {
	var cmd tea.Cmd

	switch a.active {
	case screenGenerator:
		a.taskInput, cmd = a.taskInput.Update(msg)
	case screenChat:
		a.chatInput, cmd = a.chatInput.Update(msg)
	case screenSimulator:
		switch {
		case a.simulator.Mode == appmodel.ModeBatch:
			a.batchInput, cmd = a.batchInput.Update(msg)
		case a.singleField == fieldParams:
			a.paramsInput, cmd = a.paramsInput.Update(msg)
		default:
			a.methodInput, cmd = a.methodInput.Update(msg)
		}
	}

	return a, cmd
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bitrpc/config"
	appmodel "bitrpc/model"
	"bitrpc/ollama"
	"bitrpc/provider"
	"bitrpc/reference"
)

type screen int

const (
	screenGenerator screen = iota
	screenSimulator
	screenChat
	screenDocs
)

var screenNames = []string{"Script Generator", "RPC Simulator", "Assistant", "Library Docs"}

func (s screen) String() string {
	if int(s) < len(screenNames) {
		return screenNames[s]
	}
	return "Unknown"
}

const (
	chromeHeight          = 4 // title, tabs, spacer, status bar
	taskInputHeight       = 4
	chatInputHeight       = 3
	simulatorHeaderHeight = 11
	maxBatchRows          = 6
)

// Simulator single-mode fields
const (
	fieldMethod = iota
	fieldParams
)

type AppView struct {
	cfg      *config.Config
	kb       *config.KeyBindingsConfig
	provider appmodel.Provider
	version  string

	// Persists a model chosen in the selector
	saveModel func(model string) error

	// Window state
	width  int
	height int
	ready  bool

	active screen

	// View state holders
	generator *appmodel.GeneratorState
	simulator *appmodel.SimulatorState
	chat      *appmodel.ChatState

	// Generator screen
	taskInput  textarea.Model
	resultView viewport.Model
	exampleIdx int

	// Simulator screen
	methodInput  textinput.Model
	paramsInput  textinput.Model
	singleField  int
	batchInput   textinput.Model
	batchIdx     int
	batchField   string
	responseView viewport.Model

	// Chat screen
	chatInput textarea.Model
	chatView  viewport.Model

	// Docs screen
	docsView     viewport.Model
	docsRendered bool

	loadingSpinner spinner.Model

	showHelp  bool
	showAbout bool

	// Provider status
	providerChecked bool
	providerErr     error

	// Model selector
	showModelSelector bool
	modelListLoading  bool
	modelList         []ollama.ModelInfo
	selectedModelIdx  int
	modelFilterMode   bool
	modelFilterInput  textinput.Model
	filteredModelList []ollama.ModelInfo

	// Method picker
	showMethodPicker  bool
	methodFilterInput textinput.Model
	methodMatches     []reference.RPCMethod
	selectedMethodIdx int

	// Acknowledge modal (warnings/errors requiring only acknowledgement)
	showAcknowledgeModal  bool
	acknowledgeModalTitle string
	acknowledgeModalMsg   string
	acknowledgeModalType  ModalType
}

func newTextarea(placeholder string, height int) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(height)
	ta.SetWidth(80)

	// Alt+Enter for newline, Enter alone submits (handled separately)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	ta.SetPromptFunc(2, func(lineIdx int) string {
		if lineIdx == 0 {
			return "> "
		}
		return "| "
	})

	return ta
}

func newTextinput(prompt, placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

// NewAppView builds the four screens around one generation service. The
// provider may be nil, in which case every request degrades to its fallback
// text and the status bar carries a credential warning.
func NewAppView(cfg *config.Config, kb *config.KeyBindingsConfig, p appmodel.Provider, assistant appmodel.Assistant, version string) AppView {
	if cfg == nil {
		cfg = &config.Config{ProviderID: config.DefaultProviderID}
	}
	if kb == nil {
		kb = config.DefaultKeybindings()
	}

	taskInput := newTextarea("Describe the script you need, e.g. \"fetch the last 10 blocks\"...", taskInputHeight)
	taskInput.Focus()

	chatInput := newTextarea("Ask about python-bitcoinrpc...", chatInputHeight)

	sim := appmodel.NewSimulatorState(assistant)

	methodInput := newTextinput("Method: ", "getblockchaininfo", 64)
	methodInput.SetValue(sim.Method)
	paramsInput := newTextinput("Params: ", "e.g. 0 or [\"<blockhash>\", 2]", 512)
	batchInput := newTextinput("", "", 512)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	a := AppView{
		cfg:               cfg,
		kb:                kb,
		provider:          p,
		version:           version,
		saveModel:         config.SaveModel,
		active:            screenGenerator,
		generator:         appmodel.NewGeneratorState(assistant),
		simulator:         sim,
		chat:              appmodel.NewChatState(assistant),
		taskInput:         taskInput,
		resultView:        viewport.New(0, 0),
		methodInput:       methodInput,
		paramsInput:       paramsInput,
		batchInput:        batchInput,
		batchField:        appmodel.FieldMethod,
		responseView:      viewport.New(0, 0),
		chatInput:         chatInput,
		chatView:          viewport.New(0, 0),
		docsView:          viewport.New(0, 0),
		loadingSpinner:    sp,
		modelFilterInput:  newTextinput("Filter: ", "", 64),
		methodFilterInput: newTextinput("Filter: ", "type to search methods", 64),
	}
	a.syncBatchInput()

	return a
}

func (a AppView) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		provider.CheckProvider(a.provider),
	)
}

func (a AppView) View() string {
	if !a.ready {
		return "Loading bitrpc..."
	}

	// Modal layers, top first
	if a.showAcknowledgeModal {
		return RenderAcknowledgeModal(
			a.acknowledgeModalTitle,
			a.acknowledgeModalMsg,
			a.acknowledgeModalType,
			a.width,
			a.height,
		)
	}

	if a.showHelp {
		return a.renderHelpModal(a.width, a.height)
	}

	if a.showAbout {
		return a.renderAboutModal(a.width, a.height)
	}

	if a.showModelSelector {
		return renderModelSelector(
			a.getModelList(),
			a.selectedModelIdx,
			a.currentModel(),
			a.modelFilterMode,
			a.modelFilterInput,
			a.modelListLoading,
			a.width,
			a.height,
		)
	}

	if a.showMethodPicker {
		return renderMethodPicker(
			a.methodMatches,
			a.selectedMethodIdx,
			a.methodFilterInput,
			a.simulator.Mode,
			a.width,
			a.height,
		)
	}

	var body string
	switch a.active {
	case screenGenerator:
		body = a.renderGenerator()
	case screenSimulator:
		body = a.renderSimulator()
	case screenChat:
		body = a.renderChat()
	case screenDocs:
		body = a.docsView.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		a.renderTitle(),
		a.renderTabs(),
		"",
		body,
		a.renderStatusBar(),
	)
}

// renderTitle shows the app name, the provider's model, and its health.
func (a AppView) renderTitle() string {
	appText := AssistantStyle.Render("bitrpc")

	modelName := "no provider"
	if a.provider != nil {
		modelName = a.provider.GetDisplayName()
	}
	modelText := TitleStyle.Render(fmt.Sprintf(" - %s", modelName))

	return appText + modelText + a.renderProviderStatus()
}

func (a AppView) renderProviderStatus() string {
	if a.provider == nil {
		hint := "set an API key"
		if env := a.cfg.APIKeyEnvName(); env != "" {
			hint = "set " + env
		}
		return WarnStyle.Render(" | ⚠ no credentials (" + hint + ")")
	}
	if !a.providerChecked {
		return DimStyle.Render(" | checking...")
	}
	if a.providerErr != nil {
		return FailStyle.Render(" | ✗ unreachable")
	}
	return OKStyle.Render(" | ✓ connected")
}

func (a AppView) renderTabs() string {
	var tabs []string
	for i, name := range screenNames {
		label := fmt.Sprintf(" %d %s ", i+1, name)
		if screen(i) == a.active {
			tabs = append(tabs, ActiveTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, DimStyle.Render(label))
	}
	return strings.Join(tabs, BorderStyle.Render("│"))
}

func (a AppView) renderStatusBar() string {
	kb := a.kb
	descStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)

	parts := []string{
		kb.DisplayActionKey("quit"), descStyle.Render("Quit"),
		kb.DisplayActionKey("help"), descStyle.Render("Help"),
		kb.DisplayActionKey("next_screen"), descStyle.Render("Next screen"),
		kb.DisplayActionKey("model_selector"), descStyle.Render("Models"),
	}

	switch a.active {
	case screenGenerator:
		parts = append(parts,
			kb.DisplayActionKey("use_example"), descStyle.Render("Example"),
			kb.DisplayActionKey("newline"), descStyle.Render("New Line"),
			kb.DisplayActionKey("submit"), descStyle.Render("Generate"),
		)
	case screenSimulator:
		parts = append(parts,
			kb.DisplayActionKey("toggle_mode"), descStyle.Render("Mode"),
			kb.DisplayActionKey("method_picker"), descStyle.Render("Methods"),
		)
		if a.simulator.Mode == appmodel.ModeBatch {
			parts = append(parts,
				kb.DisplayActionKey("add_batch_command"), descStyle.Render("Add"),
				kb.DisplayActionKey("remove_batch_command"), descStyle.Render("Remove"),
			)
		}
		parts = append(parts, kb.DisplayActionKey("submit"), descStyle.Render("Simulate"))
	case screenChat:
		parts = append(parts,
			kb.DisplayActionKey("newline"), descStyle.Render("New Line"),
			kb.DisplayActionKey("submit"), descStyle.Render("Send"),
		)
	case screenDocs:
		parts = append(parts,
			kb.DisplayActionKey("scroll_down")+"/"+kb.DisplayActionKey("scroll_up"), descStyle.Render("Scroll"),
		)
	}

	var pairs []string
	for i := 0; i+1 < len(parts); i += 2 {
		pairs = append(pairs, parts[i]+" "+parts[i+1])
	}

	return StatusStyle.Render(strings.Join(pairs, "  "))
}

// layout sizes every widget from the current window size.
func (a *AppView) layout() {
	bodyHeight := a.height - chromeHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	// Generator: task input, examples line, result label, result viewport
	a.taskInput.SetWidth(a.width)
	a.resultView.Width = a.width
	a.resultView.Height = max(bodyHeight-taskInputHeight-3, 1)

	// Simulator
	a.methodInput.Width = max(a.width-20, 10)
	a.paramsInput.Width = max(a.width-20, 10)
	a.batchInput.Width = max(a.width/2, 10)
	a.responseView.Width = a.width
	a.responseView.Height = max(bodyHeight-simulatorHeaderHeight, 1)

	// Chat
	a.chatInput.SetWidth(a.width)
	a.chatView.Width = a.width
	a.chatView.Height = max(bodyHeight-chatInputHeight, 1)

	// Docs
	a.docsView.Width = a.width
	a.docsView.Height = bodyHeight
}

// setScreen switches the active screen and moves input focus with it.
func (a *AppView) setScreen(s screen) tea.Cmd {
	if config.DebugLog != nil && s != a.active {
		config.DebugLog.Printf("[UI] Switching screen: %s -> %s", a.active, s)
	}

	a.active = s

	a.taskInput.Blur()
	a.chatInput.Blur()
	a.methodInput.Blur()
	a.paramsInput.Blur()
	a.batchInput.Blur()

	switch s {
	case screenGenerator:
		return a.taskInput.Focus()
	case screenChat:
		return a.chatInput.Focus()
	case screenSimulator:
		return a.focusSimulator()
	}
	return nil
}

func (a AppView) pending() bool {
	return a.generator.Pending || a.simulator.Pending || a.chat.Pending
}

func (a AppView) currentModel() string {
	if a.provider == nil {
		return ""
	}
	return a.provider.GetModel()
}

func (a *AppView) showAcknowledge(title, message string, modalType ModalType) {
	a.showAcknowledgeModal = true
	a.acknowledgeModalTitle = title
	a.acknowledgeModalMsg = message
	a.acknowledgeModalType = modalType
}

func (a *AppView) closeAllModals() {
	a.showHelp = false
	a.showAbout = false
	a.showModelSelector = false
	a.showMethodPicker = false
	a.showAcknowledgeModal = false

	a.modelFilterMode = false

	if a.modelFilterInput.Focused() {
		a.modelFilterInput.Blur()
	}
	if a.methodFilterInput.Focused() {
		a.methodFilterInput.Blur()
	}
}

package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"bitrpc/assist"
	"bitrpc/config"
	appmodel "bitrpc/model"
	"bitrpc/provider/testutil"
	"bitrpc/reference"
)

func newTestView(t *testing.T, p appmodel.Provider) AppView {
	t.Helper()

	var svc appmodel.Assistant = assist.NewService(assist.NewClient(p))
	a := NewAppView(&config.Config{ProviderID: "gemini"}, config.DefaultKeybindings(), p, svc, "test")
	a.saveModel = func(string) error { return nil }

	a, _ = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	return a
}

func update(t *testing.T, a AppView, msg tea.Msg) (AppView, tea.Cmd) {
	t.Helper()

	m, cmd := a.Update(msg)
	next, ok := m.(AppView)
	if !ok {
		t.Fatalf("Update returned %T, want AppView", m)
	}
	return next, cmd
}

func press(t *testing.T, a AppView, k tea.KeyMsg) AppView {
	t.Helper()
	a, _ = update(t, a, k)
	return a
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func alt(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

// collectMsgs runs cmd and any batch it expands to, returning the messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()

	for _, msg := range collectMsgs(cmd) {
		if m, ok := msg.(T); ok {
			return m
		}
	}
	var zero T
	t.Fatalf("no %T produced by command", zero)
	return zero
}

func TestScreenSwitching(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want screen
	}{
		{alt("2"), screenSimulator},
		{alt("3"), screenChat},
		{alt("4"), screenDocs},
		{alt("1"), screenGenerator},
	}

	a := newTestView(t, nil)
	for _, tt := range tests {
		a = press(t, a, tt.key)
		if a.active != tt.want {
			t.Errorf("after %s active = %s, want %s", tt.key, a.active, tt.want)
		}
	}
}

func TestNextScreenWraps(t *testing.T) {
	a := newTestView(t, nil)
	a = press(t, a, alt("4"))
	a = press(t, a, alt("l"))

	if a.active != screenGenerator {
		t.Errorf("active = %s, want %s", a.active, screenGenerator)
	}
	if !a.taskInput.Focused() {
		t.Error("task input should regain focus")
	}
}

func TestGeneratorBlankTaskMakesNoCall(t *testing.T) {
	mock := testutil.NewReplyingProvider("mock", "print('hi')")
	a := newTestView(t, mock)

	a = press(t, a, runes("   "))
	a, cmd := update(t, a, enter)

	if cmd != nil {
		collectMsgs(cmd)
	}
	if a.generator.Pending {
		t.Error("blank task must not start a request")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
}

func TestGeneratorSubmitFlow(t *testing.T) {
	mock := testutil.NewReplyingProvider("mock", "from bitcoinrpc.authproxy import AuthServiceProxy\n", "print('ok')")
	a := newTestView(t, mock)

	a = press(t, a, runes("get best block hash"))
	a, cmd := update(t, a, enter)

	if !a.generator.Pending {
		t.Fatal("generator should be pending after submit")
	}

	// A second submit while pending is ignored
	a, second := update(t, a, enter)
	if second != nil {
		for _, msg := range collectMsgs(second) {
			if _, ok := msg.(appmodel.ScriptGeneratedMsg); ok {
				t.Fatal("second submit started another request")
			}
		}
	}

	done := findMsg[appmodel.ScriptGeneratedMsg](t, cmd)
	a, _ = update(t, a, done)

	if a.generator.Pending {
		t.Error("generator still pending after result")
	}
	want := "from bitcoinrpc.authproxy import AuthServiceProxy\nprint('ok')"
	if a.generator.Result != want {
		t.Errorf("Result = %q, want %q", a.generator.Result, want)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}

	prompt := mock.Calls()[0][0].Content
	if !strings.Contains(prompt, `USER REQUEST: "get best block hash"`) {
		t.Errorf("prompt does not carry the task:\n%s", prompt)
	}
}

func TestUseExampleCyclesExamples(t *testing.T) {
	a := newTestView(t, nil)
	examples := reference.ExamplePrompts()

	for i := 0; i < len(examples)+1; i++ {
		a = press(t, a, alt("e"))
		want := examples[i%len(examples)].Task
		if got := a.taskInput.Value(); got != want {
			t.Errorf("press %d: task = %q, want %q", i+1, got, want)
		}
		if a.generator.Task != want {
			t.Errorf("press %d: state task = %q, want %q", i+1, a.generator.Task, want)
		}
	}
}

func TestSimulatorSingleFlow(t *testing.T) {
	mock := testutil.NewReplyingProvider("mock", "```json\n{\"result\": {\"chain\": \"main\"}}\n```")
	a := newTestView(t, mock)
	a = press(t, a, alt("2"))

	if got := a.methodInput.Value(); got != appmodel.DefaultMethod {
		t.Fatalf("method input = %q, want %q", got, appmodel.DefaultMethod)
	}

	a, cmd := update(t, a, enter)
	done := findMsg[appmodel.SimulationDoneMsg](t, cmd)
	a, _ = update(t, a, done)

	want := "{\"result\": {\"chain\": \"main\"}}"
	if a.simulator.Response != want {
		t.Errorf("Response = %q, want %q", a.simulator.Response, want)
	}
}

func TestSimulatorToggleModeClearsResponse(t *testing.T) {
	a := newTestView(t, nil)
	a = press(t, a, alt("2"))
	a.simulator.Response = "{}"

	a = press(t, a, alt("t"))

	if a.simulator.Mode != appmodel.ModeBatch {
		t.Fatalf("mode = %s, want batch", a.simulator.Mode)
	}
	if a.simulator.Response != "" {
		t.Errorf("response not cleared: %q", a.simulator.Response)
	}
	if !a.batchInput.Focused() {
		t.Error("batch editor should have focus in batch mode")
	}
}

func TestSimulatorBatchEditing(t *testing.T) {
	a := newTestView(t, nil)
	a = press(t, a, alt("2"))
	a = press(t, a, alt("t"))

	batch := a.simulator.Batch
	if batch.Len() != 2 {
		t.Fatalf("default batch has %d commands, want 2", batch.Len())
	}

	a = press(t, a, alt("a"))
	if batch.Len() != 3 {
		t.Fatalf("after add: %d commands, want 3", batch.Len())
	}

	a = press(t, a, runes("getmempoolinfo"))
	if got := batch.Items()[2].Method; got != "getmempoolinfo" {
		t.Errorf("edited method = %q, want getmempoolinfo", got)
	}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = press(t, a, runes("[]"))
	if got := batch.Items()[2].Params; got != "[]" {
		t.Errorf("edited params = %q, want []", got)
	}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyUp})
	a = press(t, a, alt("d"))
	items := batch.Items()
	if len(items) != 2 {
		t.Fatalf("after remove: %d commands, want 2", len(items))
	}
	if items[0].Method != "getblockhash" || items[1].Method != "getmempoolinfo" {
		t.Errorf("wrong command removed: %+v", items)
	}
}

func TestSimulatorBatchSubmitSendsRequestsInOrder(t *testing.T) {
	mock := testutil.NewReplyingProvider("mock", "[{\"result\": 1}, {\"result\": 2}]")
	a := newTestView(t, mock)
	a = press(t, a, alt("2"))
	a = press(t, a, alt("t"))

	a, cmd := update(t, a, enter)
	done := findMsg[appmodel.SimulationDoneMsg](t, cmd)
	a, _ = update(t, a, done)

	prompt := mock.Calls()[0][0].Content
	first := strings.Index(prompt, `Request 1: Method="getblockhash", Params="0"`)
	second := strings.Index(prompt, `Request 2: Method="getblock"`)
	if first < 0 || second < 0 || first > second {
		t.Errorf("batch requests missing or out of order:\n%s", prompt)
	}
	if a.simulator.Response != "[{\"result\": 1}, {\"result\": 2}]" {
		t.Errorf("Response = %q", a.simulator.Response)
	}
}

func TestMethodPickerSelectsMethod(t *testing.T) {
	a := newTestView(t, nil)
	a = press(t, a, alt("2"))

	a = press(t, a, alt("p"))
	if !a.showMethodPicker {
		t.Fatal("method picker did not open")
	}

	a = press(t, a, runes("getmempoolinfo"))
	if len(a.methodMatches) == 0 || a.methodMatches[0].Name != "getmempoolinfo" {
		t.Fatalf("best match = %+v", a.methodMatches)
	}

	a = press(t, a, enter)
	if a.showMethodPicker {
		t.Error("picker still open after selection")
	}
	if a.simulator.Method != "getmempoolinfo" {
		t.Errorf("method = %q, want getmempoolinfo", a.simulator.Method)
	}
	if a.methodInput.Value() != "getmempoolinfo" {
		t.Errorf("method input = %q", a.methodInput.Value())
	}
}

func TestMethodPickerAppendsInBatchMode(t *testing.T) {
	a := newTestView(t, nil)
	a = press(t, a, alt("2"))
	a = press(t, a, alt("t"))

	a = press(t, a, alt("p"))
	a = press(t, a, runes("getwalletinfo"))
	a = press(t, a, enter)

	items := a.simulator.Batch.Items()
	if len(items) != 3 {
		t.Fatalf("batch has %d commands, want 3", len(items))
	}
	if items[2].Method != "getwalletinfo" || items[2].Params != "" {
		t.Errorf("appended command = %+v", items[2])
	}
	if a.batchIdx != 2 {
		t.Errorf("selection = %d, want the new command", a.batchIdx)
	}
}

func TestChatSubmitFlow(t *testing.T) {
	mock := testutil.NewReplyingProvider("mock", "Use `getblock`.")
	a := newTestView(t, mock)
	a = press(t, a, alt("3"))

	a = press(t, a, runes("how do I fetch a block?"))
	a, cmd := update(t, a, enter)

	if got := len(a.chat.Messages); got != 2 {
		t.Fatalf("messages after submit = %d, want 2", got)
	}
	if a.chat.Messages[1].Role != appmodel.RoleUser {
		t.Errorf("second message role = %q, want user", a.chat.Messages[1].Role)
	}
	if a.chatInput.Value() != "" {
		t.Errorf("input not cleared: %q", a.chatInput.Value())
	}

	reply := findMsg[appmodel.ChatReplyMsg](t, cmd)
	a, renderCmd := update(t, a, reply)

	if got := len(a.chat.Messages); got != 3 {
		t.Fatalf("messages after reply = %d, want 3", got)
	}
	last := a.chat.Messages[2]
	if last.Role != appmodel.RoleAssistant || last.Content != "Use `getblock`." {
		t.Errorf("reply = %+v", last)
	}

	rendered := findMsg[appmodel.MarkdownRenderedMsg](t, renderCmd)
	if rendered.MessageIndex != 2 {
		t.Errorf("render index = %d, want 2", rendered.MessageIndex)
	}
	a, _ = update(t, a, rendered)
	if !strings.Contains(stripANSI(a.chat.Messages[2].Rendered), "getblock") {
		t.Errorf("rendered reply lost its text: %q", a.chat.Messages[2].Rendered)
	}

	// system, greeting, user
	sent := mock.Calls()[0]
	if len(sent) != 3 {
		t.Fatalf("sent %d messages, want 3", len(sent))
	}
	if sent[1].Content != appmodel.Greeting || sent[2].Content != "how do I fetch a block?" {
		t.Errorf("history order wrong: %+v", sent)
	}
}

func TestChatBlankMessageMakesNoCall(t *testing.T) {
	mock := testutil.NewMockProvider("mock")
	a := newTestView(t, mock)
	a = press(t, a, alt("3"))

	a, _ = update(t, a, enter)

	if len(a.chat.Messages) != 1 || a.chat.Pending {
		t.Errorf("blank message changed state: %d messages, pending %v", len(a.chat.Messages), a.chat.Pending)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
}

func TestModelSelectorWithoutProvider(t *testing.T) {
	a := newTestView(t, nil)

	a = press(t, a, alt("m"))
	if a.showModelSelector {
		t.Error("selector opened without a provider")
	}
	if !a.showAcknowledgeModal {
		t.Fatal("expected a warning modal")
	}
	if !strings.Contains(a.acknowledgeModalMsg, "GEMINI_API_KEY") {
		t.Errorf("warning does not name the credential: %q", a.acknowledgeModalMsg)
	}

	a = press(t, a, enter)
	if a.showAcknowledgeModal {
		t.Error("enter should dismiss the modal")
	}
}

func TestModelSelectorSwitchesModel(t *testing.T) {
	mock := testutil.NewMockProvider("mock-model-1")
	a := newTestView(t, mock)

	var saved string
	a.saveModel = func(m string) error {
		saved = m
		return nil
	}

	a, cmd := update(t, a, alt("m"))
	if !a.showModelSelector {
		t.Fatal("selector did not open")
	}

	list := findMsg[appmodel.ModelsListMsg](t, cmd)
	a, _ = update(t, a, list)
	if a.selectedModelIdx != 0 {
		t.Errorf("current model not preselected: idx %d", a.selectedModelIdx)
	}

	a = press(t, a, runes("j"))
	a = press(t, a, enter)

	if a.showModelSelector {
		t.Error("selector still open")
	}
	if mock.GetModel() != "mock-model-2" {
		t.Errorf("provider model = %q, want mock-model-2", mock.GetModel())
	}
	if saved != "mock-model-2" {
		t.Errorf("saved model = %q, want mock-model-2", saved)
	}
}

func TestModelSelectorFilter(t *testing.T) {
	mock := testutil.NewMockProvider("mock-model-1")
	a := newTestView(t, mock)

	a, cmd := update(t, a, alt("m"))
	a, _ = update(t, a, findMsg[appmodel.ModelsListMsg](t, cmd))

	a = press(t, a, runes("/"))
	a = press(t, a, runes("2"))

	list := a.getModelList()
	if len(list) != 1 || list[0].Name != "mock-model-2" {
		t.Errorf("filtered list = %+v", list)
	}
}

func TestProviderCheckedUpdatesStatus(t *testing.T) {
	mock := testutil.NewMockProvider("mock")
	a := newTestView(t, mock)

	if !strings.Contains(a.renderProviderStatus(), "checking") {
		t.Errorf("status before check = %q", a.renderProviderStatus())
	}

	a, _ = update(t, a, appmodel.ProviderCheckedMsg{})
	if !strings.Contains(a.renderProviderStatus(), "connected") {
		t.Errorf("status after check = %q", a.renderProviderStatus())
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	a := newTestView(t, nil)

	a = press(t, a, alt("h"))
	if !a.showHelp {
		t.Fatal("help did not open")
	}
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help overlay not rendered")
	}

	// Keys other than close are swallowed
	a = press(t, a, alt("2"))
	if a.active != screenGenerator {
		t.Error("screen changed behind the help overlay")
	}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.showHelp {
		t.Error("esc should close help")
	}
}

func TestViewShowsCredentialWarning(t *testing.T) {
	a := newTestView(t, nil)

	view := a.View()
	if !strings.Contains(view, "no credentials") {
		t.Errorf("missing credential warning in title:\n%s", view)
	}
	if !strings.Contains(view, "Script Generator") {
		t.Error("tab bar missing")
	}
}

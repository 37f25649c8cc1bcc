package model

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"bitrpc/reference"
)

// GeneratorState holds the script generator screen: the task description,
// the last generated script, and whether a request is in flight.
type GeneratorState struct {
	Task    string
	Result  string
	Pending bool

	assistant Assistant
}

func NewGeneratorState(assistant Assistant) *GeneratorState {
	return &GeneratorState{assistant: assistant}
}

// CanSubmit reports whether Submit would issue a request.
func (g *GeneratorState) CanSubmit() bool {
	return !g.Pending && strings.TrimSpace(g.Task) != ""
}

// Submit starts script generation for the current task.
// Returns nil without side effects if the task is blank or a request is pending.
func (g *GeneratorState) Submit() tea.Cmd {
	if !g.CanSubmit() {
		return nil
	}

	g.Pending = true
	task := g.Task
	assistant := g.assistant

	return func() tea.Msg {
		return ScriptGeneratedMsg{Text: assistant.GenerateScript(context.Background(), task)}
	}
}

// Complete stores the generated script and leaves the pending state.
func (g *GeneratorState) Complete(msg ScriptGeneratedMsg) {
	g.Result = msg.Text
	g.Pending = false
}

// UseExample replaces the task with the i-th example prompt.
func (g *GeneratorState) UseExample(i int) bool {
	examples := reference.ExamplePrompts()
	if i < 0 || i >= len(examples) {
		return false
	}
	g.Task = examples[i].Task
	return true
}

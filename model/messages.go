package model

import (
	"bitrpc/ollama"
)

// ScriptGeneratedMsg carries the script generator's result text.
type ScriptGeneratedMsg struct {
	Text string
}

// SimulationDoneMsg carries the simulator's (already normalized) response text.
type SimulationDoneMsg struct {
	Text string
}

// ChatReplyMsg carries the assistant's reply to the latest user message.
type ChatReplyMsg struct {
	Text string
}

type MarkdownRenderedMsg struct {
	MessageIndex int
	Rendered     string
}

type DocsRenderedMsg struct {
	Rendered string
}

type ModelsListMsg struct {
	Models []ollama.ModelInfo
	Err    error
}

type ProviderCheckedMsg struct {
	Err error
}

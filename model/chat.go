package model

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Greeting seeds every new conversation.
const Greeting = "Hello! I'm your python-bitcoinrpc assistant. Ask me anything about installation, usage, or specific methods."

// ChatState holds the assistant screen. Messages only grow; a message is
// never changed once appended, apart from its cached rendering.
type ChatState struct {
	Messages []Message
	Pending  bool

	assistant Assistant
	now       func() time.Time
}

func NewChatState(assistant Assistant) *ChatState {
	c := &ChatState{
		assistant: assistant,
		now:       time.Now,
	}
	c.Messages = []Message{{
		Role:      RoleAssistant,
		Content:   Greeting,
		Rendered:  Greeting,
		Timestamp: c.now(),
	}}
	return c
}

// CanSubmit reports whether Submit would issue a request for text.
func (c *ChatState) CanSubmit(text string) bool {
	return !c.Pending && strings.TrimSpace(text) != ""
}

// Submit appends the user's message right away and asks the assistant for a
// reply. The history sent along is every message before this one.
func (c *ChatState) Submit(text string) tea.Cmd {
	if !c.CanSubmit(text) {
		return nil
	}

	history := make([]Message, len(c.Messages))
	copy(history, c.Messages)

	c.Messages = append(c.Messages, Message{
		Role:      RoleUser,
		Content:   text,
		Rendered:  text,
		Timestamp: c.now(),
	})
	c.Pending = true

	assistant := c.assistant
	return func() tea.Msg {
		return ChatReplyMsg{Text: assistant.Chat(context.Background(), history, text)}
	}
}

// Complete appends the assistant's reply and leaves the pending state.
// Returns the index of the new message.
func (c *ChatState) Complete(msg ChatReplyMsg) int {
	c.Messages = append(c.Messages, Message{
		Role:      RoleAssistant,
		Content:   msg.Text,
		Rendered:  msg.Text,
		Timestamp: c.now(),
	})
	c.Pending = false
	return len(c.Messages) - 1
}

// SetRendered caches the rendered form of message i.
func (c *ChatState) SetRendered(i int, rendered string) {
	if i >= 0 && i < len(c.Messages) {
		c.Messages[i].Rendered = rendered
	}
}

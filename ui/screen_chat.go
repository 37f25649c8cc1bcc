package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bitrpc/config"
	appmodel "bitrpc/model"
)

func (a AppView) handleChatKey(msg tea.KeyMsg) (AppView, tea.Cmd) {
	kb := a.kb

	switch msg.String() {
	case kb.GetActionKey("submit"):
		text := strings.TrimSpace(a.chatInput.Value())
		cmd := a.chat.Submit(text)
		if cmd == nil {
			return a, nil
		}
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Chat] Sending message (%d chars, %d in history)", len(text), len(a.chat.Messages)-1)
		}
		a.chatInput.Reset()
		a.updateChatViewport(true)
		return a, tea.Batch(cmd, a.loadingSpinner.Tick)

	case kb.GetActionKey("clear_input"):
		a.chatInput.Reset()
		return a, nil
	}

	if a.handleScrollKey(&a.chatView, msg) {
		return a, nil
	}

	var cmd tea.Cmd
	a.chatInput, cmd = a.chatInput.Update(msg)
	return a, cmd
}

func (a *AppView) updateChatViewport(gotoBottom bool) {
	var content strings.Builder

	for _, msg := range a.chat.Messages {
		timestamp := DimStyle.Render(msg.Timestamp.Format("[15:04]"))

		if msg.Role == appmodel.RoleUser {
			content.WriteString(formatUserMessage("", timestamp, UserStyle.Render("You"), msg.Rendered))
			continue
		}

		role := AssistantStyle.Render("Assistant")
		content.WriteString(fmt.Sprintf("%s %s\n%s\n\n", timestamp, role, msg.Rendered))
	}

	if a.chat.Pending {
		role := AssistantStyle.Render("Assistant")
		content.WriteString(fmt.Sprintf("%s %s\n", role, a.loadingSpinner.View()+DimStyle.Render(" typing...")))
	}

	a.chatView.SetContent(content.String())
	if gotoBottom {
		a.chatView.GotoBottom()
	}
}

func (a AppView) renderChat() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		a.chatView.View(),
		a.chatInput.View(),
	)
}

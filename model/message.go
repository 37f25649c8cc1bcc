package model

import "time"

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system" // only sent to providers, never shown in a conversation
)

// Message represents a chat message in the conversation
type Message struct {
	Role      string
	Content   string
	Rendered  string // Cached rendered markdown
	Timestamp time.Time
}

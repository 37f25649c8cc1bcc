package model

import (
	"context"

	"bitrpc/ollama"
)

// Provider abstracts LLM provider implementations (Gemini, Ollama, OpenAI,
// Anthropic, OpenRouter) using provider-agnostic types from the model layer.
//
// This interface is defined in the model package (not provider package) to avoid
// import cycles: provider implementations can import model, and model can use the
// Provider interface without importing the provider package.
type Provider interface {
	// Chat sends messages and streams responses back via callback.
	// Messages with RoleSystem carry the system instruction.
	Chat(ctx context.Context, messages []Message, callback StreamCallback) error

	// ListModels returns available models for this provider.
	ListModels(ctx context.Context) ([]ollama.ModelInfo, error)

	// GetModel returns the currently selected model name (InternalName for API calls).
	GetModel() string

	// GetDisplayName returns the model name formatted for UI display.
	// For OpenRouter, this strips the vendor prefix (e.g., "qwen/qwen3-coder:free" → "qwen3-coder:free").
	GetDisplayName() string

	// SetModel changes the active model.
	SetModel(model string)

	// Ping checks if the provider is reachable.
	Ping(ctx context.Context) error
}

// StreamCallback is called for each chunk of streamed response.
type StreamCallback func(chunk string) error

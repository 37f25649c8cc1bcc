// Package provider adapts external LLM services to the model.Provider contract.
//
// bitrpc delegates script generation, RPC simulation, and chat answers to a
// generative-AI service. The provider abstraction keeps the rest of the
// application vendor-agnostic: the assist package only sees model.Provider.
//
// # Why Provider Abstraction?
//
// The provider abstraction exists to:
//   - Support the original Gemini backend alongside local Ollama and other cloud APIs
//   - Isolate vendor SDK types from bitrpc's core types
//   - Allow testing with mock providers (see provider/testutil)
//
// # Type Conversions
//
// Each adapter converts model.Message to its SDK's message type. Messages with
// the "system" role become the vendor's system instruction (a separate field
// for Gemini and Anthropic, a system message for OpenAI-compatible APIs and Ollama).
//
// # Usage
//
//	cfg := provider.Config{
//	    Type:   provider.ProviderTypeGemini,
//	    Model:  "gemini-2.5-flash",
//	    APIKey: os.Getenv("API_KEY"),
//	}
//	p, err := provider.NewProvider(cfg)
//	if err != nil {
//	    // handle error
//	}
//	err = p.Chat(ctx, messages, callback)
package provider

// Note: The Provider interface and StreamCallback are defined in the model package
// (model/provider.go) to avoid import cycles. This package implements model.Provider.

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeGemini     ProviderType = "gemini"
	ProviderTypeOllama     ProviderType = "ollama"
	ProviderTypeOpenRouter ProviderType = "openrouter"
	ProviderTypeOpenAI     ProviderType = "openai"
	ProviderTypeAnthropic  ProviderType = "anthropic"
)

// Config holds provider-specific configuration.
type Config struct {
	Type    ProviderType
	BaseURL string
	Model   string
	APIKey  string // Unused for Ollama
}

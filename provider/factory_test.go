package provider

import (
	"testing"

	"bitrpc/model"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:   "ollama provider with defaults",
			config: Config{Type: ProviderTypeOllama},
		},
		{
			name: "ollama provider with custom config",
			config: Config{
				Type:    ProviderTypeOllama,
				BaseURL: "http://localhost:11434",
				Model:   "llama3.1",
			},
		},
		{
			name: "gemini provider",
			config: Config{
				Type:   ProviderTypeGemini,
				Model:  "gemini-2.5-flash",
				APIKey: "test-key",
			},
		},
		{
			name:        "gemini provider without key",
			config:      Config{Type: ProviderTypeGemini},
			expectError: true,
		},
		{
			name: "openai provider",
			config: Config{
				Type:    ProviderTypeOpenAI,
				BaseURL: "https://api.openai.com/v1",
				Model:   "gpt-4o-mini",
				APIKey:  "test-key",
			},
		},
		{
			name: "openrouter provider",
			config: Config{
				Type:   ProviderTypeOpenRouter,
				APIKey: "test-key",
			},
		},
		{
			name:        "openrouter provider without key",
			config:      Config{Type: ProviderTypeOpenRouter},
			expectError: true,
		},
		{
			name: "anthropic provider",
			config: Config{
				Type:    ProviderTypeAnthropic,
				BaseURL: "https://api.anthropic.com",
				Model:   "claude-sonnet-4-5-20250929",
				APIKey:  "test-key",
			},
		},
		{
			name: "unknown provider type",
			config: Config{
				Type:    ProviderType("unknown"),
				BaseURL: "http://localhost",
				Model:   "test",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.config)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if provider != nil {
					t.Error("expected nil provider, got non-nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if provider == nil {
				t.Fatal("expected non-nil provider, got nil")
			}
			if provider.GetModel() == "" {
				t.Error("provider should fall back to a default model")
			}
		})
	}
}

func TestGeminiDefaultModel(t *testing.T) {
	p, err := NewGeminiProvider("", "test-key", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.GetModel() != DefaultGeminiModel {
		t.Errorf("GetModel() = %q, want %q", p.GetModel(), DefaultGeminiModel)
	}

	p.SetModel("gemini-2.5-pro")
	if p.GetDisplayName() != "gemini-2.5-pro" {
		t.Errorf("GetDisplayName() = %q after SetModel", p.GetDisplayName())
	}
}

// TestFactoryReturnsOllamaProvider verifies that the factory returns an actual OllamaProvider
func TestFactoryReturnsOllamaProvider(t *testing.T) {
	cfg := Config{
		Type:    ProviderTypeOllama,
		BaseURL: "http://localhost:11434",
		Model:   "llama3.1",
	}

	provider, err := NewProvider(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := provider.(*OllamaProvider); !ok {
		t.Errorf("expected *OllamaProvider, got %T", provider)
	}
}

func TestMapProviderIDToType(t *testing.T) {
	tests := []struct {
		id   string
		want ProviderType
	}{
		{"gemini", ProviderTypeGemini},
		{"google", ProviderTypeGemini},
		{"ollama", ProviderTypeOllama},
		{"openrouter", ProviderTypeOpenRouter},
		{"openai", ProviderTypeOpenAI},
		{"anthropic", ProviderTypeAnthropic},
		{"claude", ProviderTypeAnthropic},
		{"mystery", ProviderType("mystery")},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := MapProviderIDToType(tt.id); got != tt.want {
				t.Errorf("MapProviderIDToType(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

// Compile-time checks that every adapter satisfies model.Provider.
var (
	_ model.Provider = (*GeminiProvider)(nil)
	_ model.Provider = (*OllamaProvider)(nil)
	_ model.Provider = (*OpenAIProvider)(nil)
	_ model.Provider = (*OpenRouterProvider)(nil)
	_ model.Provider = (*AnthropicProvider)(nil)
)

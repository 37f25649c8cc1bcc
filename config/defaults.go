package config

func DefaultSettings() *Settings {
	return &Settings{
		Provider: ProviderSettings{
			ID:    DefaultProviderID,
			Model: "gemini-2.5-flash",
		},
	}
}

func GenerateSettingsTemplate() string {
	return `# bitrpc Configuration
# Location: ~/.config/bitrpc/settings.toml
# This file uses TOML format: https://toml.io
#
# API keys are never stored here. Export API_KEY, or the provider-specific
# variable (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY).

[provider]
# Generation service: gemini | ollama | openai | anthropic | openrouter
id = "gemini"

# Model used for script generation, simulation and chat
model = "gemini-2.5-flash"

# Optional API endpoint override (e.g. "http://localhost:11434" for Ollama)
base_url = ""
`
}

package provider

import (
	"fmt"

	"bitrpc/config"
	"bitrpc/model"
)

// Initialize creates the provider selected in the application configuration.
//
// The API key comes from the environment (see config.Config.APIKey). A missing
// key is reported as an error; callers are expected to keep running without a
// provider so that every generation request degrades to its fallback text.
func Initialize(cfg *config.Config) (model.Provider, error) {
	providerType := MapProviderIDToType(cfg.ProviderID)

	p, err := NewProvider(Config{
		Type:    providerType,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		APIKey:  cfg.APIKey(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize provider %s: %w", cfg.ProviderID, err)
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Provider] Initialized provider: %s (type: %s, model: %s)", cfg.ProviderID, providerType, p.GetModel())
	}

	return p, nil
}

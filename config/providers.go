package config

import (
	"fmt"
)

// UpdateProviderField updates a single [provider] field in settings.toml.
//
// Fields: "id", "model", "base_url"
func UpdateProviderField(path, fieldName, value string) error {
	cfg, err := LoadSettings(path)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	switch fieldName {
	case "id":
		cfg.Provider.ID = value
	case "model":
		cfg.Provider.Model = value
	case "base_url":
		cfg.Provider.BaseURL = value
	default:
		return fmt.Errorf("unknown provider field: %s", fieldName)
	}

	if err := SaveSettings(cfg, path); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if DebugLog != nil {
		DebugLog.Printf("[Config] Updated provider %s = %q", fieldName, value)
	}

	return nil
}

// SaveModel persists the active model so the next start uses it.
func SaveModel(model string) error {
	return UpdateProviderField(GetSettingsFilePath(), "model", model)
}

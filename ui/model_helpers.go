package ui

import (
	"bitrpc/ollama"
)

// IsCurrentModel checks if a model matches the current model name.
// Handles the difference between display names and internal names across providers.
//
// For Ollama: Name == InternalName (e.g., "llama3.2:latest")
// For OpenRouter: Name is stripped, InternalName has full path
//   - Name: "gemini-2.5-flash"
//   - InternalName: "google/gemini-2.5-flash"
func IsCurrentModel(model ollama.ModelInfo, currentModel string) bool {
	if currentModel == "" {
		return false
	}
	if model.InternalName == currentModel {
		return true
	}
	return model.Name == currentModel
}

// FindModelByName finds a model in a list by matching against current model name.
// Returns the index and model info, or -1 and nil if not found.
func FindModelByName(models []ollama.ModelInfo, modelName string) (int, *ollama.ModelInfo) {
	for i, model := range models {
		if IsCurrentModel(model, modelName) {
			return i, &models[i]
		}
	}
	return -1, nil
}

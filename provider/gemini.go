package provider

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"bitrpc/model"
	"bitrpc/ollama"
)

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiProvider implements the Provider interface using the Google Gen AI SDK
// against the Gemini Developer API.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	baseURL string
	apiKey  string
}

// NewGeminiProvider creates a new Gemini provider instance.
//
// Parameters:
//   - baseURL: Optional API base URL override (empty uses the SDK default)
//   - apiKey: Gemini API key (required)
//   - model: Initial model to use (default: "gemini-2.5-flash")
//
// Returns an error if the API key is missing or the client cannot be built.
func NewGeminiProvider(baseURL, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(context.Background(), cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:  client,
		model:   model,
		baseURL: baseURL,
		apiKey:  apiKey,
	}, nil
}

// Chat implements Provider.Chat with streaming support.
func (p *GeminiProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	contents, system := ConvertToGeminiContents(messages)

	var cfg *genai.GenerateContentConfig
	if system != nil {
		cfg = &genai.GenerateContentConfig{SystemInstruction: system}
	}

	for resp, err := range p.client.Models.GenerateContentStream(ctx, p.model, contents, cfg) {
		if err != nil {
			return fmt.Errorf("Gemini streaming error: %w", err)
		}
		text := resp.Text()
		if text == "" || callback == nil {
			continue
		}
		if err := callback(text); err != nil {
			return err
		}
	}

	return nil
}

// ListModels implements Provider.ListModels.
// Gemini reports names as "models/<id>"; the prefix is kept as InternalName
// and stripped for display.
func (p *GeminiProvider) ListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	page, err := p.client.Models.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list Gemini models: %w", err)
	}

	result := make([]ollama.ModelInfo, 0, len(page.Items))
	for _, m := range page.Items {
		name := strings.TrimPrefix(m.Name, "models/")
		result = append(result, ollama.ModelInfo{
			Name:         name,
			InternalName: name,
			Provider:     "gemini",
		})
	}

	return result, nil
}

// GetModel implements Provider.GetModel.
func (p *GeminiProvider) GetModel() string {
	return p.model
}

// GetDisplayName implements Provider.GetDisplayName.
func (p *GeminiProvider) GetDisplayName() string {
	return p.model
}

// SetModel implements Provider.SetModel.
func (p *GeminiProvider) SetModel(model string) {
	p.model = model
}

// Ping implements Provider.Ping by attempting to list models.
func (p *GeminiProvider) Ping(ctx context.Context) error {
	if _, err := p.client.Models.List(ctx, nil); err != nil {
		return fmt.Errorf("Gemini ping failed: %w", err)
	}
	return nil
}

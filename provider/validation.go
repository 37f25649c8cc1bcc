package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bitrpc/config"
	"bitrpc/model"
)

// ErrNotConfigured is reported when no provider could be initialized.
var ErrNotConfigured = errors.New("no provider configured")

// checkTimeout bounds the reachability probe.
const checkTimeout = 10 * time.Second

// CheckProvider probes the provider with Ping and reports the outcome as a
// model.ProviderCheckedMsg. A nil provider reports ErrNotConfigured.
func CheckProvider(p model.Provider) tea.Cmd {
	return func() tea.Msg {
		if p == nil {
			return model.ProviderCheckedMsg{Err: ErrNotConfigured}
		}

		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[Provider] Ping failed for model %s: %v", p.GetModel(), err)
			}
			return model.ProviderCheckedMsg{Err: fmt.Errorf("connection failed: %w", err)}
		}

		if config.DebugLog != nil {
			config.DebugLog.Printf("[Provider] Ping successful for model %s", p.GetModel())
		}

		return model.ProviderCheckedMsg{}
	}
}

// FetchModels lists the provider's models and reports them as a model.ModelsListMsg.
func FetchModels(p model.Provider) tea.Cmd {
	return func() tea.Msg {
		if p == nil {
			return model.ModelsListMsg{Err: ErrNotConfigured}
		}

		models, err := p.ListModels(context.Background())
		if err != nil {
			return model.ModelsListMsg{Err: err}
		}

		if config.DebugLog != nil {
			config.DebugLog.Printf("[Provider] Fetched %d models", len(models))
		}

		return model.ModelsListMsg{Models: models}
	}
}

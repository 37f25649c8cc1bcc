package testutil

import (
	"context"
	"sync"

	"bitrpc/model"
	"bitrpc/ollama"
)

// MockProvider implements model.Provider for testing.
// Every Chat call is recorded so tests can assert on the messages sent.
type MockProvider struct {
	// Configurable responses
	ChatFunc       func(ctx context.Context, messages []model.Message, callback model.StreamCallback) error
	ListModelsFunc func(ctx context.Context) ([]ollama.ModelInfo, error)
	PingFunc       func(ctx context.Context) error

	// State
	mu           sync.Mutex
	currentModel string
	calls        [][]model.Message
}

// NewMockProvider creates a mock provider with default implementations
func NewMockProvider(modelName string) *MockProvider {
	mock := &MockProvider{
		currentModel: modelName,
	}
	mock.ChatFunc = mock.defaultChat
	mock.ListModelsFunc = mock.defaultListModels
	mock.PingFunc = mock.defaultPing
	return mock
}

// NewReplyingProvider returns a mock whose Chat streams chunks in order.
func NewReplyingProvider(modelName string, chunks ...string) *MockProvider {
	mock := NewMockProvider(modelName)
	mock.ChatFunc = func(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
		for _, c := range chunks {
			if err := callback(c); err != nil {
				return err
			}
		}
		return nil
	}
	return mock
}

// NewFailingProvider returns a mock whose Chat and Ping always fail with err.
func NewFailingProvider(modelName string, err error) *MockProvider {
	mock := NewMockProvider(modelName)
	mock.ChatFunc = func(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
		return err
	}
	mock.PingFunc = func(ctx context.Context) error {
		return err
	}
	return mock
}

func (m *MockProvider) defaultChat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	// Default: echo back a mock response
	if len(messages) > 0 {
		return callback("Mock response")
	}
	return nil
}

func (m *MockProvider) defaultListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	return []ollama.ModelInfo{
		{Name: "mock-model-1", Size: 1000, Provider: "mock", InternalName: "mock-model-1"},
		{Name: "mock-model-2", Size: 2000, Provider: "mock", InternalName: "mock-model-2"},
	}, nil
}

func (m *MockProvider) defaultPing(ctx context.Context) error {
	return nil
}

func (m *MockProvider) Chat(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
	m.mu.Lock()
	recorded := make([]model.Message, len(messages))
	copy(recorded, messages)
	m.calls = append(m.calls, recorded)
	m.mu.Unlock()

	return m.ChatFunc(ctx, messages, callback)
}

// Calls returns the message lists passed to Chat, oldest first.
func (m *MockProvider) Calls() [][]model.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([][]model.Message, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times Chat was invoked.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *MockProvider) ListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	return m.ListModelsFunc(ctx)
}

func (m *MockProvider) GetModel() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentModel
}

func (m *MockProvider) GetDisplayName() string {
	// Mock provider returns same value as GetModel (no prefix stripping)
	return m.GetModel()
}

func (m *MockProvider) SetModel(model string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentModel = model
}

func (m *MockProvider) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}

package llm

import "context"

// MockProvider is a scripted provider for tests.
type MockProvider struct {
	ProviderName string
	// GenerateFunc is invoked for every call; the mock records calls in
	// Calls regardless.
	GenerateFunc func(ctx context.Context, model, prompt string, jsonMode bool) (string, error)
	Calls        []MockCall
}

// MockCall records one Generate invocation.
type MockCall struct {
	Model    string
	Prompt   string
	JSONMode bool
}

func NewMockProvider(name string) *MockProvider {
	return &MockProvider{ProviderName: name}
}

func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

func (m *MockProvider) Generate(ctx context.Context, model, prompt string, jsonMode bool) (string, error) {
	m.Calls = append(m.Calls, MockCall{Model: model, Prompt: prompt, JSONMode: jsonMode})
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, model, prompt, jsonMode)
	}
	return "", &ProviderError{Provider: m.Name(), Model: model, Kind: FailureOther}
}

var _ Provider = (*MockProvider)(nil)

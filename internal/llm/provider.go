// Package llm holds the provider adapters the quiz generator talks to.
// Each adapter wraps one provider family's SDK behind the same Generate
// capability and classifies failures into structured kinds, so the
// candidate loop never inspects provider-specific errors or response
// envelopes.
package llm

import "context"

// Provider is one provider family (Gemini, OpenRouter). The model is
// chosen per call because the generator walks an ordered model list
// within each provider.
type Provider interface {
	// Name identifies the provider family in logs and candidate lists.
	Name() string

	// Generate sends prompt to the given model and returns the raw text
	// completion. When jsonMode is set the provider's structured/JSON
	// response mode is requested; a provider that rejects that mode fails
	// with FailureBadRequest so the caller can retry without it.
	Generate(ctx context.Context, model, prompt string, jsonMode bool) (string, error)
}

// Candidate is one (provider, model) pair the generator may try.
type Candidate struct {
	Provider Provider
	Model    string
}

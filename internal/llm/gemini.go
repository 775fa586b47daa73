package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

const geminiProviderName = "gemini"

// GeminiProvider implements Provider using the Google Gemini SDK.
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a Gemini provider from an API key.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client}, nil
}

func (p *GeminiProvider) Name() string { return geminiProviderName }

func (p *GeminiProvider) Generate(ctx context.Context, model, prompt string, jsonMode bool) (string, error) {
	temp := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if jsonMode {
		config.ResponseMIMEType = "application/json"
	}

	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", p.wrap(model, err)
	}

	text := result.Text()
	if text == "" {
		return "", &ProviderError{
			Provider: geminiProviderName,
			Model:    model,
			Kind:     FailureOther,
			Err:      fmt.Errorf("empty completion"),
		}
	}
	return text, nil
}

func (p *GeminiProvider) wrap(model string, err error) error {
	kind := FailureTransport

	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			kind = FailureQuota
		case apiErr.Code == http.StatusNotFound:
			kind = FailureUnsupportedModel
		case apiErr.Code == http.StatusBadRequest:
			kind = FailureBadRequest
		case apiErr.Code >= 500:
			kind = FailureTransport
		default:
			kind = FailureOther
		}
	}

	return &ProviderError{
		Provider: geminiProviderName,
		Model:    model,
		Kind:     kind,
		Err:      err,
	}
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterProviderName = "openrouter"

// OpenRouterProvider implements Provider against the OpenRouter API.
// OpenRouter is OpenAI-compatible, so the OpenAI SDK is reused with a
// different base URL.
type OpenRouterProvider struct {
	client *openai.Client
}

// attributionTransport adds the headers OpenRouter uses to attribute
// traffic to an application.
type attributionTransport struct {
	base http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", "https://github.com/wiki-quiz")
	req.Header.Set("X-Title", "AI Wiki Quiz Generator")
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// NewOpenRouterProvider creates an OpenRouter provider.
func NewOpenRouterProvider(apiKey, baseURL string) (*OpenRouterProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	config.HTTPClient = &http.Client{Transport: &attributionTransport{}}

	return &OpenRouterProvider{client: openai.NewClientWithConfig(config)}, nil
}

func (p *OpenRouterProvider) Name() string { return openRouterProviderName }

func (p *OpenRouterProvider) Generate(ctx context.Context, model, prompt string, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", p.wrap(model, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &ProviderError{
			Provider: openRouterProviderName,
			Model:    model,
			Kind:     FailureOther,
			Err:      fmt.Errorf("no completion in response"),
		}
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenRouterProvider) wrap(model string, err error) error {
	kind := FailureTransport

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			kind = FailureQuota
		case apiErr.HTTPStatusCode == http.StatusNotFound:
			kind = FailureUnsupportedModel
		case apiErr.HTTPStatusCode == http.StatusBadRequest:
			kind = FailureBadRequest
		case apiErr.HTTPStatusCode >= 500:
			kind = FailureTransport
		default:
			kind = FailureOther
		}
	}

	return &ProviderError{
		Provider: openRouterProviderName,
		Model:    model,
		Kind:     kind,
		Err:      err,
	}
}

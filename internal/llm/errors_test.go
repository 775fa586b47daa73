package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	pe := &ProviderError{Provider: "gemini", Model: "gemini-2.0-flash", Kind: FailureQuota, Err: errors.New("429")}
	assert.Equal(t, FailureQuota, KindOf(pe))

	wrapped := fmt.Errorf("candidate failed: %w", pe)
	assert.Equal(t, FailureQuota, KindOf(wrapped))

	assert.Equal(t, FailureOther, KindOf(errors.New("plain")))
	assert.Equal(t, FailureOther, KindOf(nil))
}

func TestFailureKindString(t *testing.T) {
	assert.Equal(t, "quota", FailureQuota.String())
	assert.Equal(t, "unsupported_model", FailureUnsupportedModel.String())
	assert.Equal(t, "bad_request", FailureBadRequest.String())
	assert.Equal(t, "transport", FailureTransport.String())
	assert.Equal(t, "other", FailureOther.String())
}

func TestProviderErrorMessage(t *testing.T) {
	pe := &ProviderError{Provider: "openrouter", Model: "some/model", Kind: FailureUnsupportedModel, Err: errors.New("404")}
	assert.Contains(t, pe.Error(), "openrouter/some/model")
	assert.Contains(t, pe.Error(), "unsupported_model")
}

package llm

import (
	"errors"
	"fmt"
)

// FailureKind is the structured classification of a failed model call.
// Adapters derive it from SDK error codes, never from message text.
type FailureKind int

const (
	// FailureOther covers everything without a more specific kind.
	FailureOther FailureKind = iota

	// FailureQuota is a rate-limit or quota-exhaustion rejection (429).
	FailureQuota

	// FailureUnsupportedModel means the model identifier was not found
	// or is not available to this credential (404).
	FailureUnsupportedModel

	// FailureBadRequest is a request the provider rejected as malformed
	// (400), typically an unsupported response-format parameter.
	FailureBadRequest

	// FailureTransport is a server-side or connectivity failure (5xx,
	// dial errors, timeouts).
	FailureTransport
)

func (k FailureKind) String() string {
	switch k {
	case FailureQuota:
		return "quota"
	case FailureUnsupportedModel:
		return "unsupported_model"
	case FailureBadRequest:
		return "bad_request"
	case FailureTransport:
		return "transport"
	default:
		return "other"
	}
}

// ProviderError is the error every adapter returns for a failed call.
type ProviderError struct {
	Provider string
	Model    string
	Kind     FailureKind
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s/%s: %s: %v", e.Provider, e.Model, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// KindOf extracts the failure kind from an adapter error. Non-adapter
// errors classify as FailureOther.
func KindOf(err error) FailureKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return FailureOther
}

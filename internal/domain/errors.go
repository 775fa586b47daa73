package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Pipeline errors
	CodeNetwork          ErrorCode = "NETWORK_ERROR"
	CodeContent          ErrorCode = "CONTENT_ERROR"
	CodeGeneration       ErrorCode = "GENERATION_ERROR"
	CodeConfig           ErrorCode = "CONFIG_ERROR"
	CodeQuizNotFound     ErrorCode = "QUIZ_NOT_FOUND"
	CodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound, fmt.Sprintf("Quiz not found with ID: %s", quizID), nil)
}

func NewStoreUnavailableError() *DomainError {
	return NewError(CodeStoreUnavailable, "Persistence is not configured", nil)
}

// NewNetworkError reports a transport-level failure reaching the source
// document after retries were exhausted. The message is written to be
// shown to the caller verbatim.
func NewNetworkError(message string, cause error) *DomainError {
	return NewError(CodeNetwork, message, cause)
}

// NewContentError reports a document that was fetched but rejected
// (not found, forbidden). Content errors are never retried.
func NewContentError(message string, cause error) *DomainError {
	return NewError(CodeContent, message, cause)
}

func NewGenerationError(message string, cause error) *DomainError {
	return NewError(CodeGeneration, message, cause)
}

func NewConfigError(message string) *DomainError {
	return NewError(CodeConfig, message, nil)
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == code
}

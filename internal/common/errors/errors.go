// Package errors provides the standardized failure taxonomy for fulfillment handlers.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Missing or empty credentials, detected before any network call.
	ErrCodeConfigurationError ErrorCode = "CONFIGURATION_ERROR"

	// Transient external failure: transport error, timeout, non-success status.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// The upstream call succeeded but carried no usable data.
	ErrCodeEmptyResult ErrorCode = "EMPTY_RESULT"

	// Fuzzy match stayed below the acceptance threshold.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// A required slot is missing or its value is not recognized.
	ErrCodeInvalidSlot ErrorCode = "INVALID_SLOT"

	// The capability is disabled for this process (e.g. catalog failed to load).
	ErrCodeCapabilityDisabled ErrorCode = "CAPABILITY_DISABLED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Meta returns a metadata value as string, "" if absent.
func (e *StandardError) Meta(key string) string {
	if e.Metadata == nil {
		return ""
	}
	if v, ok := e.Metadata[key].(string); ok {
		return v
	}
	return ""
}

// NewConfigurationError creates a non-retryable credentials error.
func NewConfigurationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigurationError,
		Message:   "Service credentials missing or invalid",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewServiceUnavailableError creates a retryable external service error.
func NewServiceUnavailableError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeServiceUnavailable,
		Message:   fmt.Sprintf("External service '%s' unavailable", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyResultError creates a non-retryable empty upstream response error.
func NewEmptyResultError(service string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyResult,
		Message:   fmt.Sprintf("Service '%s' returned no usable results", service),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError creates a non-retryable lookup miss carrying the raw query
// and the best score seen, for diagnostics.
func NewNotFoundError(query string, bestScore float64) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   "No catalog title within the acceptance threshold",
		Details:   fmt.Sprintf("query: %q, bestScore: %.3f", query, bestScore),
		Retryable: false,
		Metadata:  map[string]interface{}{"query": query, "bestScore": bestScore},
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidSlotError creates a non-retryable slot validation error.
func NewInvalidSlotError(slot, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidSlot,
		Message:   fmt.Sprintf("Required slot '%s' missing or unrecognized", slot),
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"slot": slot},
		Timestamp: time.Now().UTC(),
	}
}

// NewCapabilityDisabledError marks a handler that cannot serve in this process.
func NewCapabilityDisabledError(capability, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCapabilityDisabled,
		Message:   fmt.Sprintf("Capability '%s' is not available", capability),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Normalize ensures any error surfaces as a StandardError.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsTrendingFailure reports whether the code belongs to the trending failure
// family that collapses into the single user-facing unavailable message.
func IsTrendingFailure(code ErrorCode) bool {
	switch code {
	case ErrCodeConfigurationError, ErrCodeServiceUnavailable, ErrCodeEmptyResult:
		return true
	}
	return false
}

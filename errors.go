package ai

import (
	"context"
	"errors"
	"net/http"

	"github.com/bitop-dev/ai-mixedbread/internal/provider"
)

// Error is a failed provider API call. Message is the provider's own error
// message when the response carried one.
type Error struct {
	Provider  string
	Code      string
	Type      string
	Param     any
	Status    int
	Message   string
	Retryable bool
	// Verbatim is set when Message is the provider's own error message,
	// which Error() then returns unchanged.
	Verbatim  bool

	Body    []byte
	Headers http.Header

	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Verbatim && e.Message != "" {
		return e.Message
	}
	if e.Provider != "" && e.Message != "" {
		return e.Provider + ": " + e.Message
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Provider != "" {
		return e.Provider + ": error"
	}
	return "error"
}

func (e *Error) Unwrap() error { return e.Cause }

type (
	// TooManyValuesError is returned before any request is sent when an
	// embedding call carries more values than the model accepts.
	TooManyValuesError = provider.TooManyValuesError
	// ValidationError is returned before any request is sent when provider
	// options do not match the provider's schema.
	ValidationError = provider.ValidationError
	// LoadAPIKeyError is returned when no API key is configured.
	LoadAPIKeyError = provider.LoadAPIKeyError
)

func IsRateLimited(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Status == 429 || e.Code == "rate_limited")
}

func IsAuth(err error) bool {
	var ke *LoadAPIKeyError
	if errors.As(err, &ke) {
		return true
	}
	var e *Error
	return errors.As(err, &e) && (e.Status == 401 || e.Status == 403 || e.Code == "unauthorized")
}

func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

func IsTooManyValues(err error) bool {
	var e *TooManyValuesError
	return errors.As(err, &e)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

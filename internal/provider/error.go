package provider

import (
	"fmt"
	"net/http"
)

// Error is a failed API call: a non-2xx response, or a 2xx response whose
// body could not be understood.
type Error struct {
	Provider string
	Code     string
	Type     string
	Param    any
	Status   int
	Message  string

	Retryable bool
	// Verbatim marks Message as the vendor's own error message. Error()
	// returns it unprefixed.
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
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Provider != "" {
		return fmt.Sprintf("%s: error", e.Provider)
	}
	return "error"
}

func (e *Error) Unwrap() error { return e.Cause }

// TooManyValuesError reports an embedding batch larger than the model accepts
// in a single call.
type TooManyValuesError struct {
	Provider string
	ModelID  string
	Limit    int
	Values   []string
}

func (e *TooManyValuesError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("too many values for a single embedding call: the %s model %q can only embed up to %d values per call, but %d values were provided",
		e.Provider, e.ModelID, e.Limit, len(e.Values))
}

// ValidationError reports provider options that do not match the provider's
// option schema.
type ValidationError struct {
	Provider string
	// Field is the offending option key, or "" when the options value itself
	// has the wrong shape.
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return fmt.Sprintf("invalid %s provider options: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("invalid %s provider option %q: %s", e.Provider, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// LoadAPIKeyError reports that no API key was configured or found in the
// environment.
type LoadAPIKeyError struct {
	Description string
	EnvVar      string
}

func (e *LoadAPIKeyError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s API key is missing: pass it in the config or set the %s environment variable", e.Description, e.EnvVar)
}

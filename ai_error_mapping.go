package ai

import (
	"errors"

	"github.com/bitop-dev/ai-mixedbread/internal/provider"
)

// mapProviderError converts provider API errors to *Error. Every other error
// is returned unchanged.
func mapProviderError(err error) error {
	if err == nil {
		return nil
	}
	var pe *provider.Error
	if errors.As(err, &pe) {
		return &Error{
			Provider:  pe.Provider,
			Code:      pe.Code,
			Type:      pe.Type,
			Param:     pe.Param,
			Status:    pe.Status,
			Message:   pe.Message,
			Retryable: pe.Retryable,
			Verbatim:  pe.Verbatim,
			Body:      pe.Body,
			Headers:   pe.Headers,
			Cause:     pe.Cause,
		}
	}
	return err
}

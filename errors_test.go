package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bitop-dev/ai-mixedbread/internal/provider"
)

func TestMapProviderError(t *testing.T) {
	cause := errors.New("cause")
	err := mapProviderError(fmt.Errorf("wrapped: %w", &provider.Error{
		Provider: "mixedbread.embedding",
		Status:   401,
		Code:     "invalid_api_key",
		Message:  "bad key",
		Cause:    cause,
	}))
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("err=%T", err)
	}
	if e.Error() != "mixedbread.embedding: bad key" {
		t.Fatalf("Error()=%q", e.Error())
	}
	if !IsAuth(err) {
		t.Fatalf("expected auth error")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not unwrapped")
	}
}

func TestMapProviderError_VerbatimMessage(t *testing.T) {
	err := mapProviderError(&provider.Error{Provider: "mixedbread.reranking", Status: 400, Message: "boom", Verbatim: true})
	if err.Error() != "boom" {
		t.Fatalf("Error()=%q", err.Error())
	}
}

func TestMapProviderError_PassesOtherErrors(t *testing.T) {
	if mapProviderError(nil) != nil {
		t.Fatalf("nil not preserved")
	}
	err := mapProviderError(context.Canceled)
	if !IsCanceled(err) {
		t.Fatalf("err=%v", err)
	}
	if IsTimeout(err) {
		t.Fatalf("canceled is not a timeout")
	}
}

func TestIsAuth_MissingAPIKey(t *testing.T) {
	err := &provider.LoadAPIKeyError{Description: "Mixedbread", EnvVar: "MIXEDBREAD_API_KEY"}
	if !IsAuth(err) {
		t.Fatalf("expected auth error")
	}
}

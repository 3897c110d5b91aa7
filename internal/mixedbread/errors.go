package mixedbread

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bitop-dev/ai-mixedbread/internal/provider"
	"github.com/bitop-dev/ai-mixedbread/internal/retry"
	"github.com/bitop-dev/ai-mixedbread/internal/schema"
)

var errorEnvelopeSchema = schema.MustCompile("mixedbread-error.json", `{
  "type": "object",
  "required": ["error"],
  "properties": {
    "error": {
      "type": "object",
      "required": ["message", "code", "type"],
      "properties": {
        "code": {"type": ["string", "null"]},
        "message": {"type": "string"},
        "type": {"type": "string"},
        "param": true
      }
    }
  }
}`)

type errorEnvelope struct {
	Error struct {
		Code    *string `json:"code"`
		Message string  `json:"message"`
		Type    string  `json:"type"`
		Param   any     `json:"param"`
	} `json:"error"`
}

// failedResponseError maps a non-2xx response. Bodies in the vendor error
// envelope keep the vendor message verbatim; anything else becomes a generic
// HTTP error.
func failedResponseError(providerName string, status int, meta provider.ResponseMetadata) *provider.Error {
	out := &provider.Error{
		Provider:  providerName,
		Status:    status,
		Retryable: retry.RetryableStatus(status),
		Body:      meta.Body,
		Headers:   meta.Headers,
	}

	var env errorEnvelope
	if errorEnvelopeSchema.Validate(meta.Body) == nil && json.Unmarshal(meta.Body, &env) == nil {
		out.Message = env.Error.Message
		out.Verbatim = true
		out.Type = env.Error.Type
		out.Param = env.Error.Param
		out.Code = env.Error.Type
		if env.Error.Code != nil && *env.Error.Code != "" {
			out.Code = *env.Error.Code
		}
		return out
	}

	out.Code = "http_error"
	out.Message = strings.TrimSpace(string(meta.Body))
	if out.Message == "" {
		out.Message = http.StatusText(status)
	}
	return out
}

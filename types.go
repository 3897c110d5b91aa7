package ai

import (
	"net/http"

	"github.com/bitop-dev/ai-mixedbread/internal/provider"
)

type ModelRef interface {
	Provider() string
	Name() string
}

// EmbeddingUsage is nil on responses when the provider reported no usage.
type EmbeddingUsage struct {
	Tokens int
}

// Response is the raw HTTP response of a provider call, passed through for
// diagnostics.
type Response struct {
	Headers http.Header
	Body    []byte
}

type Warning struct {
	Type    string
	Setting string
	Message string
}

func fromProviderResponse(r provider.ResponseMetadata) Response {
	return Response{Headers: r.Headers, Body: r.Body}
}

func fromProviderWarnings(ws []provider.Warning) []Warning {
	if len(ws) == 0 {
		return nil
	}
	out := make([]Warning, len(ws))
	for i, w := range ws {
		out[i] = Warning{Type: w.Type, Setting: w.Setting, Message: w.Message}
	}
	return out
}

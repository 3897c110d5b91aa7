package provider

import "context"

type EmbeddingProvider interface {
	Provider

	Embed(ctx context.Context, req EmbeddingRequest) (EmbeddingResponse, error)
}

// EmbeddingLimits is implemented by embedding providers that bound the size
// of a single call. providerData is the request's ProviderData.
type EmbeddingLimits interface {
	MaxEmbeddingsPerCall(providerData any) int
	SupportsParallelCalls() bool
}

type EmbeddingRequest struct {
	Model string

	Inputs []string

	Headers map[string]string

	// ProviderOptions is the namespaced options bag, e.g.
	// map[string]any{"mixedbread": mixedbread.EmbeddingOptions{...}}.
	ProviderOptions map[string]any

	ProviderData any
}

type EmbeddingResponse struct {
	Vectors [][]float32
	// Usage is nil when the provider did not report token usage.
	Usage *Usage

	Response ResponseMetadata
}

package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/bitop-dev/ai-mixedbread/internal/provider"
)

type EmbedRequest struct {
	Model ModelRef
	Input string

	Headers map[string]string
	// MaxRetries defaults to 2. Set it to 0 to disable retries.
	MaxRetries *int
	Timeout    time.Duration

	ProviderOptions map[string]any
}

type EmbedResponse struct {
	Vector []float32
	Usage  *EmbeddingUsage

	Response Response
}

type EmbedManyRequest struct {
	Model ModelRef
	Input []string

	Headers    map[string]string
	MaxRetries *int
	Timeout    time.Duration
	// MaxParallelCalls bounds concurrent requests when the input is split
	// into several batches. Zero means no bound.
	MaxParallelCalls int

	ProviderOptions map[string]any
}

type EmbedManyResponse struct {
	// Vectors is aligned with the request Input.
	Vectors [][]float32
	Usage   *EmbeddingUsage

	// Responses holds one entry per provider call, in input order.
	Responses []Response
}

func Embed(ctx context.Context, req EmbedRequest) (*EmbedResponse, error) {
	resp, err := EmbedMany(ctx, EmbedManyRequest{
		Model:           req.Model,
		Input:           []string{req.Input},
		Headers:         req.Headers,
		MaxRetries:      req.MaxRetries,
		Timeout:         req.Timeout,
		ProviderOptions: req.ProviderOptions,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Vectors) != 1 {
		return nil, fmt.Errorf("expected 1 embedding, got %d", len(resp.Vectors))
	}
	out := &EmbedResponse{Vector: resp.Vectors[0], Usage: resp.Usage}
	if len(resp.Responses) > 0 {
		out.Response = resp.Responses[0]
	}
	return out, nil
}

// EmbedMany embeds every input. Inputs beyond the model's per-call limit are
// split into batches, sent concurrently when the model allows it.
func EmbedMany(ctx context.Context, req EmbedManyRequest) (*EmbedManyResponse, error) {
	ctx, cancel := applyTimeout(ctx, req.Timeout)
	defer cancel()

	p, err := providerForModel(req.Model)
	if err != nil {
		return nil, err
	}
	ep, ok := p.(provider.EmbeddingProvider)
	if !ok {
		return nil, fmt.Errorf("provider %q does not support embeddings", req.Model.Provider())
	}
	if len(req.Input) == 0 {
		return nil, fmt.Errorf("input is required")
	}

	preq := provider.EmbeddingRequest{
		Model:           req.Model.Name(),
		Inputs:          append([]string(nil), req.Input...),
		Headers:         cloneStringMap(req.Headers),
		ProviderOptions: req.ProviderOptions,
		ProviderData:    providerData(req.Model),
	}

	// Provider limits win over those a model ref advertises.
	maxPerCall := len(req.Input)
	parallel := true
	if l, ok := ep.(provider.EmbeddingLimits); ok {
		if n := l.MaxEmbeddingsPerCall(preq.ProviderData); n > 0 {
			maxPerCall = n
		}
		parallel = l.SupportsParallelCalls()
	} else if l, ok := req.Model.(embeddingLimits); ok {
		if n := l.MaxEmbeddingsPerCall(); n > 0 {
			maxPerCall = n
		}
		parallel = l.SupportsParallelCalls()
	}
	maxParallel := req.MaxParallelCalls
	if !parallel {
		maxParallel = 1
	}

	out, err := embedBatches(ctx, ep, preq, maxPerCall, maxParallel, retryPolicy(req.MaxRetries))
	if err != nil {
		return nil, mapProviderError(err)
	}
	return out, nil
}

package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/bitop-dev/ai-mixedbread/internal/provider"
	"github.com/bitop-dev/ai-mixedbread/internal/retry"
)

// RerankRequest ranks Documents by relevance to Query. Documents of type
// string are sent as text; any other type is sent as a JSON object.
type RerankRequest[T any] struct {
	Model     ModelRef
	Query     string
	Documents []T
	// TopN limits the ranking to the best N documents. Zero leaves the limit
	// to the provider.
	TopN int

	Headers    map[string]string
	MaxRetries *int
	Timeout    time.Duration

	ProviderOptions map[string]any
}

type RankedDocument[T any] struct {
	OriginalIndex int
	Score         float64
	Document      T
}

type RerankResponse[T any] struct {
	OriginalDocuments []T
	// Ranking is in the order the provider returned it, best first.
	Ranking           []RankedDocument[T]
	RerankedDocuments []T

	Warnings []Warning
	// ProviderMetadata is nil for providers that expose their details only
	// through the raw Response body.
	ProviderMetadata map[string]any

	Response Response
}

func Rerank[T any](ctx context.Context, req RerankRequest[T]) (*RerankResponse[T], error) {
	ctx, cancel := applyTimeout(ctx, req.Timeout)
	defer cancel()

	p, err := providerForModel(req.Model)
	if err != nil {
		return nil, err
	}
	rp, ok := p.(provider.RerankingProvider)
	if !ok {
		return nil, fmt.Errorf("provider %q does not support reranking", req.Model.Provider())
	}
	if len(req.Documents) == 0 {
		return &RerankResponse[T]{}, nil
	}

	preq := provider.RerankRequest{
		Model:           req.Model.Name(),
		Query:           req.Query,
		Documents:       toProviderDocuments(req.Documents),
		Headers:         cloneStringMap(req.Headers),
		ProviderOptions: req.ProviderOptions,
		ProviderData:    providerData(req.Model),
	}
	if req.TopN > 0 {
		topN := req.TopN
		preq.TopN = &topN
	}

	resp, err := retry.Do(ctx, retryPolicy(req.MaxRetries), func(ctx context.Context) (provider.RerankResponse, error) {
		return rp.Rerank(ctx, preq)
	})
	if err != nil {
		return nil, mapProviderError(err)
	}

	out := &RerankResponse[T]{
		OriginalDocuments: append([]T(nil), req.Documents...),
		Ranking:           make([]RankedDocument[T], 0, len(resp.Ranking)),
		RerankedDocuments: make([]T, 0, len(resp.Ranking)),
		Warnings:          fromProviderWarnings(resp.Warnings),
		ProviderMetadata:  resp.ProviderMetadata,
		Response:          fromProviderResponse(resp.Response),
	}
	for _, r := range resp.Ranking {
		if r.Index < 0 || r.Index >= len(req.Documents) {
			return nil, fmt.Errorf("rerank result index %d out of range for %d documents", r.Index, len(req.Documents))
		}
		doc := req.Documents[r.Index]
		out.Ranking = append(out.Ranking, RankedDocument[T]{OriginalIndex: r.Index, Score: r.RelevanceScore, Document: doc})
		out.RerankedDocuments = append(out.RerankedDocuments, doc)
	}
	return out, nil
}

func toProviderDocuments[T any](docs []T) provider.Documents {
	if texts, ok := any(docs).([]string); ok {
		return provider.Documents{Type: provider.DocumentsText, Text: append([]string(nil), texts...)}
	}
	objects := make([]any, len(docs))
	for i, d := range docs {
		objects[i] = d
	}
	return provider.Documents{Type: provider.DocumentsObject, Objects: objects}
}

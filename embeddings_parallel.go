package ai

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bitop-dev/ai-mixedbread/internal/provider"
	"github.com/bitop-dev/ai-mixedbread/internal/retry"
)

type batch struct{ start, end int }

// embedBatches sends req.Inputs in batches of at most maxPerCall values, with
// at most maxParallel requests in flight (unbounded when maxParallel <= 0).
// The first failure cancels the remaining batches.
func embedBatches(ctx context.Context, ep provider.EmbeddingProvider, req provider.EmbeddingRequest, maxPerCall, maxParallel int, policy retry.Policy) (*EmbedManyResponse, error) {
	n := len(req.Inputs)
	if n == 0 {
		return nil, fmt.Errorf("input is required")
	}
	batches := splitIntoBatches(n, maxPerCall)

	outVectors := make([][]float32, n)
	results := make([]provider.EmbeddingResponse, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	if maxParallel > 0 {
		g.SetLimit(maxParallel)
	}
	for i, b := range batches {
		g.Go(func() error {
			subReq := req
			subReq.Inputs = append([]string(nil), req.Inputs[b.start:b.end]...)

			resp, err := retry.Do(gctx, policy, func(ctx context.Context) (provider.EmbeddingResponse, error) {
				return ep.Embed(ctx, subReq)
			})
			if err != nil {
				return err
			}
			if len(resp.Vectors) != len(subReq.Inputs) {
				return fmt.Errorf("embedding response count mismatch: got %d want %d", len(resp.Vectors), len(subReq.Inputs))
			}

			// Batches cover disjoint ranges, so no locking is needed.
			copy(outVectors[b.start:b.end], resp.Vectors)
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &EmbedManyResponse{
		Vectors:   outVectors,
		Responses: make([]Response, len(results)),
	}
	for i, r := range results {
		out.Responses[i] = fromProviderResponse(r.Response)
		if r.Usage != nil {
			if out.Usage == nil {
				out.Usage = &EmbeddingUsage{}
			}
			out.Usage.Tokens += r.Usage.Tokens
		}
	}
	return out, nil
}

// splitIntoBatches cuts n items into consecutive batches of size at most
// size.
func splitIntoBatches(n, size int) []batch {
	if size <= 0 || size > n {
		size = n
	}
	out := make([]batch, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		out = append(out, batch{start: start, end: end})
	}
	return out
}

package ai

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/bitop-dev/ai-mixedbread/internal/provider"
)

type testModel struct {
	provider string
	name     string
}

func (m testModel) Provider() string { return m.provider }
func (m testModel) Name() string     { return m.name }

// limitedTestModel bounds embedding batches like a real provider model ref.
type limitedTestModel struct {
	testModel
	maxPerCall int
	parallel   bool
}

func (m limitedTestModel) MaxEmbeddingsPerCall() int   { return m.maxPerCall }
func (m limitedTestModel) SupportsParallelCalls() bool { return m.parallel }

type fakeProvider struct {
	mu sync.Mutex

	embedRequests  []provider.EmbeddingRequest
	rerankRequests []provider.RerankRequest

	embed  func(call int, req provider.EmbeddingRequest) (provider.EmbeddingResponse, error)
	rerank func(call int, req provider.RerankRequest) (provider.RerankResponse, error)
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Embed(ctx context.Context, req provider.EmbeddingRequest) (provider.EmbeddingResponse, error) {
	_ = ctx
	p.mu.Lock()
	p.embedRequests = append(p.embedRequests, req)
	call := len(p.embedRequests) - 1
	fn := p.embed
	p.mu.Unlock()
	if fn == nil {
		return provider.EmbeddingResponse{}, nil
	}
	return fn(call, req)
}

func (p *fakeProvider) Rerank(ctx context.Context, req provider.RerankRequest) (provider.RerankResponse, error) {
	_ = ctx
	p.mu.Lock()
	p.rerankRequests = append(p.rerankRequests, req)
	call := len(p.rerankRequests) - 1
	fn := p.rerank
	p.mu.Unlock()
	if fn == nil {
		return provider.RerankResponse{}, nil
	}
	return fn(call, req)
}

func (p *fakeProvider) EmbedRequests() []provider.EmbeddingRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]provider.EmbeddingRequest(nil), p.embedRequests...)
}

func (p *fakeProvider) RerankRequests() []provider.RerankRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]provider.RerankRequest(nil), p.rerankRequests...)
}

// nameOnlyProvider supports no capability at all.
type nameOnlyProvider struct{}

func (nameOnlyProvider) Name() string { return "name-only" }

func registerFakeProvider(t *testing.T, fp provider.Provider) string {
	t.Helper()
	name := "fake_" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	if err := provider.Register(name, fp); err != nil {
		t.Fatalf("register provider: %v", err)
	}
	return name
}

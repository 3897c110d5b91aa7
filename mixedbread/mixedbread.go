// Package mixedbread binds Mixedbread embedding and reranking models to the
// ai SDK.
//
//	client := mixedbread.NewClient(mixedbread.Config{APIKey: key})
//	resp, err := ai.EmbedMany(ctx, ai.EmbedManyRequest{
//		Model: client.Embedding(mixedbread.EmbedLargeV1),
//		Input: []string{"sunny day at the beach"},
//	})
package mixedbread

import (
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
)

const (
	ProviderName = "mixedbread"

	// APIKeyEnv is read when Config.APIKey is empty.
	APIKeyEnv = "MIXEDBREAD_API_KEY"

	DefaultBaseURL = "https://api.mixedbread.com/v1"

	DefaultMaxEmbeddingsPerCall = 256
)

var ErrLanguageModelUnsupported = errors.New("mixedbread: language models are not supported")

type Config struct {
	// APIKey is sent as a bearer token. Defaults to $MIXEDBREAD_API_KEY,
	// resolved on every request.
	APIKey string
	// BaseURL prefixes every endpoint, e.g. to route through a proxy.
	BaseURL string
	// Headers are added to every request. Request-level headers win.
	Headers    map[string]string
	HTTPClient *http.Client

	// MaxEmbeddingsPerCall bounds a single embeddings request.
	MaxEmbeddingsPerCall int
}

type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	return &Client{cfg: normalizeConfig(cfg)}
}

var defaultClient atomic.Pointer[Client]

func init() {
	defaultClient.Store(NewClient(Config{}))
}

// Configure replaces the client used by the package-level model constructors.
func Configure(cfg Config) {
	defaultClient.Store(NewClient(cfg))
}

func Default() *Client { return defaultClient.Load() }

type ModelKind string

const (
	KindEmbedding ModelKind = "embedding"
	KindReranking ModelKind = "reranking"
)

func Embedding(modelID string) ModelRef {
	return defaultClient.Load().Embedding(modelID)
}

func TextEmbeddingModel(modelID string) ModelRef {
	return defaultClient.Load().TextEmbeddingModel(modelID)
}

func Reranking(modelID string) ModelRef {
	return defaultClient.Load().Reranking(modelID)
}

func (c *Client) Embedding(modelID string) ModelRef {
	return ModelRef{modelID: modelID, kind: KindEmbedding, client: c}
}

// TextEmbedding is an alias for Embedding.
func (c *Client) TextEmbedding(modelID string) ModelRef { return c.Embedding(modelID) }

// TextEmbeddingModel is an alias for Embedding.
func (c *Client) TextEmbeddingModel(modelID string) ModelRef { return c.Embedding(modelID) }

func (c *Client) Reranking(modelID string) ModelRef {
	return ModelRef{modelID: modelID, kind: KindReranking, client: c}
}

// RerankingModel is an alias for Reranking.
func (c *Client) RerankingModel(modelID string) ModelRef { return c.Reranking(modelID) }

// Chat always fails: Mixedbread serves no language models.
func (c *Client) Chat(modelID string) (ModelRef, error) {
	return ModelRef{}, ErrLanguageModelUnsupported
}

// LanguageModel always fails: Mixedbread serves no language models.
func (c *Client) LanguageModel(modelID string) (ModelRef, error) {
	return c.Chat(modelID)
}

type ModelRef struct {
	modelID string
	kind    ModelKind
	client  *Client
}

func (m ModelRef) Provider() string { return ProviderName }
func (m ModelRef) Name() string     { return m.modelID }
func (m ModelRef) Kind() ModelKind  { return m.kind }

func (m ModelRef) Client() *Client { return m.client }

// MaxEmbeddingsPerCall is the largest batch a single embeddings request may
// carry.
func (m ModelRef) MaxEmbeddingsPerCall() int {
	if m.client == nil {
		return DefaultMaxEmbeddingsPerCall
	}
	return m.client.cfg.MaxEmbeddingsPerCall
}

// SupportsParallelCalls reports that batches of one EmbedMany call may be
// sent concurrently.
func (m ModelRef) SupportsParallelCalls() bool { return true }

func (c *Client) Config() Config { return c.cfg }

func normalizeConfig(cfg Config) Config {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.MaxEmbeddingsPerCall <= 0 {
		cfg.MaxEmbeddingsPerCall = DefaultMaxEmbeddingsPerCall
	}
	if len(cfg.Headers) > 0 {
		h := make(map[string]string, len(cfg.Headers))
		for k, v := range cfg.Headers {
			h[k] = v
		}
		cfg.Headers = h
	}
	return cfg
}

package mixedbread

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/bitop-dev/ai-mixedbread/internal/provider"
	"github.com/bitop-dev/ai-mixedbread/internal/schema"
)

type embeddingsRequest struct {
	Input              []string `json:"input"`
	Model              string   `json:"model"`
	Prompt             *string  `json:"prompt,omitempty"`
	Normalize          *bool    `json:"normalize,omitempty"`
	Dimensions         *int     `json:"dimensions,omitempty"`
	EncodingFormat     string   `json:"encoding_format,omitempty"`
	TruncationStrategy string   `json:"truncation_strategy,omitempty"`
}

// The embeddings envelope has shipped in two shapes:
//
//	{"data": [{"embedding": [...]}], "usage": {"total_tokens": n}}
//	{"embeddings": [{"embedding": [...], "index": i}], "usage": {"prompt_tokens": n, "total_tokens": n}}
//
// The presence of "data" selects the first shape. Anything matching neither
// is rejected.
var embeddingsResponseSchema = schema.MustCompile("mixedbread-embeddings-response.json", `{
  "type": "object",
  "anyOf": [
    {"required": ["data"], "properties": {"data": {"type": "array", "items": {"$ref": "#/$defs/item"}}}},
    {"required": ["embeddings"], "properties": {"embeddings": {"type": "array", "items": {"$ref": "#/$defs/item"}}}}
  ],
  "properties": {
    "usage": {
      "anyOf": [
        {"type": "null"},
        {"type": "object", "required": ["total_tokens"], "properties": {"total_tokens": {"type": "number"}}}
      ]
    }
  },
  "$defs": {
    "item": {
      "type": "object",
      "required": ["embedding"],
      "properties": {
        "embedding": {"type": ["array", "string"], "items": {"type": "number"}}
      }
    }
  }
}`)

type embeddingItem struct {
	Embedding json.RawMessage `json:"embedding"`
	Index     *int            `json:"index,omitempty"`
}

type embeddingsUsage struct {
	PromptTokens float64 `json:"prompt_tokens"`
	TotalTokens  float64 `json:"total_tokens"`
}

type dataEnvelope struct {
	Data  []embeddingItem  `json:"data"`
	Usage *embeddingsUsage `json:"usage"`
}

type embeddingsEnvelope struct {
	Embeddings []embeddingItem  `json:"embeddings"`
	Usage      *embeddingsUsage `json:"usage"`
}

// MaxEmbeddingsPerCall reports the batch limit of the client bound to a
// request.
func (p *Provider) MaxEmbeddingsPerCall(providerData any) int {
	return clientConfig(providerData).MaxEmbeddingsPerCall
}

func (p *Provider) SupportsParallelCalls() bool { return true }

func (p *Provider) Embed(ctx context.Context, req provider.EmbeddingRequest) (provider.EmbeddingResponse, error) {
	cfg := clientConfig(req.ProviderData)

	if len(req.Inputs) > cfg.MaxEmbeddingsPerCall {
		return provider.EmbeddingResponse{}, &provider.TooManyValuesError{
			Provider: embeddingProviderName,
			ModelID:  req.Model,
			Limit:    cfg.MaxEmbeddingsPerCall,
			Values:   req.Inputs,
		}
	}

	opts, err := parseEmbeddingOptions(req.ProviderOptions)
	if err != nil {
		return provider.EmbeddingResponse{}, err
	}

	meta, err := postJSON(ctx, cfg, embeddingProviderName, "/embeddings", embeddingsRequest{
		Input:              req.Inputs,
		Model:              req.Model,
		Prompt:             opts.Prompt,
		Normalize:          opts.Normalized,
		Dimensions:         opts.Dimensions,
		EncodingFormat:     string(opts.EncodingFormat),
		TruncationStrategy: string(opts.TruncationStrategy),
	}, req.Headers)
	if err != nil {
		return provider.EmbeddingResponse{}, err
	}

	items, usage, err := decodeEmbeddings(meta.Body)
	if err != nil {
		return provider.EmbeddingResponse{}, invalidResponse(embeddingProviderName, meta, err)
	}
	if len(items) == 0 {
		return provider.EmbeddingResponse{}, invalidResponse(embeddingProviderName, meta, fmt.Errorf("response has no embeddings"))
	}

	vectors := make([][]float32, 0, len(items))
	for _, it := range items {
		vec, err := parseEmbedding(it.Embedding)
		if err != nil {
			return provider.EmbeddingResponse{}, invalidResponse(embeddingProviderName, meta, err)
		}
		vectors = append(vectors, vec)
	}

	out := provider.EmbeddingResponse{
		Vectors:  vectors,
		Response: meta,
	}
	if usage != nil {
		out.Usage = &provider.Usage{Tokens: int(usage.TotalTokens)}
	}
	return out, nil
}

func decodeEmbeddings(raw []byte) ([]embeddingItem, *embeddingsUsage, error) {
	if err := embeddingsResponseSchema.Validate(raw); err != nil {
		return nil, nil, err
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, nil, err
	}
	if _, ok := probe["data"]; ok {
		var env dataEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, nil, err
		}
		return env.Data, env.Usage, nil
	}

	var env embeddingsEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, err
	}
	return env.Embeddings, env.Usage, nil
}

// parseEmbedding accepts a JSON number array or, for encoding_format
// "base64", a base64 string of little-endian float32 values.
func parseEmbedding(raw json.RawMessage) ([]float32, error) {
	var vec []float32
	if err := json.Unmarshal(raw, &vec); err == nil {
		return vec, nil
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, fmt.Errorf("embedding is neither a number array nor a base64 string")
	}
	return decodeFloat32LE(encoded)
}

func decodeFloat32LE(encoded string) ([]float32, error) {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("base64 embedding: %w", err)
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("base64 embedding has %d bytes, not a whole number of float32 values", len(b))
	}
	vec := make([]float32, len(b)/4)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, vec); err != nil {
		return nil, err
	}
	return vec, nil
}

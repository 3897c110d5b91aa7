package mixedbread

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/bitop-dev/ai-mixedbread/internal/provider"
	"github.com/bitop-dev/ai-mixedbread/internal/schema"
)

type rerankingRequest struct {
	Model        string   `json:"model"`
	Query        string   `json:"query"`
	Input        []string `json:"input"`
	RankFields   []string `json:"rank_fields,omitempty"`
	TopK         *int     `json:"top_k,omitempty"`
	ReturnInput  bool     `json:"return_input"`
	RewriteQuery bool     `json:"rewrite_query"`
}

var rerankingResponseSchema = schema.MustCompile("mixedbread-reranking-response.json", `{
  "type": "object",
  "required": ["object", "data", "model", "usage"],
  "properties": {
    "object": {"const": "list"},
    "data": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["index", "score"],
        "properties": {
          "index": {"type": "number"},
          "score": {"type": "number"},
          "input": true,
          "object": {"type": "string"}
        }
      }
    },
    "model": {"type": "string"},
    "usage": {
      "type": "object",
      "required": ["prompt_tokens", "total_tokens", "completion_tokens"],
      "properties": {
        "prompt_tokens": {"type": "number"},
        "total_tokens": {"type": "number"},
        "completion_tokens": {"type": "number"}
      }
    },
    "top_k": {"type": "number"},
    "return_input": {"type": "boolean"}
  }
}`)

type rerankingResponse struct {
	Data []struct {
		Index float64 `json:"index"`
		Score float64 `json:"score"`
	} `json:"data"`
}

// Rerank forwards the ranking in the order the API returns it, which is by
// descending score. It is not re-sorted here.
func (p *Provider) Rerank(ctx context.Context, req provider.RerankRequest) (provider.RerankResponse, error) {
	cfg := clientConfig(req.ProviderData)

	opts, err := parseRerankingOptions(req.ProviderOptions)
	if err != nil {
		return provider.RerankResponse{}, err
	}

	input, err := rerankingInput(req.Documents)
	if err != nil {
		return provider.RerankResponse{}, &provider.Error{Provider: rerankingProviderName, Code: "invalid_request", Message: err.Error(), Cause: err}
	}

	meta, err := postJSON(ctx, cfg, rerankingProviderName, "/reranking", rerankingRequest{
		Model:        req.Model,
		Query:        req.Query,
		Input:        input,
		RankFields:   opts.RankFields,
		TopK:         req.TopN,
		ReturnInput:  opts.ReturnInput,
		RewriteQuery: opts.RewriteQuery,
	}, req.Headers)
	if err != nil {
		return provider.RerankResponse{}, err
	}

	if err := rerankingResponseSchema.Validate(meta.Body); err != nil {
		return provider.RerankResponse{}, invalidResponse(rerankingProviderName, meta, err)
	}
	var out rerankingResponse
	if err := json.Unmarshal(meta.Body, &out); err != nil {
		return provider.RerankResponse{}, invalidResponse(rerankingProviderName, meta, err)
	}

	ranking := make([]provider.RankedDocument, len(out.Data))
	for i, d := range out.Data {
		if d.Index != math.Trunc(d.Index) {
			return provider.RerankResponse{}, invalidResponse(rerankingProviderName, meta, fmt.Errorf("data[%d].index %v is not a whole number", i, d.Index))
		}
		ranking[i] = provider.RankedDocument{Index: int(d.Index), RelevanceScore: d.Score}
	}
	return provider.RerankResponse{
		Ranking:  ranking,
		Response: meta,
	}, nil
}

// rerankingInput flattens documents to the strings the API accepts. Object
// documents are sent as their compact JSON encoding.
func rerankingInput(docs provider.Documents) ([]string, error) {
	switch docs.Type {
	case provider.DocumentsText:
		return append([]string(nil), docs.Text...), nil
	case provider.DocumentsObject:
		out := make([]string, len(docs.Objects))
		for i, v := range docs.Objects {
			s, err := stringify(v)
			if err != nil {
				return nil, fmt.Errorf("document %d: %w", i, err)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown documents type %q", docs.Type)
	}
}

func stringify(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return rawLineTerminators(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// rawLineTerminators undoes the \u2028 and \u2029 escapes encoding/json
// applies even with HTML escaping off. Every backslash in encoder output
// starts an escape, so escaped backslashes are skipped as pairs.
func rawLineTerminators(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			sb.WriteByte(b[i])
			continue
		}
		switch rest := b[i+1:]; {
		case bytes.HasPrefix(rest, []byte("u2028")):
			sb.WriteRune('\u2028')
			i += 5
			continue
		case bytes.HasPrefix(rest, []byte("u2029")):
			sb.WriteRune('\u2029')
			i += 5
			continue
		}
		sb.WriteByte(b[i])
		sb.WriteByte(b[i+1])
		i++
	}
	return sb.String()
}

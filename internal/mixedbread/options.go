package mixedbread

import (
	"github.com/bitop-dev/ai-mixedbread/internal/provider"
	"github.com/bitop-dev/ai-mixedbread/internal/schema"
	publicmixedbread "github.com/bitop-dev/ai-mixedbread/mixedbread"
)

// Option schemas list only the keys this provider reads. Other keys are
// allowed and ignored.
var (
	embeddingOptionsSchema = schema.MustCompile("mixedbread-embedding-options.json", `{
  "type": "object",
  "properties": {
    "prompt": {"type": "string"},
    "normalized": {"type": "boolean"},
    "dimensions": {"type": "integer", "minimum": 1},
    "encodingFormat": {"enum": ["float", "float16", "binary", "ubinary", "int8", "uint8", "base64"]},
    "truncationStrategy": {"enum": ["start", "end", "none"]}
  }
}`)

	rerankingOptionsSchema = schema.MustCompile("mixedbread-reranking-options.json", `{
  "type": "object",
  "properties": {
    "returnInput": {"type": "boolean"},
    "rewriteQuery": {"type": "boolean"},
    "rankFields": {"type": "array", "items": {"type": "string"}}
  }
}`)
)

func parseEmbeddingOptions(opts map[string]any) (publicmixedbread.EmbeddingOptions, error) {
	var out publicmixedbread.EmbeddingOptions
	if _, err := provider.ParseOptions(publicmixedbread.ProviderName, opts, embeddingOptionsSchema, &out); err != nil {
		return publicmixedbread.EmbeddingOptions{}, err
	}
	return out, nil
}

func parseRerankingOptions(opts map[string]any) (publicmixedbread.RerankingOptions, error) {
	var out publicmixedbread.RerankingOptions
	if _, err := provider.ParseOptions(publicmixedbread.ProviderName, opts, rerankingOptionsSchema, &out); err != nil {
		return publicmixedbread.RerankingOptions{}, err
	}
	return out, nil
}

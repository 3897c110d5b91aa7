package mixedbread

// RerankingOptions provides Mixedbread-specific options for reranking.
// Use via ai.Rerank ProviderOptions: map[string]any{"mixedbread": mixedbread.RerankingOptions{...}}.
type RerankingOptions struct {
	// ReturnInput makes the API echo each ranked document. Defaults to false.
	ReturnInput bool `json:"returnInput,omitempty"`
	// RewriteQuery lets the API rewrite the query before ranking. Defaults to false.
	RewriteQuery bool `json:"rewriteQuery,omitempty"`
	// RankFields restricts ranking to these fields of object documents.
	RankFields []string `json:"rankFields,omitempty"`
}

package provider

import "context"

type RerankingProvider interface {
	Provider

	Rerank(ctx context.Context, req RerankRequest) (RerankResponse, error)
}

type DocumentsType string

const (
	DocumentsText   DocumentsType = "text"
	DocumentsObject DocumentsType = "object"
)

// Documents is the set of candidates to rank. Exactly one of Text or Objects
// is populated, selected by Type.
type Documents struct {
	Type    DocumentsType
	Text    []string
	Objects []any
}

type RerankRequest struct {
	Model string

	Query     string
	Documents Documents
	// TopN is nil when the caller did not limit the result count.
	TopN *int

	Headers map[string]string

	ProviderOptions map[string]any
	ProviderData    any
}

type RankedDocument struct {
	Index          int
	RelevanceScore float64
}

type RerankResponse struct {
	Ranking []RankedDocument

	Warnings         []Warning
	ProviderMetadata map[string]any

	Response ResponseMetadata
}

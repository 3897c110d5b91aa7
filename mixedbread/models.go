package mixedbread

// Embedding model IDs. Any other ID accepted by the API works as well.
const (
	EmbedLargeV1          = "mixedbread-ai/mxbai-embed-large-v1"
	Embed2DLargeV1        = "mixedbread-ai/mxbai-embed-2d-large-v1"
	DeepsetEmbedDELargeV1 = "mixedbread-ai/deepset-mxbai-embed-de-large-v1"
)

// Reranking model IDs.
const (
	RerankLargeV2  = "mixedbread-ai/mxbai-rerank-large-v2"
	RerankBaseV2   = "mixedbread-ai/mxbai-rerank-base-v2"
	RerankLargeV1  = "mixedbread-ai/mxbai-rerank-large-v1"
	RerankBaseV1   = "mixedbread-ai/mxbai-rerank-base-v1"
	RerankXSmallV1 = "mixedbread-ai/mxbai-rerank-xsmall-v1"
)

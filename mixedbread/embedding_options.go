package mixedbread

// EmbeddingOptions provides Mixedbread-specific options for the embeddings endpoint.
// Use it via ai.Embed/ai.EmbedMany ProviderOptions: map[string]any{"mixedbread": mixedbread.EmbeddingOptions{...}}.
// A plain map[string]any with the same JSON keys works too.
type EmbeddingOptions struct {
	// Prompt gives the model context about the inputs (1-256 characters).
	Prompt *string `json:"prompt,omitempty"`
	// Normalized asks for unit-length vectors.
	Normalized *bool `json:"normalized,omitempty"`
	// Dimensions truncates Matryoshka-capable models to a shorter vector.
	Dimensions *int `json:"dimensions,omitempty"`
	// EncodingFormat defaults to "float" on the API side.
	EncodingFormat EncodingFormat `json:"encodingFormat,omitempty"`
	// TruncationStrategy controls over-long inputs; "none" makes them an error.
	TruncationStrategy TruncationStrategy `json:"truncationStrategy,omitempty"`
}

type EncodingFormat string

const (
	EncodingFloat   EncodingFormat = "float"
	EncodingFloat16 EncodingFormat = "float16"
	EncodingBinary  EncodingFormat = "binary"
	EncodingUBinary EncodingFormat = "ubinary"
	EncodingInt8    EncodingFormat = "int8"
	EncodingUInt8   EncodingFormat = "uint8"
	EncodingBase64  EncodingFormat = "base64"
)

type TruncationStrategy string

const (
	TruncateStart TruncationStrategy = "start"
	TruncateEnd   TruncationStrategy = "end"
	TruncateNone  TruncationStrategy = "none"
)

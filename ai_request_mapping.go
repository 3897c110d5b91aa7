package ai

import (
	"github.com/bitop-dev/ai-mixedbread/internal/retry"
	"github.com/bitop-dev/ai-mixedbread/mixedbread"
)

type mixedbreadClientModel interface {
	Client() *mixedbread.Client
}

// providerData extracts provider-specific wiring carried by the model ref,
// e.g. the client a Mixedbread model was created from.
func providerData(m ModelRef) any {
	v, ok := m.(mixedbreadClientModel)
	if !ok || v.Client() == nil {
		return nil
	}
	return v.Client()
}

// embeddingLimits is implemented by model refs that bound embedding batches.
type embeddingLimits interface {
	MaxEmbeddingsPerCall() int
	SupportsParallelCalls() bool
}

func retryPolicy(maxRetries *int) retry.Policy {
	p := retry.Policy{MaxRetries: retry.DefaultMaxRetries}
	if maxRetries != nil {
		p.MaxRetries = *maxRetries
	}
	return p
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

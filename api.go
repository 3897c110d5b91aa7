package ai

import (
	"fmt"

	"github.com/bitop-dev/ai-mixedbread/internal/mixedbread"
	"github.com/bitop-dev/ai-mixedbread/internal/provider"
	publicmixedbread "github.com/bitop-dev/ai-mixedbread/mixedbread"
)

func init() {
	if err := provider.Register(publicmixedbread.ProviderName, &mixedbread.Provider{}); err != nil {
		panic(err)
	}
}

func providerForModel(m ModelRef) (provider.Provider, error) {
	if m == nil {
		return nil, fmt.Errorf("model is required")
	}
	name := m.Provider()
	if name == "" {
		return nil, fmt.Errorf("model provider is required")
	}
	p, ok := provider.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown provider %q", name)
	}
	return p, nil
}

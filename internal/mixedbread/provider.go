package mixedbread

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bitop-dev/ai-mixedbread/internal/httpx"
	"github.com/bitop-dev/ai-mixedbread/internal/provider"
	publicmixedbread "github.com/bitop-dev/ai-mixedbread/mixedbread"
)

const (
	embeddingProviderName = publicmixedbread.ProviderName + ".embedding"
	rerankingProviderName = publicmixedbread.ProviderName + ".reranking"
)

// Provider serves embeddings and reranking from the Mixedbread API. It holds
// no state: all configuration travels with each request as ProviderData.
type Provider struct{}

func (p *Provider) Name() string { return publicmixedbread.ProviderName }

var (
	_ provider.EmbeddingProvider = (*Provider)(nil)
	_ provider.EmbeddingLimits   = (*Provider)(nil)
	_ provider.RerankingProvider = (*Provider)(nil)
)

func clientConfig(providerData any) publicmixedbread.Config {
	if c, ok := providerData.(*publicmixedbread.Client); ok && c != nil {
		return c.Config()
	}
	return publicmixedbread.Default().Config()
}

func endpointURL(cfg publicmixedbread.Config, path string) (string, error) {
	u, err := url.Parse(cfg.BaseURL + path)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// requestHeaders resolves the API key and layers provider headers and then
// request headers on top of the Authorization header.
func requestHeaders(cfg publicmixedbread.Config, reqHeaders map[string]string) (http.Header, error) {
	key, err := provider.LoadAPIKey(cfg.APIKey, publicmixedbread.APIKeyEnv, "Mixedbread")
	if err != nil {
		return nil, err
	}
	return httpx.CombineHeaders(
		map[string]string{"Authorization": "Bearer " + key},
		cfg.Headers,
		reqHeaders,
	), nil
}

// postJSON issues one request and returns the raw successful body. Transport
// failures are returned unchanged; non-2xx responses go through the error
// mapper.
func postJSON(ctx context.Context, cfg publicmixedbread.Config, providerName, path string, payload any, reqHeaders map[string]string) (provider.ResponseMetadata, error) {
	h, err := requestHeaders(cfg, reqHeaders)
	if err != nil {
		return provider.ResponseMetadata{}, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return provider.ResponseMetadata{}, &provider.Error{Provider: providerName, Code: "marshal_error", Message: err.Error(), Cause: err}
	}
	u, err := endpointURL(cfg, path)
	if err != nil {
		return provider.ResponseMetadata{}, &provider.Error{Provider: providerName, Code: "url_error", Message: err.Error(), Cause: err}
	}

	resp, err := httpx.PostJSON(ctx, cfg.HTTPClient, u, body, h)
	if err != nil {
		return provider.ResponseMetadata{}, err
	}
	defer resp.Body.Close()

	raw, err := httpx.ReadBody(resp)
	if err != nil {
		return provider.ResponseMetadata{}, err
	}
	meta := provider.ResponseMetadata{Headers: resp.Header.Clone(), Body: raw}
	if !httpx.IsSuccess(resp.StatusCode) {
		return meta, failedResponseError(providerName, resp.StatusCode, meta)
	}
	return meta, nil
}

func invalidResponse(providerName string, meta provider.ResponseMetadata, err error) error {
	return &provider.Error{
		Provider: providerName,
		Code:     "invalid_response",
		Message:  fmt.Sprintf("invalid response body: %v", err),
		Body:     meta.Body,
		Headers:  meta.Headers,
		Cause:    err,
	}
}

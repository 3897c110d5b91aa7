package httpx

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// MaxErrorBody caps how much of a failed response body is read.
const MaxErrorBody = 1 << 20

// PostJSON sends a single JSON POST. It never retries; callers must close the
// returned response body.
func PostJSON(ctx context.Context, client *http.Client, url string, body []byte, headers http.Header) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header = headers.Clone()
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	return client.Do(req)
}

// ReadBody drains resp.Body. Bodies of failed responses are capped at
// MaxErrorBody.
func ReadBody(resp *http.Response) ([]byte, error) {
	if IsSuccess(resp.StatusCode) {
		return io.ReadAll(resp.Body)
	}
	return io.ReadAll(io.LimitReader(resp.Body, MaxErrorBody))
}

func IsSuccess(status int) bool {
	return status >= 200 && status <= 299
}

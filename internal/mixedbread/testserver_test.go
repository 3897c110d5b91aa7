package mixedbread

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	publicmixedbread "github.com/bitop-dev/ai-mixedbread/mixedbread"
)

type recordedCall struct {
	Path    string
	Headers http.Header
	Body    map[string]any
}

// testServer records every request and answers with a canned response.
type testServer struct {
	t   *testing.T
	srv *httptest.Server

	mu     sync.Mutex
	calls  []recordedCall
	status int
	header http.Header
	body   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{t: t, status: http.StatusOK, header: make(http.Header)}
	ts.srv = httptest.NewServer(http.HandlerFunc(ts.handle))
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *testServer) handle(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		ts.t.Errorf("read request body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		ts.t.Errorf("request body is not a JSON object: %v (%s)", err, raw)
	}

	ts.mu.Lock()
	ts.calls = append(ts.calls, recordedCall{Path: r.URL.Path, Headers: r.Header.Clone(), Body: body})
	status, header, respBody := ts.status, ts.header.Clone(), ts.body
	ts.mu.Unlock()

	for k, vs := range header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, respBody)
}

func (ts *testServer) respond(status int, body string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.status = status
	ts.body = body
}

func (ts *testServer) Calls() []recordedCall {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]recordedCall(nil), ts.calls...)
}

func (ts *testServer) client(cfg publicmixedbread.Config) *publicmixedbread.Client {
	cfg.BaseURL = ts.srv.URL + "/v1"
	if cfg.APIKey == "" {
		cfg.APIKey = "test-api-key"
	}
	return publicmixedbread.NewClient(cfg)
}

func (ts *testServer) onlyCall() recordedCall {
	ts.t.Helper()
	calls := ts.Calls()
	if len(calls) != 1 {
		ts.t.Fatalf("calls=%d, want 1", len(calls))
	}
	return calls[0]
}

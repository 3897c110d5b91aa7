package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type apiStub struct {
	srv     *httptest.Server
	paths   []string
	headers []http.Header
	bodies  []map[string]any
	reply   string
}

func newAPIStub(t *testing.T, reply string) *apiStub {
	t.Helper()
	s := &apiStub{reply: reply}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		s.paths = append(s.paths, r.URL.Path)
		s.headers = append(s.headers, r.Header.Clone())
		s.bodies = append(s.bodies, body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, s.reply)
	}))
	t.Cleanup(s.srv.Close)
	return s
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEmbedCommand(t *testing.T) {
	stub := newAPIStub(t, `{"data":[{"embedding":[0.1,0.2,0.3],"index":0},{"embedding":[0.4,0.5,0.6],"index":1}],"usage":{"prompt_tokens":6,"total_tokens":6}}`)

	out, err := run(t, "embed", "--base-url", stub.srv.URL, "--api-key", "k", "--dimensions", "3", "sunny day", "rainy day")
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"/embeddings"}, stub.paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	body := stub.bodies[0]
	if body["dimensions"] != float64(3) {
		t.Fatalf("dimensions=%v", body["dimensions"])
	}
	if _, ok := body["normalize"]; ok {
		t.Fatalf("normalized sent without the flag: %v", body)
	}
	if got := stub.headers[0].Get("Authorization"); got != "Bearer k" {
		t.Fatalf("authorization=%q", got)
	}
	if !strings.Contains(out, "rainy day") || !strings.Contains(out, "tokens: 6") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestEmbedCommand_JSON(t *testing.T) {
	stub := newAPIStub(t, `{"data":[{"embedding":[1,2],"index":0}]}`)

	out, err := run(t, "embed", "--base-url", stub.srv.URL, "--api-key", "k", "--json", "hello")
	if err != nil {
		t.Fatal(err)
	}
	var got embedOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if diff := cmp.Diff([][]float32{{1, 2}}, got.Vectors); diff != "" {
		t.Fatalf("vectors mismatch (-want +got):\n%s", diff)
	}
	if got.Usage != nil {
		t.Fatalf("usage=%#v, want none", got.Usage)
	}
}

func TestRerankCommand(t *testing.T) {
	stub := newAPIStub(t, `{"model":"m","object":"list","data":[{"index":1,"score":0.9,"object":"rank_result"},{"index":0,"score":0.1,"object":"rank_result"}],"usage":{"prompt_tokens":1,"total_tokens":1,"completion_tokens":0},"top_k":2,"return_input":false}`)

	out, err := run(t, "rerank", "--base-url", stub.srv.URL, "--api-key", "k", "-q", "snow", "-n", "2", "sunny", "snowy")
	if err != nil {
		t.Fatal(err)
	}
	body := stub.bodies[0]
	if body["query"] != "snow" || body["top_k"] != float64(2) {
		t.Fatalf("body=%v", body)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("output:\n%s", out)
	}
	if !strings.Contains(lines[1], "snowy") || !strings.Contains(lines[1], "0.9000") {
		t.Fatalf("first row=%q", lines[1])
	}
}

func TestRerankCommand_Objects(t *testing.T) {
	stub := newAPIStub(t, `{"model":"m","object":"list","data":[{"index":0,"score":0.5}],"usage":{"prompt_tokens":1,"total_tokens":1,"completion_tokens":0}}`)

	_, err := run(t, "rerank", "--base-url", stub.srv.URL, "--api-key", "k", "-q", "q", "--objects", "--rank-field", "title", `{"title":"a <b>"}`)
	if err != nil {
		t.Fatal(err)
	}
	body := stub.bodies[0]
	if diff := cmp.Diff([]any{`{"title":"a <b>"}`}, body["input"]); diff != "" {
		t.Fatalf("input mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"title"}, body["rank_fields"]); diff != "" {
		t.Fatalf("rank_fields mismatch (-want +got):\n%s", diff)
	}
}

func TestRerankCommand_RequiresQuery(t *testing.T) {
	if _, err := run(t, "rerank", "--api-key", "k", "doc"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRerankCommand_InvalidObject(t *testing.T) {
	if _, err := run(t, "rerank", "--api-key", "k", "-q", "q", "--objects", "not json"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestConfigFile(t *testing.T) {
	stub := newAPIStub(t, `{"data":[{"embedding":[1],"index":0}]}`)

	path := filepath.Join(t.TempDir(), "mxbai.yaml")
	cfg := "api_key: from-file\nbase_url: " + stub.srv.URL + "\nheaders:\n  X-Team: search\n"
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "embed", "--config", path, "hello"); err != nil {
		t.Fatal(err)
	}
	h := stub.headers[0]
	if h.Get("Authorization") != "Bearer from-file" || h.Get("X-Team") != "search" {
		t.Fatalf("headers=%v", h)
	}

	if _, err := run(t, "embed", "--config", path, "--api-key", "from-flag", "hello"); err != nil {
		t.Fatal(err)
	}
	if got := stub.headers[1].Get("Authorization"); got != "Bearer from-flag" {
		t.Fatalf("authorization=%q", got)
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	if _, err := loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("max_embeddings_per_call: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfigFile(path); err == nil {
		t.Fatalf("expected error for negative limit")
	}
}

func TestSimilarityCommand(t *testing.T) {
	stub := newAPIStub(t, `{"data":[{"embedding":[1,0],"index":0},{"embedding":[1,0],"index":1}]}`)

	out, err := run(t, "similarity", "--base-url", stub.srv.URL, "--api-key", "k", "a", "b")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "1.0000" {
		t.Fatalf("output=%q", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := truncate("abcdefghij", 6); got != "abc..." {
		t.Fatalf("got %q", got)
	}
}

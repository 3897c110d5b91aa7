package provider

import "net/http"

// Usage reports token consumption for a single provider call.
type Usage struct {
	Tokens int
}

// ResponseMetadata carries the raw HTTP response for caller diagnostics.
// Neither field is interpreted by the SDK.
type ResponseMetadata struct {
	Headers http.Header
	Body    []byte
}

type Warning struct {
	Type    string
	Setting string
	Message string
}

package model

import "net/url"

// ProviderRequest describes one GET request against an upstream rate source.
// It is built per call and consumed once by the transport.
type ProviderRequest struct {
	URL   string
	Query url.Values
}

// ProviderResponse is the minimal transport result the core consumes.
type ProviderResponse struct {
	StatusCode int
	Body       []byte
}

package api

import "net/url"

// Header is a single HTTP request header.
type Header struct {
	Key   string
	Value string
}

// Descriptor fully describes one API request without performing it: method,
// target path under /api, query, headers, JSON body, and the decoder applied
// to a successful response body. Descriptors are pure data and are safe to
// construct speculatively and discard.
type Descriptor struct {
	Method  string
	Path    string
	Query   url.Values
	Headers []Header
	Body    any
	// Decode turns a 2xx response body into the descriptor's result value.
	// A nil Decode means the response body is ignored.
	Decode func([]byte) (any, error)
}

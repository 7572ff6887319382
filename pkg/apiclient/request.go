package apiclient

import (
	"bytes"
	"net/http"
)

// Request is an outbound API request. Pipeline stages treat it as an
// immutable value and return modified copies.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// NewRequest creates a request with an empty header set.
func NewRequest(method, rawURL string, body []byte) Request {
	return Request{
		Method: method,
		URL:    rawURL,
		Header: make(http.Header),
		Body:   body,
	}
}

// Clone returns a deep copy of r.
func (r Request) Clone() Request {
	c := r
	c.Header = r.Header.Clone()
	if c.Header == nil {
		c.Header = make(http.Header)
	}
	if r.Body != nil {
		c.Body = bytes.Clone(r.Body)
	}
	return c
}

// HeaderValue returns the value of key, matching the key case-insensitively.
func (r Request) HeaderValue(key string) (string, bool) {
	return headerValue(r.Header, key)
}

// WithHeader returns a copy of r with key set to value, replacing any
// previous value of key.
func (r Request) WithHeader(key, value string) Request {
	c := r.Clone()
	setHeader(c.Header, key, value)
	return c
}

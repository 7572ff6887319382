package apiclient

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/orgclient/pkg/correlation"
)

// Header names stamped by the pipeline.
const (
	HeaderCorrelationID = correlation.Header
	HeaderAuthorization = "Authorization"
	HeaderOrgID         = "X-ORG-ID"
)

// headerValue looks key up case-insensitively, including keys that were
// written into the map without canonicalization.
func headerValue(h http.Header, key string) (string, bool) {
	if v := h.Values(key); len(v) > 0 {
		return v[0], true
	}
	for k, v := range h {
		if strings.EqualFold(k, key) && len(v) > 0 {
			return v[0], true
		}
	}
	return "", false
}

func hasHeader(h http.Header, key string) bool {
	_, ok := headerValue(h, key)
	return ok
}

// setHeader replaces every case variant of key with a single value.
func setHeader(h http.Header, key, value string) {
	for k := range h {
		if strings.EqualFold(k, key) {
			delete(h, k)
		}
	}
	h.Set(key, value)
}

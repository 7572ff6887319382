package urlclass

import (
	"net/url"
	"strings"
)

// Classification is the audience of a request URL.
type Classification int

const (
	// Other is any URL outside the backend API (assets, third-party hosts, malformed URLs).
	Other Classification = iota
	// Public is a backend endpoint that must not carry credentials or tenant scope.
	Public
	// PrivateAPI is a backend endpoint that requires authentication and tenant scope.
	PrivateAPI
)

const (
	apiPrefix       = "/api/"
	apiPublicPrefix = "/api/public/"
	publicPrefix    = "/public/"
)

// base is the fixed origin relative URLs are resolved against.
var base = &url.URL{Scheme: "http", Host: "localhost", Path: "/"}

// String returns a lowercase label suitable for logs and metric labels.
func (c Classification) String() string {
	switch c {
	case Public:
		return "public"
	case PrivateAPI:
		return "private_api"
	default:
		return "other"
	}
}

// Classify resolves rawURL against a fixed base and classifies its path.
func Classify(rawURL string) Classification {
	path, ok := Path(rawURL)
	if !ok {
		return Other
	}

	switch {
	case strings.HasPrefix(path, apiPublicPrefix), strings.HasPrefix(path, publicPrefix):
		return Public
	case strings.HasPrefix(path, apiPrefix):
		return PrivateAPI
	default:
		return Other
	}
}

// Path returns the absolute, dot-segment-resolved path of rawURL.
// The boolean is false when rawURL cannot be parsed.
func Path(rawURL string) (string, bool) {
	ref, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(ref)
	path := resolved.EscapedPath()
	if path == "" {
		path = "/"
	}
	return path, true
}

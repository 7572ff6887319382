// Package urlclass classifies outbound request URLs into the three audiences
// the API client cares about: public endpoints, private (authenticated,
// tenant-scoped) API endpoints, and everything else.
//
// Both relative ("/api/catalog/products", "api/catalog") and absolute
// ("https://shop.example.com/api/catalog") URLs are resolved against a fixed
// base before the path is inspected, so the same path always yields the same
// classification no matter how the caller spelled the URL.
//
// # Rules
//
// Rules are checked in order:
//
//   - path starts with "/api/public/" or "/public/" → Public
//   - path starts with "/api/" → PrivateAPI
//   - anything else, including URLs that fail to parse → Other
//
// # Usage
//
//	switch urlclass.Classify(req.URL) {
//	case urlclass.PrivateAPI:
//		// attach credentials and tenant scope
//	case urlclass.Public, urlclass.Other:
//		// send as is
//	}
//
// Classify has no side effects and keeps no state; the result is never cached.
package urlclass

// Package token provides the bearer credentials the API client attaches to
// private API requests.
//
// The identity provider is modeled as a Source: a synchronous, cached Token
// accessor and an awaitable Refresh. The request pipeline only ever calls
// Token, so stamping a request never blocks on a network round trip. Callers
// that need a token guaranteed to stay valid for a while (for example before
// a long upload) call EnsureFresh first and abort their own call when it
// fails:
//
//	tok, err := token.EnsureFresh(ctx, src, 30*time.Second)
//	if err != nil {
//		return err // token.ErrRefreshFailed or token.ErrNoToken
//	}
//
// # Sources
//
//   - Static returns a fixed token; an empty Static is an anonymous session.
//   - OAuth2Source wraps any golang.org/x/oauth2 TokenSource. It caches the
//     last token, refreshes only when the token expires within the requested
//     validity window (using the oauth2 expiry or, when absent, the JWT "exp"
//     claim), and coalesces concurrent refreshes into a single fetch.
//
// NewSource builds the right Source from Config.
//
// Refresh makes a single attempt. Retrying is left to the caller.
package token

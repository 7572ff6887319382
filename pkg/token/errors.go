package token

import "errors"

var (
	// ErrRefreshFailed is returned when the identity provider could not issue a token.
	ErrRefreshFailed = errors.New("token refresh failed")

	// ErrNoToken is returned when a fresh token was required but none is available.
	ErrNoToken = errors.New("no token available")

	// ErrInvalidConfig is returned when the oauth2 configuration is incomplete.
	ErrInvalidConfig = errors.New("invalid token source configuration")
)

package token

import (
	"context"
	"errors"
	"time"
)

// Source is the identity provider as seen by the API client.
type Source interface {
	// Token returns the cached access token, or "" when none is available.
	// It must not block.
	Token() string

	// Refresh makes sure the cached token stays valid for at least
	// minValidity, fetching a new one when needed. It reports whether a
	// token is available afterwards.
	Refresh(ctx context.Context, minValidity time.Duration) (bool, error)
}

// LoginOptions are passed to Session.Login.
type LoginOptions struct {
	RedirectURI string
}

// LogoutOptions are passed to Session.Logout.
type LogoutOptions struct {
	RedirectURI string
}

// Session is implemented by sources that manage an interactive session.
type Session interface {
	Login(ctx context.Context, opts LoginOptions) error
	Logout(ctx context.Context, opts LogoutOptions) error
}

// Static is a Source returning a fixed token.
type Static string

func (s Static) Token() string { return string(s) }

func (s Static) Refresh(context.Context, time.Duration) (bool, error) {
	return s != "", nil
}

// EnsureFresh awaits a single refresh of src and returns a token valid for at
// least minValidity. It never retries.
func EnsureFresh(ctx context.Context, src Source, minValidity time.Duration) (string, error) {
	if src == nil {
		return "", ErrNoToken
	}
	ok, err := src.Refresh(ctx, minValidity)
	if err != nil {
		if errors.Is(err, ErrRefreshFailed) {
			return "", err
		}
		return "", errors.Join(ErrRefreshFailed, err)
	}
	if !ok {
		return "", ErrNoToken
	}
	tok := src.Token()
	if tok == "" {
		return "", ErrNoToken
	}
	return tok, nil
}

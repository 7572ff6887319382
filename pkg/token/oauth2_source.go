package token

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// OAuth2Source adapts an oauth2.TokenSource to Source.
//
// The wrapped source should fetch a new token on every call (see
// NewClientCredentials); caching and expiry decisions are made here.
type OAuth2Source struct {
	src   oauth2.TokenSource
	group singleflight.Group

	mu      sync.RWMutex
	current *oauth2.Token
}

// NewOAuth2Source creates a Source fetching tokens from src.
func NewOAuth2Source(src oauth2.TokenSource) *OAuth2Source {
	return &OAuth2Source{src: src}
}

// Token returns the cached access token without checking its expiry.
func (s *OAuth2Source) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return ""
	}
	return s.current.AccessToken
}

// Refresh fetches a new token when the cached one is missing or expires
// within minValidity. Concurrent calls with the same minValidity share one
// fetch.
func (s *OAuth2Source) Refresh(ctx context.Context, minValidity time.Duration) (bool, error) {
	if s.fresh(minValidity) {
		return true, nil
	}

	// Callers only share a fetch whose freshness check used their own window.
	ch := s.group.DoChan("refresh:"+minValidity.String(), func() (any, error) {
		// A concurrent refresh may have finished while this one was queued.
		if s.fresh(minValidity) {
			return s.Token(), nil
		}
		tok, err := s.src.Token()
		if err != nil {
			return "", errors.Join(ErrRefreshFailed, err)
		}
		s.mu.Lock()
		s.current = tok
		s.mu.Unlock()
		return tok.AccessToken, nil
	})

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return false, res.Err
		}
		return res.Val.(string) != "", nil
	}
}

// Login fetches the first token of the session.
func (s *OAuth2Source) Login(ctx context.Context, _ LoginOptions) error {
	ok, err := s.Refresh(ctx, 0)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoToken
	}
	return nil
}

// Logout drops the cached token.
func (s *OAuth2Source) Logout(context.Context, LogoutOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	return nil
}

func (s *OAuth2Source) fresh(minValidity time.Duration) bool {
	s.mu.RLock()
	tok := s.current
	s.mu.RUnlock()

	if tok == nil || tok.AccessToken == "" {
		return false
	}
	now := time.Now()
	if !tok.Expiry.IsZero() {
		return tok.Expiry.After(now.Add(minValidity))
	}
	return !expiresWithin(tok.AccessToken, minValidity, now)
}

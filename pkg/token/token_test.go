package token_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/orgclient/pkg/token"
)

// fakeProvider is an oauth2.TokenSource issuing numbered tokens.
type fakeProvider struct {
	calls   atomic.Int32
	ttl     time.Duration
	err     error
	release chan struct{}
}

func (p *fakeProvider) Token() (*oauth2.Token, error) {
	n := p.calls.Add(1)
	if p.release != nil {
		<-p.release
	}
	if p.err != nil {
		return nil, p.err
	}
	return &oauth2.Token{
		AccessToken: "tok" + string(rune('0'+n)),
		Expiry:      time.Now().Add(p.ttl),
	}, nil
}

type tokenFunc func() (*oauth2.Token, error)

func (f tokenFunc) Token() (*oauth2.Token, error) { return f() }

func signedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestStatic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	src := token.Static("tok123")
	assert.Equal(t, "tok123", src.Token())
	ok, err := src.Refresh(ctx, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	anon := token.Static("")
	assert.Empty(t, anon.Token())
	ok, err = anon.Refresh(ctx, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExpiresWithin(t *testing.T) {
	t.Parallel()

	assert.True(t, token.ExpiresWithin(signedJWT(t, time.Now().Add(10*time.Second)), 30*time.Second))
	assert.False(t, token.ExpiresWithin(signedJWT(t, time.Now().Add(time.Hour)), 30*time.Second))
	assert.True(t, token.ExpiresWithin(signedJWT(t, time.Now().Add(-time.Minute)), 0))
	assert.False(t, token.ExpiresWithin("opaque-token", time.Hour))
	assert.False(t, token.ExpiresWithin("", time.Hour))
}

func TestOAuth2Source(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty before first refresh", func(t *testing.T) {
		t.Parallel()
		src := token.NewOAuth2Source(&fakeProvider{ttl: time.Hour})
		assert.Empty(t, src.Token())
	})

	t.Run("refresh fetches once while token is fresh", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{ttl: time.Hour}
		src := token.NewOAuth2Source(provider)

		ok, err := src.Refresh(ctx, 30*time.Second)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "tok1", src.Token())

		ok, err = src.Refresh(ctx, 30*time.Second)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int32(1), provider.calls.Load())
	})

	t.Run("refresh fetches when token expires within window", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{ttl: 10 * time.Second}
		src := token.NewOAuth2Source(provider)

		_, err := src.Refresh(ctx, 0)
		require.NoError(t, err)
		_, err = src.Refresh(ctx, time.Minute)
		require.NoError(t, err)

		assert.Equal(t, int32(2), provider.calls.Load())
		assert.Equal(t, "tok2", src.Token())
	})

	t.Run("jwt exp is used when expiry is missing", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		expiring := signedJWT(t, time.Now().Add(5*time.Second))
		src := token.NewOAuth2Source(tokenFunc(func() (*oauth2.Token, error) {
			calls.Add(1)
			return &oauth2.Token{AccessToken: expiring}, nil
		}))

		_, err := src.Refresh(ctx, 0)
		require.NoError(t, err)
		_, err = src.Refresh(ctx, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("provider failure", func(t *testing.T) {
		t.Parallel()
		providerErr := errors.New("invalid_client")
		src := token.NewOAuth2Source(&fakeProvider{err: providerErr})

		ok, err := src.Refresh(ctx, time.Minute)
		assert.False(t, ok)
		assert.ErrorIs(t, err, token.ErrRefreshFailed)
		assert.ErrorIs(t, err, providerErr)
		assert.Empty(t, src.Token())
	})

	t.Run("concurrent refreshes share one fetch", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{ttl: time.Hour, release: make(chan struct{})}
		src := token.NewOAuth2Source(provider)

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := src.Refresh(ctx, time.Minute)
				assert.NoError(t, err)
				assert.True(t, ok)
			}()
		}
		time.Sleep(50 * time.Millisecond)
		close(provider.release)
		wg.Wait()

		assert.Equal(t, int32(1), provider.calls.Load())
		assert.Equal(t, "tok1", src.Token())
	})

	t.Run("longer window does not join a shorter window fetch", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{ttl: time.Hour, release: make(chan struct{})}
		src := token.NewOAuth2Source(provider)

		var wg sync.WaitGroup
		for _, window := range []time.Duration{0, 30 * time.Minute} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := src.Refresh(ctx, window)
				assert.NoError(t, err)
			}()
		}

		require.Eventually(t, func() bool { return provider.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
		close(provider.release)
		wg.Wait()
	})

	t.Run("context cancellation stops waiting", func(t *testing.T) {
		t.Parallel()
		provider := &fakeProvider{ttl: time.Hour, release: make(chan struct{})}
		src := token.NewOAuth2Source(provider)
		t.Cleanup(func() { close(provider.release) })

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		ok, err := src.Refresh(cctx, time.Minute)
		assert.False(t, ok)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("login and logout", func(t *testing.T) {
		t.Parallel()
		src := token.NewOAuth2Source(&fakeProvider{ttl: time.Hour})

		require.NoError(t, src.Login(ctx, token.LoginOptions{RedirectURI: "http://localhost:4200"}))
		assert.NotEmpty(t, src.Token())

		require.NoError(t, src.Logout(ctx, token.LogoutOptions{}))
		assert.Empty(t, src.Token())
	})
}

func TestEnsureFresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns fresh token", func(t *testing.T) {
		t.Parallel()
		tok, err := token.EnsureFresh(ctx, token.NewOAuth2Source(&fakeProvider{ttl: time.Hour}), time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "tok1", tok)
	})

	t.Run("refresh failure aborts", func(t *testing.T) {
		t.Parallel()
		_, err := token.EnsureFresh(ctx, token.NewOAuth2Source(&fakeProvider{err: errors.New("down")}), time.Minute)
		assert.ErrorIs(t, err, token.ErrRefreshFailed)
	})

	t.Run("no token aborts", func(t *testing.T) {
		t.Parallel()
		_, err := token.EnsureFresh(ctx, token.Static(""), time.Minute)
		assert.ErrorIs(t, err, token.ErrNoToken)

		_, err = token.EnsureFresh(ctx, nil, time.Minute)
		assert.ErrorIs(t, err, token.ErrNoToken)
	})
}

func TestNewSource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("static token", func(t *testing.T) {
		t.Parallel()
		src, err := token.NewSource(ctx, token.Config{StaticToken: "tok123"})
		require.NoError(t, err)
		assert.Equal(t, "tok123", src.Token())
	})

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()
		src, err := token.NewSource(ctx, token.Config{})
		require.NoError(t, err)
		assert.Empty(t, src.Token())
	})

	t.Run("client credentials requires client id", func(t *testing.T) {
		t.Parallel()
		_, err := token.NewSource(ctx, token.Config{TokenURL: "http://idp.local/token"})
		assert.ErrorIs(t, err, token.ErrInvalidConfig)
	})

	t.Run("client credentials against token endpoint", func(t *testing.T) {
		t.Parallel()
		var hits atomic.Int32
		idp := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"cc-token","token_type":"Bearer","expires_in":3600}`))
		}))
		t.Cleanup(idp.Close)

		src, err := token.NewSource(ctx, token.Config{
			TokenURL:     idp.URL,
			ClientID:     "flashsale-spa",
			ClientSecret: "secret",
		})
		require.NoError(t, err)
		assert.Empty(t, src.Token())

		tok, err := token.EnsureFresh(ctx, src, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "cc-token", tok)

		_, err = token.EnsureFresh(ctx, src, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int32(1), hits.Load())
	})
}

package token

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Config selects and configures the token source.
type Config struct {
	StaticToken  string        `env:"API_TOKEN"`
	TokenURL     string        `env:"OAUTH_TOKEN_URL"`
	ClientID     string        `env:"OAUTH_CLIENT_ID"`
	ClientSecret string        `env:"OAUTH_CLIENT_SECRET"`
	Scopes       []string      `env:"OAUTH_SCOPES" envSeparator:","`
	MinValidity  time.Duration `env:"TOKEN_MIN_VALIDITY" envDefault:"30s"`
}

// NewSource returns an OAuth2Source when a token URL is configured, a Static
// source for a configured API token, and an anonymous Static source otherwise.
func NewSource(ctx context.Context, cfg Config) (Source, error) {
	if cfg.TokenURL != "" {
		return NewClientCredentials(ctx, cfg)
	}
	return Static(cfg.StaticToken), nil
}

// NewClientCredentials creates an OAuth2Source using the client credentials grant.
func NewClientCredentials(ctx context.Context, cfg Config) (*OAuth2Source, error) {
	if cfg.TokenURL == "" || cfg.ClientID == "" {
		return nil, ErrInvalidConfig
	}
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       cfg.Scopes,
	}
	return NewOAuth2Source(fetcher{ctx: ctx, cc: cc}), nil
}

// fetcher requests a new token on every call, unlike cc.TokenSource which reuses.
type fetcher struct {
	ctx context.Context
	cc  *clientcredentials.Config
}

func (f fetcher) Token() (*oauth2.Token, error) {
	return f.cc.Token(f.ctx)
}

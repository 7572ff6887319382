package apiclient

import "time"

// Config configures the HTTP transport.
type Config struct {
	BaseURL      string        `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout      time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	MaxBodyBytes int64         `env:"API_MAX_BODY_BYTES" envDefault:"10485760"`
}

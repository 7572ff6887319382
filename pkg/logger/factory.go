package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/orgclient/pkg/activeorg"
	"github.com/dmitrymomot/orgclient/pkg/correlation"
	"github.com/dmitrymomot/orgclient/pkg/environment"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Redacted replaces the value of every attribute whose key is redacted.
const Redacted = "[REDACTED]"

// DefaultRedactedKeys are the attribute keys masked unless WithRedactedKeys
// replaces them. Matching is case-insensitive.
var DefaultRedactedKeys = []string{"authorization", "token", "access_token", "refresh_token", "client_secret"}

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
	redact     map[string]struct{}
}

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat selects the output format. It panics on anything other than
// FormatJSON or FormatText.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
	}
	return func(c *config) { c.format = f }
}

func WithTextFormatter() Option { return WithFormat(FormatText) }

func WithJSONFormatter() Option { return WithFormat(FormatJSON) }

// WithOutput sets the destination. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithContextExtractors registers functions that add attributes taken from
// the context of each logging call. Nil extractors are ignored.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithRequestContext registers extractors for the correlation id and the
// organization id of the API request in flight.
func WithRequestContext() Option {
	return WithContextExtractors(correlation.LoggerExtractor(), activeorg.LoggerExtractor())
}

// WithRedactedKeys replaces the set of attribute keys whose values are masked.
// Calling it with no keys disables redaction.
func WithRedactedKeys(keys ...string) Option {
	return func(c *config) {
		c.redact = make(map[string]struct{}, len(keys))
		for _, k := range keys {
			c.redact[strings.ToLower(k)] = struct{}{}
		}
	}
}

// presets holds the level and format per environment.
var presets = map[environment.Environment]struct {
	level  slog.Level
	format Format
}{
	environment.Development: {slog.LevelDebug, FormatText},
	environment.Staging:     {slog.LevelInfo, FormatJSON},
	environment.Production:  {slog.LevelInfo, FormatJSON},
}

func withPreset(env environment.Environment, service string) Option {
	return func(c *config) {
		if service == "" {
			return
		}
		p := presets[env]
		c.level = p.level
		c.format = p.format
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", env.String()),
		)
	}
}

// WithDevelopment logs text at debug level.
func WithDevelopment(service string) Option { return withPreset(environment.Development, service) }

// WithStaging logs JSON at info level.
func WithStaging(service string) Option { return withPreset(environment.Staging, service) }

// WithProduction logs JSON at info level.
func WithProduction(service string) Option { return withPreset(environment.Production, service) }

// WithEnvironment picks the preset for env as understood by environment.Parse.
func WithEnvironment(env string, service string) Option {
	return withPreset(environment.Parse(env), service)
}

// SetAsDefault installs l as the slog default logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New creates a logger. Without options it writes JSON at info level to
// stdout, masks DefaultRedactedKeys and adds no context attributes.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	WithRedactedKeys(DefaultRedactedKeys...)(cfg)
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	if len(cfg.redact) > 0 {
		handlerOpts.ReplaceAttr = redactor(cfg.redact)
	}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewContextHandler(handler, cfg.extractors...))
}

func redactor(keys map[string]struct{}) func([]string, slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		if _, ok := keys[strings.ToLower(a.Key)]; ok {
			return slog.String(a.Key, Redacted)
		}
		return a
	}
}

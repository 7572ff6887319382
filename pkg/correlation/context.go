package correlation

import (
	"context"
	"log/slog"
	"strings"
)

type ctxKey struct{}

// WithContext returns ctx carrying id. A blank id leaves ctx unchanged, so an
// id set earlier in the call chain is never masked by an empty one.
func WithContext(ctx context.Context, id string) context.Context {
	if strings.TrimSpace(id) == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the correlation id carried by ctx, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// LoggerExtractor adds the correlation id to log records as "correlation_id".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("correlation_id", id), true
	}
}

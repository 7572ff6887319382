package activeorg

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithOrgID stores the organization id a request was scoped to in ctx.
func WithOrgID(ctx context.Context, orgID string) context.Context {
	return context.WithValue(ctx, contextKey{}, orgID)
}

// OrgIDFromContext returns the organization id stored in ctx.
func OrgIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	orgID, ok := ctx.Value(contextKey{}).(string)
	if !ok || orgID == "" {
		return "", false
	}
	return orgID, true
}

// LoggerExtractor returns a ContextExtractor for the logger that extracts the organization id from context
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if orgID, ok := OrgIDFromContext(ctx); ok {
			return slog.String("org_id", orgID), true
		}
		return slog.Attr{}, false
	}
}

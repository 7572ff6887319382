// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by a set of Option functions. These
// options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled from a
//     context value (for example a correlation id) every time Handle is invoked.
//
// # Architecture
//
// New determines the concrete slog.Handler implementation, slog.NewTextHandler
// or slog.NewJSONHandler, based on the configured Format. It then wraps the
// handler with ContextHandler which runs any registered ContextExtractor
// callbacks before delegating to the underlying handler.
//
// Values of credential-bearing keys (DefaultRedactedKeys, for example
// "authorization" and "token") are replaced with Redacted before they are
// written. WithRedactedKeys changes the set.
//
// WithRequestContext registers the extractors for the correlation id and the
// organization id the API client stores in the context of every request, so
// each record logged while a request is in flight can be traced end to end.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "orgcall"),
//		logger.WithRequestContext(),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "catalog loaded",
//		logger.Status(200),
//		logger.Duration(time.Since(start)),
//	)
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("operation finished", logger.Error(err))
//
// without an additional nil check.
package logger

// Package correlation generates and propagates correlation identifiers for
// outbound API requests.
//
// A correlation id is an opaque string attached to a request under the
// X-CORRELATION-ID header so that the client, the gateway and every backend
// service can link their log records for the same user interaction. Ids carry
// no meaning and have no relationship to each other.
//
// # Overview
//
// The package offers:
//
//   - NewID, which returns a random UUIDv4 string. When the system random
//     source is unavailable it falls back to a "<unix-nanos>-<hex>" id built
//     from the clock and a process-local pseudo-random source, trading
//     uniqueness guarantees for availability.
//
//   - Context helpers WithContext and FromContext for carrying the id of the
//     request in flight through a context.Context.
//
//   - LoggerExtractor that integrates with the slog structured-logging package
//     so the correlation id is added to every log record automatically.
//
// # Usage
//
//	id := correlation.NewID()
//	req.Header.Set(correlation.Header, id)
//	ctx = correlation.WithContext(ctx, id)
//
// # Logger integration
//
//	log := logger.New(logger.WithContextExtractors(correlation.LoggerExtractor()))
//
// # Error Handling
//
// The package does not return errors.
package correlation

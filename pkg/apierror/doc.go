// Package apierror converts every failure of an API call into one small,
// stable error value that a UI can render safely.
//
// Whatever went wrong (the network was unreachable, the backend answered
// with an error status, or something unexpected blew up while the request
// was being prepared) the caller receives exactly one Error:
//
//	type Error struct {
//		Code    string // machine-readable, e.g. "NOT_FOUND", "HTTP_500", "UNEXPECTED_ERROR"
//		Status  int    // HTTP status, 0 when no response was received
//		Message string // end-user safe text
//	}
//
// # Normalization rules
//
//   - Transport failure (no response): status 0, code UNEXPECTED_ERROR,
//     connectivity message.
//   - Backend response with an error status: the payload's "code" and
//     "message" fields are used when present and non-blank. Otherwise code
//     becomes "HTTP_<status>" and the message comes from a status-keyed
//     table (0, 401, 403, >=500, everything else).
//   - Anything else: status 0, code UNEXPECTED_ERROR, generic message.
//
// Backend messages are trusted as user-safe and only trimmed; malformed or
// missing payloads degrade to the defaults above, so raw bodies, stack
// traces and driver errors never reach the message.
//
// # Usage
//
//	resp, err := pipeline.Do(ctx, req)
//	if err != nil {
//		apiErr := apierror.Normalize(err)
//		showBanner(apierror.Render(apiErr)) // "NOT_FOUND: Product missing"
//		return
//	}
package apierror

package apiclient

import "errors"

var (
	// ErrNilResponse is returned by the pipeline when a transport reports neither a response nor an error.
	ErrNilResponse = errors.New("transport returned no response")

	// ErrInvalidBaseURL is returned when the configured API base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("invalid API base URL")

	// ErrBodyTooLarge is returned by HTTPTransport when a 2xx body exceeds MaxBodyBytes.
	ErrBodyTooLarge = errors.New("response body exceeds size limit")

	// ErrStagePanic wraps a panic recovered from a pipeline stage or transport.
	ErrStagePanic = errors.New("panic in request pipeline")
)

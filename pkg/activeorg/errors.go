package activeorg

import "errors"

var (
	// ErrInvalidTenant is returned when the organization id is blank after trimming.
	ErrInvalidTenant = errors.New("invalid tenant: organization id is blank")

	// ErrStorageFailure is returned when the underlying storage cannot be written.
	ErrStorageFailure = errors.New("active organization storage failure")

	// ErrEmptySessionID is returned when a session-scoped storage is created without a session id.
	ErrEmptySessionID = errors.New("empty session id")
)

package activeorg

import "context"

// Storage is session-scoped key/value persistence.
type Storage interface {
	// Get returns the value stored under key. The boolean is false when no value exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

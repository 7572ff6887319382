// Package activeorg holds the active organization (tenant) selected by the
// user for the current session.
//
// The active organization id scopes every private API call: the API client
// reads it from a Store and sends it as the X-ORG-ID header. The Store is the
// single piece of shared mutable state on the request path, and it is
// read-mostly: writes happen only on explicit user actions (selecting or
// leaving an organization), never from the request pipeline.
//
// # Storage
//
// Values are persisted through the Storage interface under the fixed key
// "activeOrgId". Two implementations are provided:
//
//   - MemoryStorage keeps values in process memory; its lifetime is the
//     lifetime of the value, which makes it the natural fit for a single
//     interactive session and for tests.
//   - RedisStorage keeps values in Redis under a per-session key prefix with
//     an optional TTL, so a session that ends (or expires) takes its active
//     organization with it.
//
// # Usage
//
//	store := activeorg.NewStore(activeorg.NewMemoryStorage())
//
//	if err := store.Set(ctx, "  acme  "); err != nil {
//		// activeorg.ErrInvalidTenant for blank input
//	}
//
//	orgID, ok := store.Get(ctx) // "acme", true
//
//	_ = store.Clear(ctx) // idempotent
//
// Blank or whitespace-only input is never stored. Set rejects it with
// ErrInvalidTenant; callers that want to unset the organization call Clear.
package activeorg

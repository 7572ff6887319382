// Package redis connects to the optional Redis server that backs
// session-scoped client state such as the active organization.
//
// Config is populated from environment variables via the config package.
// Redis is only used when REDIS_URL is set:
//
//	if cfg.Redis.Enabled() {
//		client, err := redis.Connect(ctx, cfg.Redis)
//		if err != nil {
//			return err
//		}
//		defer client.Close()
//
//		storage, err := activeorg.NewRedisStorage(client, cfg.Redis.SessionID, cfg.Redis.SessionTTL)
//		...
//	}
//
// Healthcheck returns a probe suitable for readiness checks.
//
// # Errors
//
// Sentinel errors (ErrRedisNotReady and friends) wrap the underlying go-redis
// errors with errors.Join so callers can match them with errors.Is.
package redis

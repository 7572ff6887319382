package redis

import "errors"

var (
	// ErrFailedToParseRedisConnString is returned when REDIS_URL is not a valid redis:// URL.
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	// ErrRedisNotReady is returned when no ping succeeded within the configured attempts.
	ErrRedisNotReady = errors.New("redis did not become ready within the given time period")
	// ErrEmptyConnectionURL is returned by Connect when Redis is not configured.
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")
	// ErrHealthcheckFailed wraps a failed ping of the session store.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)

// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per type, so the parse happens once per process.
//   - MustLoad panics on failure, for configuration the process cannot start
//     without.
//   - Reload and ResetCache drop cached values, mostly useful in tests.
//
// Configuration structs of other packages compose through nesting:
//
//	type Config struct {
//		Env    string `env:"APP_ENV" envDefault:"development"`
//		Client apiclient.Config
//		Token  token.Config
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// # Errors
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrInvalidConfigType: the target type is not a struct.
//   - ErrNilPointer: nil pointer passed to Load.
//   - ErrLoadingEnvFile: an explicit .env path could not be read.
package config

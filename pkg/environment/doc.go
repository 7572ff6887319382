// Package environment names the deployment environment of a client process
// (development, staging or production).
//
// Parse normalizes configuration values, accepting the short aliases used in
// deployment manifests:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//		// production-specific behaviour
//	}
//
// The logger package uses Parse to select output defaults.
package environment

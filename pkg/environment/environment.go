package environment

import "strings"

// Environment represents the deployment environment the client runs in.
type Environment string

const (
	// Development for local runs against a developer gateway.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps a configured name to an Environment. The short aliases
// "dev", "stage" and "prod" are accepted; anything else is Development.
func Parse(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string { return string(e) }

// IsProduction reports whether e is Production.
func (e Environment) IsProduction() bool { return e == Production }

// IsStaging reports whether e is Staging.
func (e Environment) IsStaging() bool { return e == Staging }

// IsDevelopment reports whether e is Development.
func (e Environment) IsDevelopment() bool { return e == Development }

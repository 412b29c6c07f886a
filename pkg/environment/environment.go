package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalizes s, accepting the short aliases "dev", "stage" and "prod".
// Unknown values are returned lowercased and trimmed.
func Parse(s string) Environment {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "dev", "development", "":
		return Development
	case "stage", "staging":
		return Staging
	case "prod", "production":
		return Production
	default:
		return Environment(v)
	}
}

// UnmarshalText lets config loaders decode environment names with Parse.
func (e *Environment) UnmarshalText(text []byte) error {
	*e = Parse(string(text))
	return nil
}

func (e Environment) String() string { return string(e) }

// IsDevelopment reports whether e is Development.
// Unknown environments are not treated as development.
func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) IsStaging() bool { return e == Staging }

func (e Environment) IsProduction() bool { return e == Production }

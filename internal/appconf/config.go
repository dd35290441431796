package appconf

import "os"

// Environment represents the runtime environment of the application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment converts an environment flag string to an
// Environment value. Unknown values default to Development.
func EnvFlagToEnvironment(envFlag string) Environment {
	switch envFlag {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

// Config holds the non-secret runtime settings, populated from flags in
// cmd/api.
type Config struct {
	Port        int
	Env         Environment
	Verbose     bool
	RateLimit   int
	OpenAIModel string
	WebUIPath   string
}

// Secrets holds the credential set the service needs at runtime. It is
// fetched through a Provider so rotated values are picked up without a
// restart.
type Secrets struct {
	OpenAIAPIKey     string
	GoogleMapsAPIKey string
	JWTSecret        string
	AdminUsername    string
	AdminPassword    string
}

// SecretsFromEnv reads the secret set from process environment variables.
// This is both the default source and the fallback when a remote source
// fails.
func SecretsFromEnv() Secrets {
	return Secrets{
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		GoogleMapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		AdminUsername:    os.Getenv("ADMIN_USERNAME"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
	}
}

// Package constants contains configuration values shared across layers.
package constants

// Event publisher providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Auth token transport.
const (
	HeaderAuthToken     = "x-auth-token"
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// Deployment environments named in env.env.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

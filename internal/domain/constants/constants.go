// Package constants holds shared domain-level constants.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"
	// EnvProduction marks the production environment.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Role names carried in access-token claims.
const (
	RoleCustomer = "customer"
	RolePharmacy = "pharmacy"
	RoleCourier  = "courier"
	RoleAdmin    = "admin"
)

package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Order event transports
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
	PubSubProviderNoop   = "noop"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// CartSessionCookie carries the anonymous cart session identifier.
const CartSessionCookie = "cart_session"

// DefaultCurrency is the ISO currency code charged by the storefront.
const DefaultCurrency = "GHS"


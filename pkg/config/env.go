package config

const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	DefaultSQLiteDSN = "file:storefront.db?cache=shared&_fk=1"
)

const (
	EnvAppEnv  = "STOREFRONT_APP_ENV"
	EnvPort    = "STOREFRONT_APP_PORT"
	EnvDBDSN   = "STOREFRONT_DB_DSN"
	EnvDBHost  = "STOREFRONT_DB_HOST"
	EnvDBUser  = "STOREFRONT_DB_USER"
	EnvDBName  = "STOREFRONT_DB_NAME"
	EnvUseLite = "STOREFRONT_USE_SQLITE"

	EnvRedisURL       = "STOREFRONT_REDIS_URL"
	EnvSessionSecret  = "STOREFRONT_SESSION_SECRET"
	EnvShippingFee    = "STOREFRONT_CHECKOUT_SHIPPING_FEE"
	EnvCapDiscount    = "STOREFRONT_CHECKOUT_CAP_DISCOUNT"
	EnvPaymentExpiry  = "STOREFRONT_PAYMENT_EXPIRY"
	EnvPaymentLatency = "STOREFRONT_PAYMENT_INITIATE_LATENCY"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

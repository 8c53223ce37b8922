package config

const (
	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvIntakeSigningSecret = "INTAKE_SIGNING_SECRET"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvBackendURL     = "BACKEND_URL"
	EnvBackendTimeout = "BACKEND_TIMEOUT"

	EnvMongoEnabled      = "MONGO_ENABLED"
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvKafkaEnabled = "KAFKA_ENABLED"

	EnvProjectMoneyPolicy  = "PROJECT_MONEY_POLICY"
	EnvInvestorMoneyPolicy = "INVESTOR_MONEY_POLICY"
	EnvAliasFile           = "ALIAS_FILE"

	EnvPropertyLocationStrategy = "PROPERTY_LOCATION_STRATEGY"
	EnvInvestorLocationStrategy = "INVESTOR_LOCATION_STRATEGY"

	EnvStrictValidation    = "STRICT_VALIDATION"
)

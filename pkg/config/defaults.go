package config

import "time"

const (
	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB
	DefaultIdempotencyTTL = 24 * time.Hour

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultBackendURL     = ""
	DefaultBackendTimeout = 10 * time.Second

	DefaultMongoEnabled      = false
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "renovacampo"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultKafkaEnabled = false

	DefaultProjectMoneyPolicy  = "simple"
	DefaultInvestorMoneyPolicy = "ambiguous"
	DefaultStrictValidation    = false

	DefaultPropertyLocationStrategy = "generic"
	DefaultInvestorLocationStrategy = "investor"
)

package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"time"

	"renovacampo/pkg/client"
	kafka_config "renovacampo/pkg/kafka/config"
	"renovacampo/pkg/location"
	"renovacampo/pkg/logger"
	"renovacampo/pkg/money"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	RequestTimeout time.Duration
	MaxRequestSize int
	IdempotencyTTL time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration

	IntakeSigningSecret string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	BackendURL     string
	BackendTimeout time.Duration

	MongoEnabled      bool
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	KafkaEnabled bool
	Kafka        *kafka_config.Config

	ProjectMoneyPolicy  string
	InvestorMoneyPolicy string
	AliasFile           string
	StrictValidation    bool

	PropertyLocationStrategy string
	InvestorLocationStrategy string

	Log    *logger.Logger
	Client *client.Client
}

// Load reads the configuration from the environment, validates it and logs
// it. Invalid configuration is fatal.
func Load(serviceName string) *Config {
	cfg := FromEnv()
	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
		Service:   serviceName,
	})

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv reads the configuration without validating it or building a logger.
func FromEnv() *Config {
	return &Config{
		Port:      getEnvStr(EnvPort, DefaultPort),
		LogLevel:  getEnvStr(EnvLogLevel, DefaultLogLevel),
		LogFormat: getEnvStr(EnvLogFormat, DefaultLogFormat),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		IntakeSigningSecret: getEnvStr(EnvIntakeSigningSecret, ""),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		BackendURL:     getEnvStr(EnvBackendURL, DefaultBackendURL),
		BackendTimeout: getEnvDuration(EnvBackendTimeout, DefaultBackendTimeout),

		MongoEnabled:      getEnvBool(EnvMongoEnabled, DefaultMongoEnabled),
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		KafkaEnabled: getEnvBool(EnvKafkaEnabled, DefaultKafkaEnabled),
		Kafka:        kafka_config.Load(),

		ProjectMoneyPolicy:  getEnvStr(EnvProjectMoneyPolicy, DefaultProjectMoneyPolicy),
		InvestorMoneyPolicy: getEnvStr(EnvInvestorMoneyPolicy, DefaultInvestorMoneyPolicy),
		AliasFile:           getEnvStr(EnvAliasFile, ""),
		StrictValidation:    getEnvBool(EnvStrictValidation, DefaultStrictValidation),

		PropertyLocationStrategy: getEnvStr(EnvPropertyLocationStrategy, DefaultPropertyLocationStrategy),
		InvestorLocationStrategy: getEnvStr(EnvInvestorLocationStrategy, DefaultInvestorLocationStrategy),

		Client: client.NewClient(),
	}
}

// SetMongo connects the shared Mongo client when the archive is enabled.
func (cfg *Config) SetMongo() {
	if !cfg.MongoEnabled {
		cfg.Log.Info("MongoDB archive disabled")
		return
	}
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.BackendURL != "" {
		u, err := url.ParseRequestURI(cfg.BackendURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errors = append(errors, fmt.Sprintf("BackendURL must be an absolute http(s) URL, got: %s", cfg.BackendURL))
		}
	}
	if cfg.BackendTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("BackendTimeout must be positive, got: %s", cfg.BackendTimeout))
	}

	if cfg.MongoEnabled {
		if cfg.MongoURI == "" {
			errors = append(errors, "MongoURI cannot be empty")
		} else if len(cfg.MongoURI) < 10 || !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
			errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
		}
		if cfg.MongoDatabaseName == "" {
			errors = append(errors, "MongoDatabaseName cannot be empty")
		}
		if cfg.MongoConnTimeout <= 0 {
			errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
		}
	}

	if cfg.KafkaEnabled {
		if cfg.Kafka == nil {
			errors = append(errors, "Kafka configuration is missing")
		} else {
			errors = append(errors, cfg.Kafka.Problems()...)
		}
	}

	if _, ok := money.PolicyFromString(cfg.ProjectMoneyPolicy); !ok {
		errors = append(errors, fmt.Sprintf("ProjectMoneyPolicy must be 'simple' or 'ambiguous', got: %s", cfg.ProjectMoneyPolicy))
	}
	if _, ok := money.PolicyFromString(cfg.InvestorMoneyPolicy); !ok {
		errors = append(errors, fmt.Sprintf("InvestorMoneyPolicy must be 'simple' or 'ambiguous', got: %s", cfg.InvestorMoneyPolicy))
	}
	if _, ok := location.ByName(cfg.PropertyLocationStrategy); !ok {
		errors = append(errors, fmt.Sprintf("PropertyLocationStrategy must be 'generic' or 'investor', got: %s", cfg.PropertyLocationStrategy))
	}
	if _, ok := location.ByName(cfg.InvestorLocationStrategy); !ok {
		errors = append(errors, fmt.Sprintf("InvestorLocationStrategy must be 'generic' or 'investor', got: %s", cfg.InvestorLocationStrategy))
	}
	if cfg.AliasFile != "" {
		if _, err := os.Stat(cfg.AliasFile); err != nil {
			errors = append(errors, fmt.Sprintf("AliasFile is not readable: %s", cfg.AliasFile))
		}
	}

	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

// ProjectPolicy is the money policy for project forms. Validate guarantees
// the name is known.
func (cfg *Config) ProjectPolicy() money.Policy {
	p, _ := money.PolicyFromString(cfg.ProjectMoneyPolicy)
	return p
}

func (cfg *Config) InvestorPolicy() money.Policy {
	p, ok := money.PolicyFromString(cfg.InvestorMoneyPolicy)
	if !ok {
		return money.Ambiguous
	}
	return p
}

func (cfg *Config) PropertyLocator() location.Decomposer {
	d, ok := location.ByName(cfg.PropertyLocationStrategy)
	if !ok {
		return location.Generic
	}
	return d
}

func (cfg *Config) InvestorLocator() location.Decomposer {
	d, ok := location.ByName(cfg.InvestorLocationStrategy)
	if !ok {
		return location.Investor
	}
	return d
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"signing_secret_set", cfg.IntakeSigningSecret != "",
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"backend_url", cfg.BackendURL,
		"backend_timeout", cfg.BackendTimeout,
		"mongo_enabled", cfg.MongoEnabled,
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"kafka_enabled", cfg.KafkaEnabled,
		"project_money_policy", cfg.ProjectMoneyPolicy,
		"investor_money_policy", cfg.InvestorMoneyPolicy,
		"property_location_strategy", cfg.PropertyLocationStrategy,
		"investor_location_strategy", cfg.InvestorLocationStrategy,
		"alias_file", cfg.AliasFile,
		"strict_validation", cfg.StrictValidation,
	)
	if cfg.KafkaEnabled && cfg.Kafka != nil {
		cfg.Kafka.LogConfiguration(cfg.Log.Info)
	}
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown(ctx context.Context) {
	cfg.Client.GracefulShutdown(ctx, cfg.Log)
}

package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"renovacampo/internal/intake/handler"
	"renovacampo/internal/intake/repository"
	"renovacampo/internal/intake/service"
	"renovacampo/pkg/app"
	"renovacampo/pkg/client"
	"renovacampo/pkg/config"
	"renovacampo/pkg/kafka"
	kafka_middleware "renovacampo/pkg/kafka/middleware"
	"renovacampo/pkg/mapper"
	"renovacampo/pkg/model"
	"renovacampo/pkg/validator"
)

const ServiceName = "intake"

func main() {
	// A missing .env is normal outside local development.
	envErr := godotenv.Load()

	cfg := config.Load(ServiceName)
	if envErr != nil && !os.IsNotExist(envErr) {
		cfg.Log.Warn("Failed to load .env file", "error", envErr)
	}
	cfg.SetMongo()

	cfg.Log.Info("Starting Intake service")
	serverApp := app.NewApplication(cfg)

	repo := initRepository(cfg)
	intakeService := initServices(cfg, serverApp, repo)

	checks := []handler.Check{}
	if cfg.MongoEnabled {
		checks = append(checks, handler.Check{Name: "mongo", Ping: repo.Ping})
	}

	serverApp.SetApp(
		handler.NewIntakeHandler(intakeService, cfg.Log),
		handler.NewHealthHandler(cfg.Log, checks...),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, serverApp *app.Application, repo repository.SubmissionRepository) service.IntakeService {
	m := mapper.New(mapperOptions(cfg)...)

	var payloadValidator *validator.PayloadValidator
	if cfg.StrictValidation {
		payloadValidator = validator.NewPayloadValidator(cfg.Log)
	}

	var opts []service.Option

	if cfg.KafkaEnabled {
		producer, err := kafka.NewProducer(cfg.Kafka, cfg.Log)
		if err != nil {
			cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
		}
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
		serverApp.OnShutdown(func(context.Context) error {
			return producer.Close()
		})
		opts = append(opts, service.WithPublisher(producer))
		cfg.Log.Info("Kafka publishing enabled", "topic", producer.Topic())
	}

	if cfg.BackendURL != "" {
		opts = append(opts, service.WithForwarder(client.NewBackend(cfg.BackendURL, cfg.BackendTimeout)))
		cfg.Log.Info("Backend forwarding enabled", "backend_url", cfg.BackendURL)
	}

	intakeService := service.NewIntakeService(
		repo,
		m,
		payloadValidator,
		cfg,
		opts...,
	)

	cfg.Log.Info("Intake service initialized",
		"strict_validation", cfg.StrictValidation,
		"archive", cfg.MongoEnabled,
	)
	return intakeService
}

func initRepository(cfg *config.Config) repository.SubmissionRepository {
	if !cfg.MongoEnabled {
		return repository.NewNoopSubmissionRepository()
	}
	return repository.NewMongoSubmissionRepository(cfg)
}

func mapperOptions(cfg *config.Config) []mapper.Option {
	opts := []mapper.Option{
		mapper.WithMoneyPolicy(model.KindProject, cfg.ProjectPolicy()),
		mapper.WithMoneyPolicy(model.KindInvestor, cfg.InvestorPolicy()),
		mapper.WithLocationStrategy(model.KindProperty, cfg.PropertyLocator()),
		mapper.WithLocationStrategy(model.KindInvestor, cfg.InvestorLocator()),
	}

	if cfg.AliasFile != "" {
		aliasOpts, err := mapper.LoadAliasFile(cfg.AliasFile)
		if err != nil {
			cfg.Log.Fatal("Failed to load alias overrides", "path", cfg.AliasFile, "error", err)
		}
		opts = append(opts, aliasOpts...)
		cfg.Log.Info("Alias overrides loaded", "path", cfg.AliasFile, "overrides", len(aliasOpts))
	}
	return opts
}

package setup

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/LavaJover/shvark-order-intake/internal/config"
	"github.com/LavaJover/shvark-order-intake/internal/domain"
	publisher "github.com/LavaJover/shvark-order-intake/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/postgres/repository"
)

type Dependencies struct {
	Config         *config.Config
	Logger         *slog.Logger
	DB             *gorm.DB
	OrderPublisher domain.PublisherPort
	Registry       *prometheus.Registry
	Metrics        *metrics.OrderMetrics
	Repositories   *Repositories
}

type Repositories struct {
	OrderRepo domain.OrderRepository
}

func InitializeDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	db, err := postgres.InitDB(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	if err := migrate.RunMigrations(db, cfg.Database.MigrationsPath, logger); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Dependencies{
		Config:         cfg,
		Logger:         logger,
		DB:             db,
		OrderPublisher: initOrderPublisher(cfg.Kafka, logger),
		Registry:       registry,
		Metrics:        metrics.NewOrderMetrics(registry),
		Repositories: &Repositories{
			OrderRepo: repository.NewDefaultOrderRepository(db),
		},
	}, nil
}

// initOrderPublisher falls back to a no-op publisher when no brokers are configured.
func initOrderPublisher(cfg config.Kafka, logger *slog.Logger) domain.PublisherPort {
	if len(cfg.Brokers) == 0 {
		logger.Info("kafka brokers not configured, order events disabled")
		return publisher.NoopPublisher{}
	}
	logger.Info("publishing order events", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return publisher.NewDefaultKafkaPublisher(cfg.Brokers, cfg.Topic)
}

func (d *Dependencies) Close() error {
	var errs []error
	if err := d.OrderPublisher.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close publisher: %w", err))
	}
	if sqlDB, err := d.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
	}
	return errors.Join(errs...)
}

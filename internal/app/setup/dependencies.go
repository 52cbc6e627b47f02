package setup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-merchant-service/internal/client"
	"github.com/LavaJover/shvark-merchant-service/internal/config"
	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	publisher "github.com/LavaJover/shvark-merchant-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/discovery"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.MerchantConfig
	Logger       *slog.Logger
	DB           *gorm.DB
	Calendar     *domain.BusinessCalendar
	Publisher    *publisher.DefaultKafkaPublisher
	Subscriber   *publisher.DefaultKafkaSubscriber
	Repositories *Repositories
}

type Repositories struct {
	StoreDiscoveryRepo    domain.StoreDiscoveryRepository
	StoreAvailabilityRepo domain.StoreAvailabilityRepository
	SettingsRepo          domain.SettingsRepository
	PriceBandRepo         domain.PriceBandRepository
}

func InitializeDependencies(ctx context.Context, cfg *config.MerchantConfig, logger *slog.Logger) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.MerchantDB.MigrationsPath, logger); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	kafkaConfig := newKafkaConfig(cfg)
	pub, err := publisher.NewDefaultKafkaPublisher(kafkaConfig)
	if err != nil {
		return nil, fmt.Errorf("store index publisher: %w", err)
	}
	sub := publisher.NewDefaultKafkaSubscriber(ctx, kafkaConfig, logger)

	calendar := domain.NewBusinessCalendar(cfg.Discovery.TimezoneOffsetHours, time.Weekday(cfg.Discovery.WeekStartDay))
	orderClient := client.NewHTTPOrderClient(cfg.OrderService.Address, cfg.OrderService.Timeout)

	settingsRepo := repository.NewDefaultSettingsRepository(db)
	priceBandRepo := repository.NewDefaultPriceBandRepository(db)
	storeFilter := discovery.NewStoreFilter(
		settingsRepo,
		priceBandRepo,
		orderClient,
		calendar,
		discovery.Config{RadiusSettingName: cfg.Discovery.RadiusSettingName},
	)

	repos := &Repositories{
		StoreDiscoveryRepo:    repository.NewDefaultStoreDiscoveryRepository(db, storeFilter),
		StoreAvailabilityRepo: repository.NewDefaultStoreAvailabilityRepository(db),
		SettingsRepo:          settingsRepo,
		PriceBandRepo:         priceBandRepo,
	}

	return &Dependencies{
		Config:       cfg,
		Logger:       logger,
		DB:           db,
		Calendar:     calendar,
		Publisher:    pub,
		Subscriber:   sub,
		Repositories: repos,
	}, nil
}

func newKafkaConfig(cfg *config.MerchantConfig) publisher.KafkaConfig {
	return publisher.KafkaConfig{
		Brokers:    []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		Username:   cfg.KafkaService.Username,
		Password:   cfg.KafkaService.Password,
		Mechanism:  cfg.KafkaService.Mechanism,
		TLSEnabled: cfg.KafkaService.TLSEnabled,
	}
}

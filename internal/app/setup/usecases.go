package setup

import (
	"fmt"

	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-merchant-service/internal/usecase"
)

type UseCases struct {
	StoreDiscoveryUsecase usecase.StoreDiscoveryUsecase
	StoreEventUsecase     usecase.StoreEventUsecase
}

func InitializeUseCases(deps *Dependencies, discoveryMetrics *metrics.DiscoveryMetrics) (*UseCases, error) {
	discoveryUsecase, err := usecase.NewDefaultStoreDiscoveryUsecase(
		deps.Repositories.StoreDiscoveryRepo,
		deps.Calendar,
		discoveryMetrics,
		logger.NewPGDiscoveryEventLogger(deps.DB),
		deps.Logger,
		usecase.DiscoveryOptions{
			DefaultPageSize: deps.Config.Discovery.DefaultPageSize,
			MaxPageSize:     deps.Config.Discovery.MaxPageSize,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("discovery usecase: %w", err)
	}

	storeEventUsecase := usecase.NewDefaultStoreEventUsecase(
		deps.Repositories.StoreAvailabilityRepo,
		deps.Publisher,
		deps.Config.KafkaService.IndexEventsTopic,
		discoveryMetrics,
		deps.Logger,
	)

	return &UseCases{
		StoreDiscoveryUsecase: discoveryUsecase,
		StoreEventUsecase:     storeEventUsecase,
	}, nil
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/discovery"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/filter"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/models"
)

type DefaultStoreDiscoveryRepository struct {
	DB     *gorm.DB
	Filter *discovery.StoreFilter
}

func NewDefaultStoreDiscoveryRepository(db *gorm.DB, storeFilter *discovery.StoreFilter) *DefaultStoreDiscoveryRepository {
	return &DefaultStoreDiscoveryRepository{
		DB:     db,
		Filter: storeFilter,
	}
}

// FindStores runs the discovery filter and returns one page of matching
// stores, nearest first when the caller position is known and best rated
// first otherwise.
func (r *DefaultStoreDiscoveryRepository) FindStores(
	ctx context.Context,
	params *domain.StoreFilterParams,
	page domain.StorePage,
) ([]*domain.DiscoveredStore, int64, error) {
	filtered, err := r.Filter.Apply(ctx, r.DB.WithContext(ctx).Model(&models.StoreModel{}), params)
	if err != nil {
		return nil, 0, err
	}
	// joins fan out per shift/category/menu, so matches are collected as ids
	matching := filtered.Select("stores.id")

	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&models.StoreModel{}).
		Where("stores.id IN (?)", matching).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count stores: %w", err)
	}
	if total == 0 {
		return []*domain.DiscoveredStore{}, 0, nil
	}

	query := r.DB.WithContext(ctx).
		Model(&models.StoreModel{}).
		Where("stores.id IN (?)", matching)

	ranking := filter.NewFilterHelper()
	if params.HasLocation() {
		expr, args := filter.DistanceColumn("stores.latitude", "stores.longitude", *params.Latitude, *params.Longitude)
		query = query.Select("stores.*, "+expr+" AS distance", args...)
		ranking.OrderBy([]string{"distance"}, filter.Asc)
	} else {
		ranking.OrderBy([]string{"stores.rating", "stores.rating_count"}, filter.Desc)
	}

	var storeModels []*models.StoreModel
	if err := ranking.Apply(query).
		Preload("OperationalHours.Shifts").
		Preload("Categories").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&storeModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find stores: %w", err)
	}

	stores := make([]*domain.DiscoveredStore, len(storeModels))
	for i, model := range storeModels {
		stores[i] = &domain.DiscoveredStore{
			Store:      *mappers.ToDomainStore(model),
			DistanceKm: model.Distance,
		}
	}

	return stores, total, nil
}

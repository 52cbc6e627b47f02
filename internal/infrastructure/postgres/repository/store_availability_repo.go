package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/models"
)

type DefaultStoreAvailabilityRepository struct {
	DB *gorm.DB
}

func NewDefaultStoreAvailabilityRepository(db *gorm.DB) *DefaultStoreAvailabilityRepository {
	return &DefaultStoreAvailabilityRepository{DB: db}
}

func (r *DefaultStoreAvailabilityRepository) SetStoreOpen(ctx context.Context, storeID string, isOpen bool) error {
	return r.update(ctx, storeID, "is_store_open", isOpen)
}

func (r *DefaultStoreAvailabilityRepository) SetStoreStatus(ctx context.Context, storeID string, status domain.StoreStatus) error {
	return r.update(ctx, storeID, "status", string(status))
}

func (r *DefaultStoreAvailabilityRepository) update(ctx context.Context, storeID, column string, value any) error {
	result := r.DB.WithContext(ctx).
		Model(&models.StoreModel{}).
		Where("id = ?", storeID).
		Update(column, value)
	if result.Error != nil {
		return fmt.Errorf("failed to update store %s: %w", column, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrStoreNotFound, storeID)
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/models"
)

type DefaultPriceBandRepository struct {
	DB *gorm.DB
}

func NewDefaultPriceBandRepository(db *gorm.DB) *DefaultPriceBandRepository {
	return &DefaultPriceBandRepository{DB: db}
}

// GetPriceBandByID returns nil without error when the band does not exist.
func (r *DefaultPriceBandRepository) GetPriceBandByID(ctx context.Context, id string) (*domain.PriceBand, error) {
	var model models.PriceBandModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mappers.ToDomainPriceBand(&model), nil
}

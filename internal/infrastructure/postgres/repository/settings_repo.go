package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/models"
)

type DefaultSettingsRepository struct {
	DB *gorm.DB
}

func NewDefaultSettingsRepository(db *gorm.DB) *DefaultSettingsRepository {
	return &DefaultSettingsRepository{DB: db}
}

func (r *DefaultSettingsRepository) FindByName(ctx context.Context, name string) (*domain.Setting, error) {
	var model models.SettingModel
	if err := r.DB.WithContext(ctx).First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSettingNotFound, name)
		}
		return nil, err
	}

	return &domain.Setting{Name: model.Name, Value: model.Value}, nil
}

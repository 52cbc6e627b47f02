package mappers

import (
	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/models"
)

func ToDomainStore(model *models.StoreModel) *domain.Store {
	store := &domain.Store{
		ID:           model.ID,
		MerchantID:   model.MerchantID,
		Name:         model.Name,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		IsStoreOpen:  model.IsStoreOpen,
		IsOpen24h:    model.IsOpen24h,
		AveragePrice: model.AveragePrice,
		RatingCount:  model.RatingCount,
		Rating:       model.Rating,
		DeliveryType: domain.DeliveryType(model.DeliveryType),
		Status:       domain.StoreStatus(model.Status),
		ApprovedAt:   model.ApprovedAt,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}

	for i := range model.OperationalHours {
		store.OperationalHours = append(store.OperationalHours, ToDomainOperationalHour(&model.OperationalHours[i]))
	}
	for _, c := range model.Categories {
		store.Categories = append(store.Categories, &domain.Category{ID: c.ID, Name: c.Name})
	}
	for _, m := range model.Menus {
		store.Menus = append(store.Menus, &domain.Menu{ID: m.ID, StoreID: m.StoreID, Name: m.Name, Price: m.Price})
	}

	return store
}

func ToDomainOperationalHour(model *models.OperationalHourModel) *domain.OperationalHour {
	oh := &domain.OperationalHour{
		ID:        model.ID,
		StoreID:   model.StoreID,
		DayOfWeek: model.DayOfWeek,
		IsOpen:    model.IsOpen,
		IsOpen24h: model.IsOpen24h,
	}
	for _, s := range model.Shifts {
		oh.Shifts = append(oh.Shifts, &domain.Shift{
			ID:                s.ID,
			OperationalHourID: s.OperationalHourID,
			OpenHour:          s.OpenHour,
			CloseHour:         s.CloseHour,
			IsActive:          s.IsActive,
		})
	}
	return oh
}

func ToDomainPriceBand(model *models.PriceBandModel) *domain.PriceBand {
	return &domain.PriceBand{
		ID:       model.ID,
		Name:     model.Name,
		MinPrice: model.MinPrice,
		MaxPrice: model.MaxPrice,
	}
}

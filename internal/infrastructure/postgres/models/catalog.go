package models

import "time"

type MerchantModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string `gorm:"not null"`
	PromoType *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MerchantModel) TableName() string {
	return "merchants"
}

type CategoryModel struct {
	ID        string                  `gorm:"primaryKey;type:uuid"`
	Name      string                  `gorm:"not null"`
	Languages []CategoryLanguageModel `gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}

type CategoryLanguageModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	CategoryID string `gorm:"type:uuid;index"`
	Lang       string `gorm:"type:varchar(8)"`
	Name       string
}

func (CategoryLanguageModel) TableName() string {
	return "category_languages"
}

type MenuModel struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	StoreID   string  `gorm:"type:uuid;index:idx_menus_store"`
	Name      string  `gorm:"not null"`
	Price     float64 `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MenuModel) TableName() string {
	return "menus"
}

type SettingModel struct {
	Name      string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (SettingModel) TableName() string {
	return "settings"
}

type PriceBandModel struct {
	ID       string  `gorm:"primaryKey;type:uuid"`
	Name     string  `gorm:"not null"`
	MinPrice float64 `gorm:"not null"`
	MaxPrice float64 `gorm:"not null"`
}

func (PriceBandModel) TableName() string {
	return "price_bands"
}

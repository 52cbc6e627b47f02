package models

import (
	"time"

	"gorm.io/gorm"
)

type StoreModel struct {
	ID               string         `gorm:"primaryKey;type:uuid"`
	MerchantID       string         `gorm:"type:uuid;index:idx_stores_merchant"`
	Merchant         *MerchantModel `gorm:"foreignKey:MerchantID"`
	Name             string         `gorm:"not null"`
	Latitude         float64        `gorm:"not null;default:-6.1753924"`
	Longitude        float64        `gorm:"not null;default:106.8271528"`
	IsStoreOpen      bool           `gorm:"default:false"`
	IsOpen24h        bool           `gorm:"column:is_open_24h;default:false"`
	AveragePrice     float64        `gorm:"default:0"`
	RatingCount      int64          `gorm:"default:0"`
	Rating           float64        `gorm:"default:0"`
	DeliveryType     string         `gorm:"default:'delivery'"`
	Status           string         `gorm:"index:idx_stores_status;default:'inactive'"`
	ApprovedAt       *time.Time
	OperationalHours []OperationalHourModel `gorm:"foreignKey:StoreID"`
	Categories       []CategoryModel        `gorm:"many2many:store_categories;foreignKey:ID;joinForeignKey:StoreID;References:ID;joinReferences:CategoryID"`
	Menus            []MenuModel            `gorm:"foreignKey:StoreID"`
	// Filled only by ranked discovery queries.
	Distance  *float64 `gorm:"->;-:migration"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (StoreModel) TableName() string {
	return "stores"
}

type OperationalHourModel struct {
	ID        string       `gorm:"primaryKey;type:uuid"`
	StoreID   string       `gorm:"type:uuid;index:idx_operational_hours_store"`
	DayOfWeek int          `gorm:"not null"`
	IsOpen    bool         `gorm:"default:true"`
	IsOpen24h bool         `gorm:"column:is_open_24h;default:false"`
	Shifts    []ShiftModel `gorm:"foreignKey:OperationalHourID"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (OperationalHourModel) TableName() string {
	return "operational_hours"
}

type ShiftModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	OperationalHourID string `gorm:"type:uuid;index:idx_shifts_operational_hour"`
	OpenHour          string `gorm:"type:varchar(5);not null"`
	CloseHour         string `gorm:"type:varchar(5);not null"`
	IsActive          bool   `gorm:"default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ShiftModel) TableName() string {
	return "shifts"
}

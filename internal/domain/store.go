package domain

import "time"

type StoreStatus string

const (
	StoreStatusActive    StoreStatus = "active"
	StoreStatusInactive  StoreStatus = "inactive"
	StoreStatusSuspended StoreStatus = "suspended"
)

type DeliveryType string

const (
	DeliveryTypeDelivery          DeliveryType = "delivery"
	DeliveryTypePickup            DeliveryType = "pickup"
	DeliveryTypeDeliveryAndPickup DeliveryType = "delivery_and_pickup"
)

type PromoType string

const (
	PromoTypeDiscount     PromoType = "discount"
	PromoTypeFreeDelivery PromoType = "free_delivery"
	PromoTypeCashback     PromoType = "cashback"
)

func (p PromoType) Valid() bool {
	switch p {
	case PromoTypeDiscount, PromoTypeFreeDelivery, PromoTypeCashback:
		return true
	}
	return false
}

// Coordinates used for stores whose location was never set (Jakarta, Monas).
const (
	DefaultLatitude  = -6.1753924
	DefaultLongitude = 106.8271528
)

type Store struct {
	ID               string
	MerchantID       string
	Name             string
	Latitude         float64
	Longitude        float64
	IsStoreOpen      bool
	IsOpen24h        bool
	AveragePrice     float64
	RatingCount      int64
	Rating           float64
	DeliveryType     DeliveryType
	Status           StoreStatus
	ApprovedAt       *time.Time
	OperationalHours []*OperationalHour
	Categories       []*Category
	Menus            []*Menu
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OperationalHour struct {
	ID        string
	StoreID   string
	DayOfWeek int
	IsOpen    bool
	IsOpen24h bool
	Shifts    []*Shift
}

type Shift struct {
	ID                string
	OperationalHourID string
	OpenHour          string // HH:mm
	CloseHour         string // HH:mm
	IsActive          bool
}

type Category struct {
	ID   string
	Name string
}

type Menu struct {
	ID      string
	StoreID string
	Name    string
	Price   float64
}

type PriceBand struct {
	ID       string
	Name     string
	MinPrice float64
	MaxPrice float64
}

type Setting struct {
	Name  string
	Value string
}

// DiscoveredStore is a store returned by discovery, annotated with data
// derived for the caller's position and the current business time.
type DiscoveredStore struct {
	Store
	DistanceKm *float64
	IsOpenNow  bool
}

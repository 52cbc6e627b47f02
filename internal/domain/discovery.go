package domain

import "context"

// StoreFilterParams is the normalized, typed parameter bag of a discovery
// request. Nil pointers and empty strings mean "not requested".
type StoreFilterParams struct {
	CategoryID            string
	IncludeInactiveStores bool
	Distance              *float64
	Latitude              *float64
	Longitude             *float64
	IsOpen24h             bool
	FavoriteThisWeek      bool
	Pickup                bool
	MerchantID            string
	Budget                *float64
	NewThisWeek           bool
	MinimumRating         *float64
	PriceBandID           string
	PromoType             PromoType
	Search                string
	IncludeClosedStores   bool
}

// HasLocation reports whether the caller supplied both coordinates.
func (p *StoreFilterParams) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

type StorePage struct {
	Page  int
	Limit int
}

func (p StorePage) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

type StoreDiscoveryRepository interface {
	FindStores(ctx context.Context, params *StoreFilterParams, page StorePage) ([]*DiscoveredStore, int64, error)
}

type SettingsRepository interface {
	FindByName(ctx context.Context, name string) (*Setting, error)
}

type PriceBandRepository interface {
	GetPriceBandByID(ctx context.Context, id string) (*PriceBand, error)
}

type FavoriteStore struct {
	StoreID string `json:"store_id"`
}

// FavoritesClient talks to the order service.
type FavoritesClient interface {
	GetFavoriteStoreThisWeek(ctx context.Context) ([]FavoriteStore, error)
}

// RequestedFilters names the optional filters the caller asked for.
func (p *StoreFilterParams) RequestedFilters() []string {
	var names []string
	add := func(ok bool, name string) {
		if ok {
			names = append(names, name)
		}
	}
	add(p.CategoryID != "", "category")
	add(p.IncludeInactiveStores, "include_inactive_stores")
	add(p.HasLocation(), "radius")
	add(p.FavoriteThisWeek, "favorite_this_week")
	add(p.IsOpen24h, "is_open_24h")
	add(p.Pickup, "pickup")
	add(p.MerchantID != "", "merchant")
	add(p.Budget != nil, "budget")
	add(p.NewThisWeek, "new_this_week")
	add(p.MinimumRating != nil, "minimum_rating")
	add(p.PriceBandID != "", "price_band")
	add(p.PromoType != "", "promo_type")
	add(p.Search != "", "search")
	add(p.IncludeClosedStores, "include_closed_stores")
	return names
}

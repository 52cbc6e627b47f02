package discoverydto

// DiscoverStoresInput is the typed form of a discovery request. Optional
// numbers are pointers; zero Page or Limit means the default.
type DiscoverStoresInput struct {
	CategoryID            string   `json:"category_id" validate:"omitempty,uuid"`
	IncludeInactiveStores bool     `json:"include_inactive_stores"`
	Distance              *float64 `json:"distance" validate:"omitempty,gt=0"`
	Latitude              *float64 `json:"location_latitude" validate:"omitempty,min=-90,max=90"`
	Longitude             *float64 `json:"location_longitude" validate:"omitempty,min=-180,max=180"`
	IsOpen24h             bool     `json:"is_open_24h"`
	FavoriteThisWeek      bool     `json:"favorite_this_week"`
	Pickup                bool     `json:"pickup"`
	MerchantID            string   `json:"merchant_id" validate:"omitempty,uuid"`
	Budget                *float64 `json:"budget" validate:"omitempty,gte=0"`
	NewThisWeek           bool     `json:"new_this_week"`
	MinimumRating         *float64 `json:"minimum_rating" validate:"omitempty,min=0,max=5"`
	PriceBandID           string   `json:"price_band_id" validate:"omitempty,uuid"`
	PromoType             string   `json:"promo_type" validate:"omitempty,oneof=discount free_delivery cashback"`
	Search                string   `json:"search" validate:"max=100"`
	IncludeClosedStores   bool     `json:"include_closed_stores"`
	Page                  int      `json:"page" validate:"gte=0"`
	Limit                 int      `json:"limit" validate:"gte=0"`
}

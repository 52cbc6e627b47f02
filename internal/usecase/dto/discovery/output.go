package discoverydto

type CategoryOutput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StoreOutput struct {
	ID           string           `json:"id"`
	MerchantID   string           `json:"merchant_id"`
	Name         string           `json:"name"`
	Latitude     float64          `json:"latitude"`
	Longitude    float64          `json:"longitude"`
	Rating       float64          `json:"rating"`
	RatingCount  int64            `json:"rating_count"`
	AveragePrice float64          `json:"average_price"`
	DeliveryType string           `json:"delivery_type"`
	Status       string           `json:"status"`
	IsOpen24h    bool             `json:"is_open_24h"`
	DistanceKm   *float64         `json:"distance_km,omitempty"`
	IsOpenNow    bool             `json:"is_open_now"`
	Categories   []CategoryOutput `json:"categories"`
}

type DiscoverStoresOutput struct {
	Stores []StoreOutput `json:"stores"`
	Total  int64         `json:"total"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

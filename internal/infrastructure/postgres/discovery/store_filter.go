// Package discovery assembles the store discovery query: the join skeleton
// of the store aggregate plus the ordered list of optional predicates.
package discovery

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/filter"
)

// Predicate aliases, unique within one discovery query.
const (
	AliasCategory          = "category_id"
	AliasStoreStatus       = "store_status"
	AliasRadius            = "radius"
	AliasFavorites         = "favorite_store_ids"
	AliasOpen24h           = "is_open_24h"
	AliasDeliveryType      = "delivery_type"
	AliasMerchant          = "merchant_id"
	AliasBudget            = "budget"
	AliasNewThisWeek       = "new_this_week"
	AliasMinimumRating     = "minimum_rating"
	AliasPriceBand         = "price_band"
	AliasPromoType         = "promo_type"
	AliasOperationalStatus = "operational_status"
	AliasSearch            = "search"
)

var joinSkeleton = []string{
	"LEFT JOIN operational_hours ON operational_hours.store_id = stores.id AND operational_hours.deleted_at IS NULL",
	"LEFT JOIN shifts ON shifts.operational_hour_id = operational_hours.id",
	"LEFT JOIN merchants ON merchants.id = stores.merchant_id",
	"LEFT JOIN store_categories ON store_categories.store_id = stores.id",
	"LEFT JOIN categories ON categories.id = store_categories.category_id",
	"LEFT JOIN category_languages ON category_languages.category_id = categories.id",
	"LEFT JOIN menus ON menus.store_id = stores.id",
}

type Config struct {
	RadiusSettingName string
}

// StoreFilter is built once per process; every Apply call works on its own
// predicate list and shares nothing with concurrent requests.
type StoreFilter struct {
	settings   domain.SettingsRepository
	priceBands domain.PriceBandRepository
	favorites  domain.FavoritesClient
	calendar   *domain.BusinessCalendar
	cfg        Config
}

func NewStoreFilter(
	settings domain.SettingsRepository,
	priceBands domain.PriceBandRepository,
	favorites domain.FavoritesClient,
	calendar *domain.BusinessCalendar,
	cfg Config,
) *StoreFilter {
	return &StoreFilter{
		settings:   settings,
		priceBands: priceBands,
		favorites:  favorites,
		calendar:   calendar,
		cfg:        cfg,
	}
}

// Apply joins the store aggregate onto base and folds every predicate
// resolved from params.
func (f *StoreFilter) Apply(ctx context.Context, base *gorm.DB, params *domain.StoreFilterParams) (*gorm.DB, error) {
	helper, err := f.Helper(ctx, params)
	if err != nil {
		return nil, err
	}
	return helper.Apply(Joins(base)), nil
}

// Joins declares the LEFT JOIN skeleton. Stores without schedules,
// categories or menus stay eligible.
func Joins(db *gorm.DB) *gorm.DB {
	for _, j := range joinSkeleton {
		db = db.Joins(j)
	}
	return db
}

// Helper resolves auxiliary values from collaborators and returns the
// composer holding the ordered predicate list.
func (f *StoreFilter) Helper(ctx context.Context, params *domain.StoreFilterParams) (*filter.FilterHelper, error) {
	now := f.calendar.Current()

	radius, err := f.resolveRadius(ctx, params)
	if err != nil {
		return nil, err
	}

	favoriteIDs, err := f.resolveFavorites(ctx, params)
	if err != nil {
		return nil, err
	}

	priceFrom, priceTo, err := f.resolvePriceBand(ctx, params)
	if err != nil {
		return nil, err
	}

	var weekFrom, weekTo *string
	if params.NewThisWeek {
		weekFrom, weekTo = &now.WeekStart, &now.Tomorrow
	}

	queries := []filter.Query{
		filter.Equal(AliasCategory, "categories.id", params.CategoryID),
		filter.In(AliasStoreStatus, "stores.status", statusSet(params.IncludeInactiveStores)),
		filter.Radius(AliasRadius, "stores.latitude", "stores.longitude", params.Latitude, params.Longitude, radius),
		// an empty favorites list leaves the request unfiltered
		filter.In(AliasFavorites, "stores.id", favoriteIDs),
		filter.Flag(AliasOpen24h, "stores.is_open_24h", params.IsOpen24h),
		filter.In(AliasDeliveryType, "stores.delivery_type", deliveryTypes(params.Pickup)),
		filter.Equal(AliasMerchant, "stores.merchant_id", params.MerchantID),
		filter.To(AliasBudget, "stores.average_price", params.Budget),
		filter.Between(AliasNewThisWeek, "stores.approved_at", weekFrom, weekTo),
		filter.From(AliasMinimumRating, "stores.rating", params.MinimumRating),
		filter.Between(AliasPriceBand, "stores.average_price", priceFrom, priceTo),
		filter.Equal(AliasPromoType, "merchants.promo_type", string(params.PromoType)),
		OperationalStatus(now, params.IncludeClosedStores, params.IsOpen24h),
	}

	if params.Search != "" {
		queries = append(queries, filter.Bracket(AliasSearch,
			filter.ILike("search_store_name", "stores.name", params.Search),
			filter.ILike("search_menu_name", "menus.name", params.Search),
		))
	}

	return filter.NewFilterHelper().SetQueries(queries...), nil
}

func (f *StoreFilter) resolveRadius(ctx context.Context, params *domain.StoreFilterParams) (float64, error) {
	if params.Distance != nil && *params.Distance > 0 {
		return *params.Distance, nil
	}
	if !params.HasLocation() {
		return 0, nil
	}

	setting, err := f.settings.FindByName(ctx, f.cfg.RadiusSettingName)
	if err != nil {
		return 0, fmt.Errorf("failed to get default search radius: %w", err)
	}
	radius, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", domain.ErrInvalidSettingValue, setting.Name, setting.Value)
	}
	return radius, nil
}

func (f *StoreFilter) resolveFavorites(ctx context.Context, params *domain.StoreFilterParams) ([]string, error) {
	if !params.FavoriteThisWeek {
		return nil, nil
	}

	favorites, err := f.favorites.GetFavoriteStoreThisWeek(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite stores: %w", err)
	}

	ids := make([]string, 0, len(favorites))
	for _, fav := range favorites {
		ids = append(ids, fav.StoreID)
	}
	return ids, nil
}

func (f *StoreFilter) resolvePriceBand(ctx context.Context, params *domain.StoreFilterParams) (*float64, *float64, error) {
	if params.PriceBandID == "" {
		return nil, nil, nil
	}

	band, err := f.priceBands.GetPriceBandByID(ctx, params.PriceBandID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get price band: %w", err)
	}
	if band == nil {
		return nil, nil, nil
	}
	return &band.MinPrice, &band.MaxPrice, nil
}

func statusSet(includeInactive bool) []string {
	if includeInactive {
		return []string{string(domain.StoreStatusActive), string(domain.StoreStatusInactive)}
	}
	return []string{string(domain.StoreStatusActive)}
}

func deliveryTypes(pickup bool) []string {
	if !pickup {
		return nil
	}
	return []string{string(domain.DeliveryTypePickup), string(domain.DeliveryTypeDeliveryAndPickup)}
}

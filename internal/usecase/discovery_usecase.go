package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/metrics"
	discoverydto "github.com/LavaJover/shvark-merchant-service/internal/usecase/dto/discovery"
	"github.com/go-playground/validator/v10"
	"github.com/jaevor/go-nanoid"
)

type StoreDiscoveryUsecase interface {
	DiscoverStores(ctx context.Context, input *discoverydto.DiscoverStoresInput) (*discoverydto.DiscoverStoresOutput, error)
}

type DiscoveryOptions struct {
	DefaultPageSize int
	MaxPageSize     int
}

type DefaultStoreDiscoveryUsecase struct {
	StoreRepo   domain.StoreDiscoveryRepository
	Calendar    *domain.BusinessCalendar
	Metrics     *metrics.DiscoveryMetrics
	EventLogger logger.DiscoveryEventLogger
	Logger      *slog.Logger
	Options     DiscoveryOptions

	validate  *validator.Validate
	requestID func() string
}

func NewDefaultStoreDiscoveryUsecase(
	storeRepo domain.StoreDiscoveryRepository,
	calendar *domain.BusinessCalendar,
	discoveryMetrics *metrics.DiscoveryMetrics,
	eventLogger logger.DiscoveryEventLogger,
	log *slog.Logger,
	opts DiscoveryOptions,
) (*DefaultStoreDiscoveryUsecase, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 20
	}
	if opts.MaxPageSize < opts.DefaultPageSize {
		opts.MaxPageSize = opts.DefaultPageSize
	}
	if log == nil {
		log = slog.Default()
	}

	return &DefaultStoreDiscoveryUsecase{
		StoreRepo:   storeRepo,
		Calendar:    calendar,
		Metrics:     discoveryMetrics,
		EventLogger: eventLogger,
		Logger:      log,
		Options:     opts,
		validate:    validator.New(),
		requestID:   idGenerator,
	}, nil
}

func (uc *DefaultStoreDiscoveryUsecase) DiscoverStores(ctx context.Context, input *discoverydto.DiscoverStoresInput) (*discoverydto.DiscoverStoresOutput, error) {
	start := time.Now()
	requestID := uc.requestID()
	log := uc.Logger.With("request_id", requestID)

	params, page, err := uc.normalize(input)
	if err != nil {
		log.Warn("rejected discovery request", "error", err)
		uc.record("invalid", start, 0, nil)
		return nil, err
	}

	stores, total, err := uc.StoreRepo.FindStores(ctx, params, page)
	if err != nil {
		uc.recordCollaboratorError(err)
		uc.record("error", start, 0, nil)
		uc.logEvent(ctx, log, requestID, params, 0, err)
		log.Error("store discovery failed", "error", err)
		return nil, fmt.Errorf("failed to discover stores: %w", err)
	}

	moment := uc.Calendar.Current()
	output := &discoverydto.DiscoverStoresOutput{
		Stores: make([]discoverydto.StoreOutput, 0, len(stores)),
		Total:  total,
		Page:   page.Page,
		Limit:  page.Limit,
	}
	for _, s := range stores {
		if s.DistanceKm == nil && params.HasLocation() {
			d := domain.Distance(*params.Latitude, *params.Longitude, s.Latitude, s.Longitude)
			s.DistanceKm = &d
		}
		s.IsOpenNow = s.IsAvailable(domain.AvailabilityQuery{
			DayOfWeek: moment.DayOfWeek,
			Clock:     moment.Clock,
		})
		output.Stores = append(output.Stores, toStoreOutput(s))
	}

	uc.record("success", start, total, params.RequestedFilters())
	uc.logEvent(ctx, log, requestID, params, total, nil)
	log.Info("stores discovered", "total", total, "returned", len(output.Stores), "page", page.Page)

	return output, nil
}

func (uc *DefaultStoreDiscoveryUsecase) normalize(input *discoverydto.DiscoverStoresInput) (*domain.StoreFilterParams, domain.StorePage, error) {
	if input == nil {
		input = &discoverydto.DiscoverStoresInput{}
	}
	if err := uc.validate.Struct(input); err != nil {
		return nil, domain.StorePage{}, fmt.Errorf("%w: %s", domain.ErrInvalidFilter, describeValidation(err))
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domain.StorePage{}, fmt.Errorf("%w: location_latitude and location_longitude go together", domain.ErrInvalidFilter)
	}
	if input.Limit > uc.Options.MaxPageSize {
		return nil, domain.StorePage{}, fmt.Errorf("%w: limit must not exceed %d", domain.ErrInvalidFilter, uc.Options.MaxPageSize)
	}

	page := domain.StorePage{Page: input.Page, Limit: input.Limit}
	if page.Page == 0 {
		page.Page = 1
	}
	if page.Limit == 0 {
		page.Limit = uc.Options.DefaultPageSize
	}

	return &domain.StoreFilterParams{
		CategoryID:            input.CategoryID,
		IncludeInactiveStores: input.IncludeInactiveStores,
		Distance:              input.Distance,
		Latitude:              input.Latitude,
		Longitude:             input.Longitude,
		IsOpen24h:             input.IsOpen24h,
		FavoriteThisWeek:      input.FavoriteThisWeek,
		Pickup:                input.Pickup,
		MerchantID:            input.MerchantID,
		Budget:                input.Budget,
		NewThisWeek:           input.NewThisWeek,
		MinimumRating:         input.MinimumRating,
		PriceBandID:           input.PriceBandID,
		PromoType:             domain.PromoType(input.PromoType),
		Search:                strings.TrimSpace(input.Search),
		IncludeClosedStores:   input.IncludeClosedStores,
	}, page, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(fields, ", ")
}

func (uc *DefaultStoreDiscoveryUsecase) record(outcome string, start time.Time, total int64, filters []string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordDiscovery(outcome, time.Since(start).Seconds(), total, filters)
}

func (uc *DefaultStoreDiscoveryUsecase) recordCollaboratorError(err error) {
	if uc.Metrics == nil {
		return
	}
	switch {
	case errors.Is(err, domain.ErrFavoritesUnavailable):
		uc.Metrics.RecordCollaboratorError("order_service")
	case errors.Is(err, domain.ErrSettingNotFound), errors.Is(err, domain.ErrInvalidSettingValue):
		uc.Metrics.RecordCollaboratorError("settings")
	default:
		uc.Metrics.RecordCollaboratorError("database")
	}
}

func (uc *DefaultStoreDiscoveryUsecase) logEvent(ctx context.Context, log *slog.Logger, requestID string, params *domain.StoreFilterParams, total int64, cause error) {
	if uc.EventLogger == nil {
		return
	}
	event := logger.DiscoverySearchEvent{
		RequestID:      requestID,
		Search:         params.Search,
		Latitude:       params.Latitude,
		Longitude:      params.Longitude,
		AppliedFilters: strings.Join(params.RequestedFilters(), ","),
		ResultCount:    total,
		Timestamp:      time.Now(),
	}
	if cause != nil {
		event.Failed = true
		event.Reason = cause.Error()
	}
	if err := uc.EventLogger.LogDiscovery(ctx, event); err != nil {
		log.Warn("failed to save discovery event", "error", err)
	}
}

func toStoreOutput(s *domain.DiscoveredStore) discoverydto.StoreOutput {
	out := discoverydto.StoreOutput{
		ID:           s.ID,
		MerchantID:   s.MerchantID,
		Name:         s.Name,
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
		Rating:       s.Rating,
		RatingCount:  s.RatingCount,
		AveragePrice: s.AveragePrice,
		DeliveryType: string(s.DeliveryType),
		Status:       string(s.Status),
		IsOpen24h:    s.IsOpen24h,
		DistanceKm:   s.DistanceKm,
		IsOpenNow:    s.IsOpenNow,
		Categories:   make([]discoverydto.CategoryOutput, 0, len(s.Categories)),
	}
	for _, c := range s.Categories {
		out.Categories = append(out.Categories, discoverydto.CategoryOutput{ID: c.ID, Name: c.Name})
	}
	return out
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/metrics"
	discoverydto "github.com/LavaJover/shvark-merchant-service/internal/usecase/dto/discovery"
)

type fakeStoreRepo struct {
	stores []*domain.DiscoveredStore
	total  int64
	err    error

	gotParams *domain.StoreFilterParams
	gotPage   domain.StorePage
	calls     int
}

func (f *fakeStoreRepo) FindStores(_ context.Context, params *domain.StoreFilterParams, page domain.StorePage) ([]*domain.DiscoveredStore, int64, error) {
	f.calls++
	f.gotParams = params
	f.gotPage = page
	return f.stores, f.total, f.err
}

type fakeEventLogger struct {
	events []logger.DiscoverySearchEvent
}

func (f *fakeEventLogger) LogDiscovery(_ context.Context, event logger.DiscoverySearchEvent) error {
	f.events = append(f.events, event)
	return nil
}

func float(v float64) *float64 { return &v }

func newDiscoveryUsecase(t *testing.T, repo *fakeStoreRepo) (*DefaultStoreDiscoveryUsecase, *metrics.DiscoveryMetrics, *fakeEventLogger) {
	calendar := domain.NewBusinessCalendar(7, time.Sunday)
	// Tuesday 03:00 at UTC+7
	calendar.Now = func() time.Time { return time.Date(2024, time.January, 1, 20, 0, 0, 0, time.UTC) }

	m := metrics.NewDiscoveryMetricsWith(prometheus.NewRegistry())
	events := &fakeEventLogger{}
	uc, err := NewDefaultStoreDiscoveryUsecase(repo, calendar, m, events, nil, DiscoveryOptions{DefaultPageSize: 20, MaxPageSize: 50})
	require.NoError(t, err)
	return uc, m, events
}

func overnightStore(id string) *domain.DiscoveredStore {
	return &domain.DiscoveredStore{Store: domain.Store{
		ID:          id,
		Name:        "Warung " + id,
		Latitude:    -6.2,
		Longitude:   106.8,
		IsStoreOpen: true,
		OperationalHours: []*domain.OperationalHour{{
			DayOfWeek: 2,
			IsOpen:    true,
			Shifts:    []*domain.Shift{{OpenHour: "22:00", CloseHour: "04:00", IsActive: true}},
		}},
		Categories: []*domain.Category{{ID: "c1", Name: "Coffee"}},
	}}
}

func TestDiscoverStores_DefaultsAndAnnotations(t *testing.T) {
	closed := overnightStore("s2")
	closed.IsStoreOpen = false
	repo := &fakeStoreRepo{stores: []*domain.DiscoveredStore{overnightStore("s1"), closed}, total: 2}
	uc, m, events := newDiscoveryUsecase(t, repo)

	out, err := uc.DiscoverStores(context.Background(), &discoverydto.DiscoverStoresInput{
		Latitude:  float(-6.1753924),
		Longitude: float(106.8271528),
		Search:    "  kopi ",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StorePage{Page: 1, Limit: 20}, repo.gotPage)
	assert.Equal(t, "kopi", repo.gotParams.Search)
	assert.Equal(t, int64(2), out.Total)
	require.Len(t, out.Stores, 2)

	assert.True(t, out.Stores[0].IsOpenNow)
	assert.False(t, out.Stores[1].IsOpenNow)
	require.NotNil(t, out.Stores[0].DistanceKm)
	assert.InDelta(t, 4.06, *out.Stores[0].DistanceKm, 0.05)
	assert.Equal(t, []discoverydto.CategoryOutput{{ID: "c1", Name: "Coffee"}}, out.Stores[0].Categories)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DiscoveryRequestsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DiscoveryFiltersApplied.WithLabelValues("radius")))
	require.Len(t, events.events, 1)
	assert.Equal(t, "radius,search", events.events[0].AppliedFilters)
	assert.False(t, events.events[0].Failed)
}

func TestDiscoverStores_KeepsRepositoryDistance(t *testing.T) {
	s := overnightStore("s1")
	s.DistanceKm = float(1.5)
	repo := &fakeStoreRepo{stores: []*domain.DiscoveredStore{s}, total: 1}
	uc, _, _ := newDiscoveryUsecase(t, repo)

	out, err := uc.DiscoverStores(context.Background(), &discoverydto.DiscoverStoresInput{
		Latitude:  float(0),
		Longitude: float(0),
		Page:      3,
		Limit:     10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.5, *out.Stores[0].DistanceKm)
	assert.Equal(t, 3, out.Page)
	assert.Equal(t, 10, out.Limit)
	assert.Equal(t, 20, repo.gotPage.Offset())
}

func TestDiscoverStores_NoLocationLeavesDistanceEmpty(t *testing.T) {
	repo := &fakeStoreRepo{stores: []*domain.DiscoveredStore{overnightStore("s1")}, total: 1}
	uc, _, _ := newDiscoveryUsecase(t, repo)

	out, err := uc.DiscoverStores(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, out.Stores[0].DistanceKm)
}

func TestDiscoverStores_RejectsInvalidInput(t *testing.T) {
	cases := map[string]*discoverydto.DiscoverStoresInput{
		"latitude out of range":  {Latitude: float(91), Longitude: float(0)},
		"longitude out of range": {Latitude: float(0), Longitude: float(-181)},
		"latitude alone":         {Latitude: float(1)},
		"unknown promo":          {PromoType: "bogo"},
		"negative page":          {Page: -1},
		"limit above max":        {Limit: 51},
		"category not uuid":      {CategoryID: "coffee"},
		"rating above five":      {MinimumRating: float(6)},
		"negative budget":        {Budget: float(-1)},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &fakeStoreRepo{}
			uc, m, _ := newDiscoveryUsecase(t, repo)

			_, err := uc.DiscoverStores(context.Background(), input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidFilter)
			assert.Zero(t, repo.calls)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.DiscoveryRequestsTotal.WithLabelValues("invalid")))
		})
	}
}

func TestDiscoverStores_AcceptsValidEnums(t *testing.T) {
	repo := &fakeStoreRepo{}
	uc, _, _ := newDiscoveryUsecase(t, repo)

	_, err := uc.DiscoverStores(context.Background(), &discoverydto.DiscoverStoresInput{
		PromoType:  "free_delivery",
		CategoryID: "9b2e8e0e-6a4f-4a55-9a43-3f1f9f6c2a10",
		Limit:      50,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PromoTypeFreeDelivery, repo.gotParams.PromoType)
}

func TestDiscoverStores_CollaboratorFailure(t *testing.T) {
	cases := []struct {
		err          error
		collaborator string
	}{
		{fmt.Errorf("order service: %w", domain.ErrFavoritesUnavailable), "order_service"},
		{fmt.Errorf("radius: %w", domain.ErrSettingNotFound), "settings"},
		{errors.New("connection reset"), "database"},
	}

	for _, tc := range cases {
		t.Run(tc.collaborator, func(t *testing.T) {
			repo := &fakeStoreRepo{err: tc.err}
			uc, m, events := newDiscoveryUsecase(t, repo)

			_, err := uc.DiscoverStores(context.Background(), &discoverydto.DiscoverStoresInput{FavoriteThisWeek: true})
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.CollaboratorErrorsTotal.WithLabelValues(tc.collaborator)))
			assert.Equal(t, 1.0, testutil.ToFloat64(m.DiscoveryRequestsTotal.WithLabelValues("error")))
			require.Len(t, events.events, 1)
			assert.True(t, events.events[0].Failed)
		})
	}
}

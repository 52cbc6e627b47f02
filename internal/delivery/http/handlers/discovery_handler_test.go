package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	discoverydto "github.com/LavaJover/shvark-merchant-service/internal/usecase/dto/discovery"
)

type stubDiscoveryUsecase struct {
	input  *discoverydto.DiscoverStoresInput
	output *discoverydto.DiscoverStoresOutput
	err    error
}

func (s *stubDiscoveryUsecase) DiscoverStores(_ context.Context, input *discoverydto.DiscoverStoresInput) (*discoverydto.DiscoverStoresOutput, error) {
	s.input = input
	return s.output, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseDiscoverQuery(t *testing.T) {
	q := url.Values{}
	q.Set("category_id", " 9b2e8e0e-6a4f-4a55-9a43-3f1f9f6c2a10 ")
	q.Set("location_latitude", "-6.1753924")
	q.Set("location_longitude", "106.8271528")
	q.Set("distance", "2.5")
	q.Set("is_open_24h", "1")
	q.Set("pickup", "true")
	q.Set("favorite_this_week", "false")
	q.Set("budget", "50000")
	q.Set("promo_type", "cashback")
	q.Set("page", "2")
	q.Set("limit", "10")

	input, err := ParseDiscoverQuery(q)
	require.NoError(t, err)

	assert.Equal(t, "9b2e8e0e-6a4f-4a55-9a43-3f1f9f6c2a10", input.CategoryID)
	require.NotNil(t, input.Latitude)
	assert.Equal(t, -6.1753924, *input.Latitude)
	assert.Equal(t, 106.8271528, *input.Longitude)
	assert.Equal(t, 2.5, *input.Distance)
	assert.True(t, input.IsOpen24h)
	assert.True(t, input.Pickup)
	assert.False(t, input.FavoriteThisWeek)
	assert.Equal(t, 50000.0, *input.Budget)
	assert.Nil(t, input.MinimumRating)
	assert.Equal(t, "cashback", input.PromoType)
	assert.Equal(t, 2, input.Page)
	assert.Equal(t, 10, input.Limit)
}

func TestParseDiscoverQuery_Malformed(t *testing.T) {
	cases := map[string]string{
		"pickup":            "yes",
		"location_latitude": "north",
		"budget":            "NaN",
		"distance":          "Inf",
		"page":              "1.5",
	}
	for key, value := range cases {
		_, err := ParseDiscoverQuery(url.Values{key: {value}})
		assert.Error(t, err, key)
	}
}

func TestDiscoverStoresHandler(t *testing.T) {
	distance := 1.2
	uc := &stubDiscoveryUsecase{output: &discoverydto.DiscoverStoresOutput{
		Stores: []discoverydto.StoreOutput{{ID: "s1", Name: "Kopi", DistanceKm: &distance, IsOpenNow: true}},
		Total:  1,
		Page:   1,
		Limit:  20,
	}}
	h := NewDiscoveryHandler(uc, discardLogger(), 0)

	rec := httptest.NewRecorder()
	h.DiscoverStores(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stores/discover?search=kopi", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "kopi", uc.input.Search)

	var body struct {
		Stores []map[string]any `json:"stores"`
		Total  int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Total)
	require.Len(t, body.Stores, 1)
	assert.Equal(t, 1.2, body.Stores[0]["distance_km"])
	assert.Equal(t, true, body.Stores[0]["is_open_now"])
}

func TestDiscoverStoresHandler_Errors(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		err    error
		status int
	}{
		{"malformed query", "?pickup=maybe", nil, http.StatusBadRequest},
		{"invalid filter", "", fmt.Errorf("%w: limit must not exceed 100", domain.ErrInvalidFilter), http.StatusBadRequest},
		{"collaborator failure", "", fmt.Errorf("failed to discover stores: %w", domain.ErrFavoritesUnavailable), http.StatusInternalServerError},
		{"database failure", "", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewDiscoveryHandler(&stubDiscoveryUsecase{err: tc.err}, discardLogger(), 0)
			rec := httptest.NewRecorder()
			h.DiscoverStores(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stores/discover"+tc.query, nil))

			assert.Equal(t, tc.status, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthHandler(stubPinger{}, discardLogger()).Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	NewHealthHandler(stubPinger{err: errors.New("down")}, discardLogger()).Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

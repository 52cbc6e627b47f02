package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/LavaJover/shvark-merchant-service/internal/usecase"
	discoverydto "github.com/LavaJover/shvark-merchant-service/internal/usecase/dto/discovery"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type DiscoveryHandler struct {
	Usecase usecase.StoreDiscoveryUsecase
	Logger  *slog.Logger
	Timeout time.Duration
}

func NewDiscoveryHandler(uc usecase.StoreDiscoveryUsecase, logger *slog.Logger, timeout time.Duration) *DiscoveryHandler {
	return &DiscoveryHandler{
		Usecase: uc,
		Logger:  logger,
		Timeout: timeout,
	}
}

// DiscoverStores serves GET /api/v1/stores/discover.
func (h *DiscoveryHandler) DiscoverStores(w http.ResponseWriter, r *http.Request) {
	input, err := ParseDiscoverQuery(r.URL.Query())
	if err != nil {
		writeJSON(h.Logger, w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ctx := r.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	output, err := h.Usecase.DiscoverStores(ctx, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFilter) {
			writeJSON(h.Logger, w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(h.Logger, w, http.StatusInternalServerError, ErrorResponse{Error: "failed to discover stores"})
		return
	}

	writeJSON(h.Logger, w, http.StatusOK, output)
}

// ParseDiscoverQuery coerces query string values into typed discovery input.
// Absent and empty values stay unset.
func ParseDiscoverQuery(q url.Values) (*discoverydto.DiscoverStoresInput, error) {
	p := queryParser{values: q}
	input := &discoverydto.DiscoverStoresInput{
		CategoryID:            p.str("category_id"),
		IncludeInactiveStores: p.boolean("include_inactive_stores"),
		Distance:              p.float("distance"),
		Latitude:              p.float("location_latitude"),
		Longitude:             p.float("location_longitude"),
		IsOpen24h:             p.boolean("is_open_24h"),
		FavoriteThisWeek:      p.boolean("favorite_this_week"),
		Pickup:                p.boolean("pickup"),
		MerchantID:            p.str("merchant_id"),
		Budget:                p.float("budget"),
		NewThisWeek:           p.boolean("new_this_week"),
		MinimumRating:         p.float("minimum_rating"),
		PriceBandID:           p.str("price_band_id"),
		PromoType:             p.str("promo_type"),
		Search:                p.str("search"),
		IncludeClosedStores:   p.boolean("include_closed_stores"),
		Page:                  p.integer("page"),
		Limit:                 p.integer("limit"),
	}
	if p.err != nil {
		return nil, p.err
	}
	return input, nil
}

// queryParser keeps the first parse error.
type queryParser struct {
	values url.Values
	err    error
}

func (p *queryParser) str(key string) string {
	return strings.TrimSpace(p.values.Get(key))
}

func (p *queryParser) fail(key, raw string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
}

func (p *queryParser) boolean(key string) bool {
	raw := p.str(key)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, raw, err)
		return false
	}
	return v
}

func (p *queryParser) float(key string) *float64 {
	raw := p.str(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = errors.New("not a finite number")
	}
	if err != nil {
		p.fail(key, raw, err)
		return nil
	}
	return &v
}

func (p *queryParser) integer(key string) int {
	raw := p.str(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, raw, err)
		return 0
	}
	return v
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to write response", "error", err)
	}
}

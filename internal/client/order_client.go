package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type favoriteStoresResponse struct {
	Data []domain.FavoriteStore `json:"data"`
}

// HTTPOrderClient reads order history aggregates from the order service.
type HTTPOrderClient struct {
	Address    string
	HTTPClient *http.Client
}

func NewHTTPOrderClient(address string, timeout time.Duration) *HTTPOrderClient {
	return &HTTPOrderClient{
		Address:    address,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// GetFavoriteStoreThisWeek returns the stores most ordered from during the
// current week. An empty body or empty list yields an empty slice.
func (c *HTTPOrderClient) GetFavoriteStoreThisWeek(ctx context.Context) ([]domain.FavoriteStore, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/orders/favorite-stores/this-week", c.Address), nil)
	if err != nil {
		return nil, err
	}

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFavoritesUnavailable, err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if len(responseBodyBytes) == 0 {
			return []domain.FavoriteStore{}, nil
		}
		var favorites favoriteStoresResponse
		if err := json.Unmarshal(responseBodyBytes, &favorites); err != nil {
			return nil, err
		}
		if favorites.Data == nil {
			return []domain.FavoriteStore{}, nil
		}
		return favorites.Data, nil
	}

	var errResp errorResponse
	if err := json.Unmarshal(responseBodyBytes, &errResp); err != nil || errResp.Error == "" {
		return nil, fmt.Errorf("%w: status %d", domain.ErrFavoritesUnavailable, response.StatusCode)
	}
	return nil, fmt.Errorf("%w: %w", domain.ErrFavoritesUnavailable, errors.New(errResp.Error))
}

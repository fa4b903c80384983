package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/places-directory/internal/config"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// geocodeResponse is the subset of the Google Geocoding response the
// ingestion path needs.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NewClient creates a Google Geocoding API client.
func NewClient(cfg *config.GeocodingConfig, logger *zap.Logger) repository.GeocodingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// Geocode resolves an address into a coordinate. Any failure is returned as
// an error; the caller decides whether to substitute the sentinel pair.
func (c *client) Geocode(ctx context.Context, address string) (domain.Coordinate, error) {
	if address == "" {
		return domain.Coordinate{}, fmt.Errorf("address cannot be empty")
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling Geocoding API", zap.String("address", address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return domain.Coordinate{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return domain.Coordinate{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geocoding API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return domain.Coordinate{}, fmt.Errorf("geocoding API error: status %d", resp.StatusCode)
	}

	var geoResp geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return domain.Coordinate{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if geoResp.Status != "OK" || len(geoResp.Results) == 0 {
		c.logger.Warn("Geocoding API returned no result",
			zap.String("address", address),
			zap.String("status", geoResp.Status))
		return domain.Coordinate{}, fmt.Errorf("geocoding returned status %s", geoResp.Status)
	}

	loc := geoResp.Results[0].Geometry.Location
	return domain.Coordinate{Lon: loc.Lng, Lat: loc.Lat}, nil
}

package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/places-directory/internal/config"
	httpDelivery "github.com/places-directory/internal/delivery/http"
	"github.com/places-directory/internal/delivery/http/handler"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedRecordSource struct {
	records map[domain.Category][]domain.RawPlace
}

func (s *fixedRecordSource) LoadAll(ctx context.Context) (map[domain.Category][]domain.RawPlace, error) {
	return s.records, nil
}

func intp(v int) *int { return &v }

func testServer(t *testing.T) *httpDelivery.Server {
	t.Helper()

	logger := zap.NewNop()

	source := &fixedRecordSource{records: map[domain.Category][]domain.RawPlace{
		domain.CategoryCafes: {
			{
				ID:          "cafe-1",
				DisplayName: &domain.RawDisplayName{Text: "Blue Cup"},
				Coordinates: []float64{50.4501, 30.5234},
				RegularOpeningHours: &domain.RawOpeningHours{
					Periods: []domain.RawPeriod{{
						Open: &domain.RawTimePoint{Day: intp(2), Hour: intp(0), Minute: intp(0)},
					}},
				},
			},
		},
		domain.CategoryParks: {
			{
				ID:          "park-1",
				DisplayName: &domain.RawDisplayName{Text: "Hidden Garden"},
				Coordinates: []float64{50.44, 30.51},
			},
		},
	}}

	directory := usecase.NewDirectoryUseCase(source, logger)
	require.NoError(t, directory.Refresh(context.Background(), domain.Instant{Day: 2, Hour: 12, Minute: 0}))

	markers := usecase.NewMarkerUseCase(domain.CameraState{
		Center: domain.Coordinate{Lon: 30.52, Lat: 50.44},
		Zoom:   12,
	}, logger)
	selection := usecase.NewSelectionUseCase(directory, markers, logger)

	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0

	return httpDelivery.NewServer(
		cfg,
		logger,
		handler.NewPlaceHandler(directory, selection, time.UTC, logger),
		handler.NewSelectionHandler(selection, logger),
		handler.NewMarkerHandler(markers, selection, logger),
	)
}

func doJSON(t *testing.T, srv *httpDelivery.Server, method, path string, body any) (*nethttp.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestServer_Routes(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		srv := testServer(t)
		resp, body := doJSON(t, srv, "GET", "/api/v1/health", nil)

		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("categories carry open and total counts", func(t *testing.T) {
		srv := testServer(t)
		resp, body := doJSON(t, srv, "GET", "/api/v1/categories", nil)

		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		categories := data["categories"].([]any)
		require.Len(t, categories, 4)

		first := categories[0].(map[string]any)
		assert.Equal(t, "cafes", first["category"])
		assert.Equal(t, float64(1), first["open_count"])
		assert.Equal(t, float64(1), first["total_count"])
	})

	t.Run("places list for a category", func(t *testing.T) {
		srv := testServer(t)
		resp, body := doJSON(t, srv, "GET", "/api/v1/places/cafes", nil)

		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		places := data["places"].([]any)
		require.Len(t, places, 1)

		place := places[0].(map[string]any)
		assert.Equal(t, "Blue Cup", place["name"])
		assert.Equal(t, true, place["is_open"])
		assert.Equal(t, 30.5234, place["lng"])
		assert.Equal(t, 50.4501, place["lat"])
	})

	t.Run("unknown category path is rejected", func(t *testing.T) {
		srv := testServer(t)
		resp, body := doJSON(t, srv, "GET", "/api/v1/places/museums", nil)

		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "UNKNOWN_CATEGORY", errObj["code"])
	})

	t.Run("selection drives markers", func(t *testing.T) {
		srv := testServer(t)

		resp, body := doJSON(t, srv, "PUT", "/api/v1/selection", map[string]string{"category": "cafes"})
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Equal(t, "cafes", data["selected"])
		assert.Equal(t, float64(1), data["active_count"])

		resp, body = doJSON(t, srv, "GET", "/api/v1/markers", nil)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		data = body["data"].(map[string]any)
		markers := data["markers"].([]any)
		require.Len(t, markers, 1)
		assert.Equal(t, "cafe-1", markers[0].(map[string]any)["place_id"])
	})

	t.Run("empty token clears the selection", func(t *testing.T) {
		srv := testServer(t)

		_, _ = doJSON(t, srv, "PUT", "/api/v1/selection", map[string]string{"category": "cafes"})

		resp, body := doJSON(t, srv, "PUT", "/api/v1/selection", map[string]string{"category": ""})
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Nil(t, data["selected"])
		assert.Equal(t, float64(0), data["active_count"])

		_, body = doJSON(t, srv, "GET", "/api/v1/markers", nil)
		data = body["data"].(map[string]any)
		assert.Empty(t, data["markers"])
	})

	t.Run("unknown selection token keeps prior state", func(t *testing.T) {
		srv := testServer(t)

		_, _ = doJSON(t, srv, "PUT", "/api/v1/selection", map[string]string{"category": "parks"})

		resp, _ := doJSON(t, srv, "PUT", "/api/v1/selection", map[string]string{"category": "hotels"})
		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

		_, body := doJSON(t, srv, "GET", "/api/v1/selection", nil)
		data := body["data"].(map[string]any)
		assert.Equal(t, "parks", data["selected"])
	})

	t.Run("camera survives selection changes", func(t *testing.T) {
		srv := testServer(t)

		resp, _ := doJSON(t, srv, "PUT", "/api/v1/camera", map[string]float64{
			"center_lng": 30.6, "center_lat": 50.5, "zoom": 14, "pitch": 30,
		})
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

		_, _ = doJSON(t, srv, "PUT", "/api/v1/selection", map[string]string{"category": "cafes"})
		_, _ = doJSON(t, srv, "PUT", "/api/v1/selection", map[string]string{"category": "none"})

		_, body := doJSON(t, srv, "GET", "/api/v1/camera", nil)
		data := body["data"].(map[string]any)
		assert.Equal(t, 30.6, data["center_lng"])
		assert.Equal(t, 50.5, data["center_lat"])
		assert.Equal(t, float64(14), data["zoom"])
		assert.Equal(t, float64(30), data["pitch"])
	})

	t.Run("camera validation rejects out of range zoom", func(t *testing.T) {
		srv := testServer(t)

		resp, body := doJSON(t, srv, "PUT", "/api/v1/camera", map[string]float64{
			"center_lng": 30.6, "center_lat": 50.5, "zoom": 42,
		})
		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "INVALID_CAMERA", errObj["code"])
	})

	t.Run("marker sync is idempotent", func(t *testing.T) {
		srv := testServer(t)
		_, _ = doJSON(t, srv, "PUT", "/api/v1/selection", map[string]string{"category": "parks"})

		resp, body := doJSON(t, srv, "POST", "/api/v1/markers/sync", nil)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Empty(t, data["added"])
		assert.Empty(t, data["removed"])
		assert.Equal(t, float64(1), data["total"])
	})
}

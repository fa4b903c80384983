package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockPlaceSourceRepository is a mock of PlaceSourceRepository
type MockPlaceSourceRepository struct {
	mock.Mock
}

func (m *MockPlaceSourceRepository) Load(ctx context.Context, category domain.Category) ([]domain.RawPlace, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawPlace), args.Error(1)
}

// MockGeocodingRepository is a mock of GeocodingRepository
type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) Geocode(ctx context.Context, address string) (domain.Coordinate, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(domain.Coordinate), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetCoordinate(ctx context.Context, address string) (*domain.Coordinate, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coordinate), args.Error(1)
}

func (m *MockCacheRepository) SetCoordinate(ctx context.Context, address string, coord domain.Coordinate, ttl time.Duration) error {
	args := m.Called(ctx, address, coord, ttl)
	return args.Error(0)
}

func TestIngestUseCase_LoadAll(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	ttl := time.Hour

	emptyCategories := func(source *MockPlaceSourceRepository, except domain.Category) {
		for _, category := range domain.Categories() {
			if category != except {
				source.On("Load", ctx, category).Return([]domain.RawPlace{}, nil)
			}
		}
	}

	t.Run("geocodes records without coordinates and caches the result", func(t *testing.T) {
		source := &MockPlaceSourceRepository{}
		geocoder := &MockGeocodingRepository{}
		cache := &MockCacheRepository{}

		rec := rawPlace("bar-1", "Corner Bar", nil)
		rec.FormattedAddress = "Andriivskyi Descent, 10, Kyiv"

		source.On("Load", ctx, domain.CategoryBars).Return([]domain.RawPlace{rec}, nil)
		emptyCategories(source, domain.CategoryBars)

		cache.On("GetCoordinate", ctx, rec.FormattedAddress).Return(nil, nil)
		geocoder.On("Geocode", ctx, rec.FormattedAddress).
			Return(domain.Coordinate{Lon: 30.517, Lat: 50.459}, nil)
		cache.On("SetCoordinate", ctx, rec.FormattedAddress,
			domain.Coordinate{Lon: 30.517, Lat: 50.459}, ttl).Return(nil)

		uc := usecase.NewIngestUseCase(source, geocoder, cache, logger, ttl)

		all, err := uc.LoadAll(ctx)
		require.NoError(t, err)

		bars := all[domain.CategoryBars]
		require.Len(t, bars, 1)
		// Filled coordinates keep the native [lat, lng] order.
		assert.Equal(t, []float64{50.459, 30.517}, bars[0].Coordinates)
		geocoder.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips the geocoding call", func(t *testing.T) {
		source := &MockPlaceSourceRepository{}
		geocoder := &MockGeocodingRepository{}
		cache := &MockCacheRepository{}

		rec := rawPlace("cafe-1", "Cached Cafe", nil)
		rec.FormattedAddress = "Khreshchatyk St, 1, Kyiv"

		source.On("Load", ctx, domain.CategoryCafes).Return([]domain.RawPlace{rec}, nil)
		emptyCategories(source, domain.CategoryCafes)

		cache.On("GetCoordinate", ctx, rec.FormattedAddress).
			Return(&domain.Coordinate{Lon: 30.5234, Lat: 50.4501}, nil)

		uc := usecase.NewIngestUseCase(source, geocoder, cache, logger, ttl)

		all, err := uc.LoadAll(ctx)
		require.NoError(t, err)

		assert.Equal(t, []float64{50.4501, 30.5234}, all[domain.CategoryCafes][0].Coordinates)
		geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})

	t.Run("geocoding failure falls back to the sentinel pair", func(t *testing.T) {
		source := &MockPlaceSourceRepository{}
		geocoder := &MockGeocodingRepository{}
		cache := &MockCacheRepository{}

		rec := rawPlace("park-1", "Lost Park", nil)
		rec.FormattedAddress = "unknown address"

		source.On("Load", ctx, domain.CategoryParks).Return([]domain.RawPlace{rec}, nil)
		emptyCategories(source, domain.CategoryParks)

		cache.On("GetCoordinate", ctx, rec.FormattedAddress).Return(nil, nil)
		geocoder.On("Geocode", ctx, rec.FormattedAddress).
			Return(domain.Coordinate{}, errors.New("ZERO_RESULTS"))

		uc := usecase.NewIngestUseCase(source, geocoder, cache, logger, ttl)

		all, err := uc.LoadAll(ctx)
		require.NoError(t, err, "a failed geocode never aborts ingestion")

		assert.Equal(t, []float64{0, 0}, all[domain.CategoryParks][0].Coordinates)
		cache.AssertNotCalled(t, "SetCoordinate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("records with coordinates or without address are left alone", func(t *testing.T) {
		source := &MockPlaceSourceRepository{}
		geocoder := &MockGeocodingRepository{}
		cache := &MockCacheRepository{}

		withCoords := rawPlace("r-1", "Located", []float64{50.45, 30.52})
		withCoords.FormattedAddress = "already known"
		noAddress := rawPlace("r-2", "Addressless", nil)

		source.On("Load", ctx, domain.CategoryRestaurants).
			Return([]domain.RawPlace{withCoords, noAddress}, nil)
		emptyCategories(source, domain.CategoryRestaurants)

		uc := usecase.NewIngestUseCase(source, geocoder, cache, logger, ttl)

		all, err := uc.LoadAll(ctx)
		require.NoError(t, err)

		restaurants := all[domain.CategoryRestaurants]
		assert.Equal(t, []float64{50.45, 30.52}, restaurants[0].Coordinates)
		assert.Nil(t, restaurants[1].Coordinates)
		geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})

	t.Run("source failure is a hard error", func(t *testing.T) {
		source := &MockPlaceSourceRepository{}
		geocoder := &MockGeocodingRepository{}
		cache := &MockCacheRepository{}

		source.On("Load", ctx, domain.CategoryCafes).Return(nil, errors.New("file missing"))

		uc := usecase.NewIngestUseCase(source, geocoder, cache, logger, ttl)

		_, err := uc.LoadAll(ctx)
		assert.Error(t, err)
	})
}

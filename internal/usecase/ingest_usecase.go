package usecase

import (
	"context"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"go.uber.org/zap"
)

// RecordSource supplies the fully-formed raw record set, one list per
// category, ready for normalization.
type RecordSource interface {
	LoadAll(ctx context.Context) (map[domain.Category][]domain.RawPlace, error)
}

// IngestUseCase loads raw records and completes them: records missing a
// coordinate pair but carrying an address are geocoded, with a redis cache
// in front of the geocoding API. A failed geocode produces the origin
// sentinel instead of aborting the whole ingestion.
type IngestUseCase struct {
	source   repository.PlaceSourceRepository
	geocoder repository.GeocodingRepository
	cache    repository.CacheRepository
	logger   *zap.Logger
	cacheTTL time.Duration
}

func NewIngestUseCase(
	source repository.PlaceSourceRepository,
	geocoder repository.GeocodingRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *IngestUseCase {
	return &IngestUseCase{
		source:   source,
		geocoder: geocoder,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// LoadAll loads and completes the raw records of every category. A failing
// source is a hard error: the directory must never be rebuilt from a partial
// record set.
func (uc *IngestUseCase) LoadAll(ctx context.Context) (map[domain.Category][]domain.RawPlace, error) {
	all := make(map[domain.Category][]domain.RawPlace, len(domain.Categories()))

	for _, category := range domain.Categories() {
		records, err := uc.source.Load(ctx, category)
		if err != nil {
			uc.logger.Error("Failed to load raw records",
				zap.String("category", string(category)),
				zap.Error(err))
			return nil, err
		}

		uc.fillCoordinates(ctx, records)
		all[category] = records
	}

	return all, nil
}

// fillCoordinates geocodes records that carry an address but no coordinate
// pair. Results keep the sources' native [lat, lng] order so the normalizer
// applies the same transpose everywhere.
func (uc *IngestUseCase) fillCoordinates(ctx context.Context, records []domain.RawPlace) {
	for i := range records {
		rec := &records[i]
		if len(rec.Coordinates) == 2 || rec.FormattedAddress == "" {
			continue
		}

		coord, err := uc.lookupCoordinate(ctx, rec.FormattedAddress)
		if err != nil {
			uc.logger.Warn("Geocoding failed, using sentinel coordinates",
				zap.String("id", rec.ID),
				zap.String("address", rec.FormattedAddress),
				zap.Error(err))
			coord = domain.SentinelCoordinate
		}

		rec.Coordinates = []float64{coord.Lat, coord.Lon}
	}
}

func (uc *IngestUseCase) lookupCoordinate(ctx context.Context, address string) (domain.Coordinate, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetCoordinate(ctx, address)
		if err != nil {
			// Cache trouble never blocks ingestion.
			uc.logger.Warn("Geocode cache lookup failed", zap.Error(err))
		}
		if cached != nil {
			return *cached, nil
		}
	}

	coord, err := uc.geocoder.Geocode(ctx, address)
	if err != nil {
		return domain.Coordinate{}, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetCoordinate(ctx, address, coord, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache geocode result", zap.Error(err))
		}
	}

	return coord, nil
}

package repository

import (
	"context"

	"github.com/places-directory/internal/domain"
)

// GeocodingRepository resolves a postal address into a coordinate pair.
type GeocodingRepository interface {
	Geocode(ctx context.Context, address string) (domain.Coordinate, error)
}

package repository

import (
	"context"
	"time"

	"github.com/places-directory/internal/domain"
)

// CacheRepository defines the cache operations used by the ingestion path.
type CacheRepository interface {
	// Get returns the cached value, or nil on a cache miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// GetCoordinate returns a cached geocoding result for an address,
	// or nil on a cache miss.
	GetCoordinate(ctx context.Context, address string) (*domain.Coordinate, error)

	// SetCoordinate caches a geocoding result for an address.
	SetCoordinate(ctx context.Context, address string, coord domain.Coordinate, ttl time.Duration) error
}

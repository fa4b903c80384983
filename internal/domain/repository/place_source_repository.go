package repository

import (
	"context"

	"github.com/places-directory/internal/domain"
)

// PlaceSourceRepository supplies the raw place records for one category.
// Sources are expected to return the fully-formed record list in one call;
// partial or streaming ingestion is not supported.
type PlaceSourceRepository interface {
	// Load returns the raw records of the given category in source order.
	Load(ctx context.Context, category domain.Category) ([]domain.RawPlace, error)
}

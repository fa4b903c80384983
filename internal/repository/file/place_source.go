package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"go.uber.org/zap"
)

// categoryFiles maps categories onto the export file names. The restaurant
// file keeps the misspelled name the exports were produced with.
var categoryFiles = map[domain.Category]string{
	domain.CategoryCafes:       "cafe.json",
	domain.CategoryRestaurants: "restaraunt.json",
	domain.CategoryParks:       "park.json",
	domain.CategoryBars:        "bar.json",
}

// placeFile is the top-level shape of one category export.
type placeFile struct {
	Places []domain.RawPlace `json:"places"`
}

type placeSourceRepository struct {
	dataDir string
	logger  *zap.Logger
}

// NewPlaceSourceRepository creates a place source backed by the JSON exports
// in dataDir, one file per category.
func NewPlaceSourceRepository(dataDir string, logger *zap.Logger) repository.PlaceSourceRepository {
	return &placeSourceRepository{
		dataDir: dataDir,
		logger:  logger,
	}
}

func (r *placeSourceRepository) Load(ctx context.Context, category domain.Category) ([]domain.RawPlace, error) {
	name, ok := categoryFiles[category]
	if !ok {
		return nil, fmt.Errorf("no source file for category %q", category)
	}

	path := filepath.Join(r.dataDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Error("Failed to read place source file",
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f placeFile
	if err := json.Unmarshal(data, &f); err != nil {
		r.logger.Error("Failed to parse place source file",
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	r.logger.Debug("Loaded place source file",
		zap.String("category", string(category)),
		zap.Int("records", len(f.Places)))

	return f.Places, nil
}

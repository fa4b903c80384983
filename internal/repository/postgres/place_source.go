package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"go.uber.org/zap"
)

// placeRow mirrors one row of the places table. Opening periods are stored
// as the raw JSON period array; weekday descriptions as a text array.
type placeRow struct {
	PlaceID             string         `db:"place_id"`
	Name                string         `db:"name"`
	FormattedAddress    *string        `db:"formatted_address"`
	Lon                 *float64       `db:"lon"`
	Lat                 *float64       `db:"lat"`
	Periods             []byte         `db:"periods"`
	WeekdayDescriptions pq.StringArray `db:"weekday_descriptions"`
	OpenNow             bool           `db:"open_now"`
}

type placeSourceRepository struct {
	db *DB
}

// NewPlaceSourceRepository creates a place source backed by the places table,
// an alternative to the JSON file exports once geocoded records are persisted.
func NewPlaceSourceRepository(db *DB) repository.PlaceSourceRepository {
	return &placeSourceRepository{db: db}
}

func (r *placeSourceRepository) Load(ctx context.Context, category domain.Category) ([]domain.RawPlace, error) {
	const query = `
		SELECT place_id, name, formatted_address, lon, lat,
		       periods, weekday_descriptions, open_now
		FROM places
		WHERE category = $1
		ORDER BY position, place_id`

	var rows []placeRow
	if err := r.db.SelectContext(ctx, &rows, query, string(category)); err != nil {
		r.db.logger.Error("Failed to load places from postgres",
			zap.String("category", string(category)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to load places for %s: %w", category, err)
	}

	records := make([]domain.RawPlace, 0, len(rows))
	for _, row := range rows {
		records = append(records, toRawPlace(row))
	}

	return records, nil
}

// toRawPlace converts one row into the raw record shape the normalizer
// consumes.
func toRawPlace(row placeRow) domain.RawPlace {
	rec := domain.RawPlace{
		ID:          row.PlaceID,
		DisplayName: &domain.RawDisplayName{Text: row.Name},
	}
	if row.FormattedAddress != nil {
		rec.FormattedAddress = *row.FormattedAddress
	}
	if row.Lon != nil && row.Lat != nil {
		// Keep the sources' native [lat, lng] order so that the
		// normalizer applies the same transpose for every source.
		rec.Coordinates = []float64{*row.Lat, *row.Lon}
	}

	hours := &domain.RawOpeningHours{
		OpenNow:             row.OpenNow,
		WeekdayDescriptions: row.WeekdayDescriptions,
	}
	if len(row.Periods) > 0 {
		if err := json.Unmarshal(row.Periods, &hours.Periods); err != nil {
			// Malformed schedule data stays a local problem: the record
			// is kept and evaluates closed downstream.
			hours.Periods = nil
		}
	}
	if len(hours.Periods) > 0 || len(hours.WeekdayDescriptions) > 0 {
		rec.RegularOpeningHours = hours
	}

	return rec
}

package usecase

import (
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/pkg/utils"
)

// NormalizePlaces converts raw records into validated Place entities for one
// category. Records without a usable coordinate pair are excluded: they can
// never appear on the map, so they are dead weight everywhere else too.
// Input order is preserved and duplicate ids are tolerated. The function is
// stateless, so identical input and instant always produce identical output.
func NormalizePlaces(records []domain.RawPlace, category domain.Category, at domain.Instant) []domain.Place {
	places := make([]domain.Place, 0, len(records))

	for _, rec := range records {
		coord, ok := normalizeCoordinate(rec.Coordinates)
		if !ok {
			continue
		}
		if rec.ID == "" || rec.DisplayName == nil || rec.DisplayName.Text == "" {
			continue
		}

		schedule := normalizeSchedule(rec.RegularOpeningHours)

		places = append(places, domain.Place{
			ID:         rec.ID,
			Name:       rec.DisplayName.Text,
			Category:   category,
			Coordinate: coord,
			Schedule:   schedule,
			Open:       schedule.IsOpenAt(at),
		})
	}

	return places
}

// normalizeCoordinate validates the raw pair and transposes it into the
// canonical internal order. The sources store [lat, lng]; this is the single
// place where that order is converted to (lng, lat).
func normalizeCoordinate(raw []float64) (domain.Coordinate, bool) {
	if len(raw) != 2 {
		return domain.Coordinate{}, false
	}
	lat, lng := raw[0], raw[1]
	if !utils.ValidateCoordinates(lat, lng) {
		return domain.Coordinate{}, false
	}
	return domain.Coordinate{Lon: lng, Lat: lat}, true
}

// normalizeSchedule converts raw opening hours into a strict Schedule.
// Periods with an incomplete open point, or with a close point that exists
// but has missing fields, grant nothing and are dropped here; the overall
// policy stays fail-closed. An absent or empty raw schedule yields an empty
// Schedule, which always evaluates closed.
func normalizeSchedule(raw *domain.RawOpeningHours) domain.Schedule {
	if raw == nil {
		return domain.Schedule{}
	}

	schedule := domain.Schedule{
		WeekdayDescriptions: raw.WeekdayDescriptions,
	}

	for _, p := range raw.Periods {
		open, ok := normalizeTimePoint(p.Open)
		if !ok {
			continue
		}

		period := domain.Period{Open: open}
		if p.Close != nil {
			closeTP, ok := normalizeTimePoint(p.Close)
			if !ok {
				continue
			}
			period.Close = &closeTP
		}

		schedule.Periods = append(schedule.Periods, period)
	}

	return schedule
}

func normalizeTimePoint(raw *domain.RawTimePoint) (domain.TimePoint, bool) {
	if raw == nil || raw.Day == nil || raw.Hour == nil || raw.Minute == nil {
		return domain.TimePoint{}, false
	}
	return domain.TimePoint{
		Day:    *raw.Day,
		Hour:   *raw.Hour,
		Minute: *raw.Minute,
	}, true
}

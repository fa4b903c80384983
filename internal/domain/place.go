package domain

// Category is one of the four fixed place groupings.
type Category string

const (
	CategoryCafes       Category = "cafes"
	CategoryRestaurants Category = "restaurants"
	CategoryParks       Category = "parks"
	CategoryBars        Category = "bars"
)

// Categories returns all categories in their canonical display order.
func Categories() []Category {
	return []Category{
		CategoryCafes,
		CategoryRestaurants,
		CategoryParks,
		CategoryBars,
	}
}

// ParseCategory maps a selection token onto a Category. Tokens outside the
// fixed set are rejected.
func ParseCategory(token string) (Category, bool) {
	switch Category(token) {
	case CategoryCafes, CategoryRestaurants, CategoryParks, CategoryBars:
		return Category(token), true
	}
	return "", false
}

// Coordinate is the canonical internal coordinate pair: longitude first.
type Coordinate struct {
	Lon float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// SentinelCoordinate is the origin pair used when geocoding fails. The core
// does not special-case it; it is a plain coordinate like any other.
var SentinelCoordinate = Coordinate{Lon: 0, Lat: 0}

// Place is a validated directory entry. Open is a point-in-time snapshot
// derived from (Schedule, evaluation instant) and is recomputed on every
// refresh, never stored independently.
type Place struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Category   Category   `json:"category"`
	Coordinate Coordinate `json:"coordinate"`
	Schedule   Schedule   `json:"schedule"`
	Open       bool       `json:"is_open"`
}

// Marker is one rendered map marker. Handle identifies the rendered instance
// on the map; PlaceID identifies the place it represents.
type Marker struct {
	Handle     string     `json:"handle"`
	PlaceID    string     `json:"place_id"`
	Coordinate Coordinate `json:"coordinate"`
	Open       bool       `json:"is_open"`
}

// MarkerDelta is the reconciliation result of one marker sync.
type MarkerDelta struct {
	Added   []Marker `json:"added"`
	Removed []Marker `json:"removed"`
}

// CameraState is owned by the map collaborator. The sync path only ever reads
// it; it is mutated exclusively through user interaction.
type CameraState struct {
	Center Coordinate `json:"center"`
	Zoom   float64    `json:"zoom"`
	Pitch  float64    `json:"pitch"`
}

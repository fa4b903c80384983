package dto

import "github.com/places-directory/internal/domain"

// PlaceResponse is one directory entry for list rendering.
type PlaceResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	IsOpen              bool     `json:"is_open"`
	Lng                 float64  `json:"lng"`
	Lat                 float64  `json:"lat"`
	WeekdayDescriptions []string `json:"weekday_descriptions,omitempty"`
}

func NewPlaceResponse(p domain.Place) PlaceResponse {
	return PlaceResponse{
		ID:                  p.ID,
		Name:                p.Name,
		IsOpen:              p.Open,
		Lng:                 p.Coordinate.Lon,
		Lat:                 p.Coordinate.Lat,
		WeekdayDescriptions: p.Schedule.WeekdayDescriptions,
	}
}

// PlacesResponse is the list for one category.
type PlacesResponse struct {
	Category string          `json:"category"`
	Places   []PlaceResponse `json:"places"`
	Total    int             `json:"total"`
}

// CategorySummary is the per-category badge pair.
type CategorySummary struct {
	Category   string `json:"category"`
	OpenCount  int    `json:"open_count"`
	TotalCount int    `json:"total_count"`
}

// CategoriesResponse lists the summaries in canonical category order.
type CategoriesResponse struct {
	Categories []CategorySummary `json:"categories"`
}

// SelectionResponse is the current selection state. Selected is nil when
// nothing is selected.
type SelectionResponse struct {
	Selected    *string `json:"selected"`
	ActiveCount int     `json:"active_count"`
}

// MarkerResponse is one rendered marker.
type MarkerResponse struct {
	Handle  string  `json:"handle"`
	PlaceID string  `json:"place_id"`
	Lng     float64 `json:"lng"`
	Lat     float64 `json:"lat"`
	IsOpen  bool    `json:"is_open"`
}

func NewMarkerResponse(m domain.Marker) MarkerResponse {
	return MarkerResponse{
		Handle:  m.Handle,
		PlaceID: m.PlaceID,
		Lng:     m.Coordinate.Lon,
		Lat:     m.Coordinate.Lat,
		IsOpen:  m.Open,
	}
}

// MarkersResponse is the full rendered marker set.
type MarkersResponse struct {
	Markers []MarkerResponse `json:"markers"`
	Total   int              `json:"total"`
}

// MarkerSyncResponse carries the reconciliation deltas of one sync.
type MarkerSyncResponse struct {
	Added   []MarkerResponse `json:"added"`
	Removed []MarkerResponse `json:"removed"`
	Total   int              `json:"total"`
}

// CameraResponse mirrors the camera state owned by the map collaborator.
type CameraResponse struct {
	CenterLng float64 `json:"center_lng"`
	CenterLat float64 `json:"center_lat"`
	Zoom      float64 `json:"zoom"`
	Pitch     float64 `json:"pitch"`
}

func NewCameraResponse(c domain.CameraState) CameraResponse {
	return CameraResponse{
		CenterLng: c.Center.Lon,
		CenterLat: c.Center.Lat,
		Zoom:      c.Zoom,
		Pitch:     c.Pitch,
	}
}

// RefreshResponse reports the instant the directory was re-evaluated at.
type RefreshResponse struct {
	Instant domain.Instant    `json:"instant"`
	Counts  []CategorySummary `json:"counts"`
}

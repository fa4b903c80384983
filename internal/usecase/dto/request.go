package dto

// SelectRequest changes the selected category. "none" and the empty string
// both clear the selection, so the token carries no validation tag.
type SelectRequest struct {
	Category string `json:"category"`
}

// CameraRequest updates the map camera. Only user interaction goes through
// this path; marker sync never writes the camera.
type CameraRequest struct {
	CenterLng float64 `json:"center_lng" validate:"gte=-180,lte=180"`
	CenterLat float64 `json:"center_lat" validate:"gte=-90,lte=90"`
	Zoom      float64 `json:"zoom" validate:"gte=0,lte=22"`
	Pitch     float64 `json:"pitch" validate:"gte=0,lte=85"`
}

package utils

// ValidateCoordinates reports whether a (lat, lon) pair is a usable
// coordinate. NaN fails both comparisons, so non-numeric junk is rejected too.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateZoom checks a map zoom level against the usual web-mercator range.
func ValidateZoom(zoom float64) bool {
	return zoom >= 0 && zoom <= 22
}

// ValidatePitch checks a map camera pitch in degrees.
func ValidatePitch(pitch float64) bool {
	return pitch >= 0 && pitch <= 85
}

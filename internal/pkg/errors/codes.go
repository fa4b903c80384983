package errors

import "net/http"

var (
	ErrUnknownCategory = New(
		"UNKNOWN_CATEGORY",
		"Unknown place category",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidCamera = New(
		"INVALID_CAMERA",
		"Invalid camera state",
		http.StatusBadRequest,
	)

	ErrSourceUnavailable = New(
		"SOURCE_UNAVAILABLE",
		"Place source is unavailable",
		http.StatusServiceUnavailable,
	)

	ErrGeocodingFailed = New(
		"GEOCODING_FAILED",
		"Geocoding request failed",
		http.StatusBadGateway,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

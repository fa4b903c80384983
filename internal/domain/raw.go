package domain

// RawPlace mirrors one record of the Google Places export the sources
// produce. Fields are loosely typed on purpose: nothing here is validated,
// validation happens at the normalization boundary.
//
// Coordinates keep the source's native order, which is [lat, lng] (the
// geocoding pipeline stores results that way). The transpose to the internal
// (lng, lat) order happens exactly once, in the normalizer.
type RawPlace struct {
	ID                  string           `json:"id"`
	DisplayName         *RawDisplayName  `json:"displayName,omitempty"`
	FormattedAddress    string           `json:"formattedAddress,omitempty"`
	Coordinates         []float64        `json:"coordinates,omitempty"`
	RegularOpeningHours *RawOpeningHours `json:"regularOpeningHours,omitempty"`
}

type RawDisplayName struct {
	Text string `json:"text"`
}

type RawOpeningHours struct {
	OpenNow             bool        `json:"openNow"`
	Periods             []RawPeriod `json:"periods"`
	WeekdayDescriptions []string    `json:"weekdayDescriptions"`
}

type RawPeriod struct {
	Open  *RawTimePoint `json:"open,omitempty"`
	Close *RawTimePoint `json:"close,omitempty"`
}

// RawTimePoint uses pointer fields so that absent and zero values stay
// distinguishable in the raw JSON.
type RawTimePoint struct {
	Day    *int `json:"day,omitempty"`
	Hour   *int `json:"hour,omitempty"`
	Minute *int `json:"minute,omitempty"`
}

package domain

import "time"

// TimePoint is a single point within the recurring week, with hour/minute
// granularity. Day follows the 0 = Sunday .. 6 = Saturday convention.
type TimePoint struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Period is one contiguous open interval anchored to Open.Day.
// A nil Close means the place stays open for the whole matched day.
type Period struct {
	Open  TimePoint  `json:"open"`
	Close *TimePoint `json:"close,omitempty"`
}

// Schedule is the recurring weekly availability of a place.
// WeekdayDescriptions are display-only strings and carry no evaluation semantics.
type Schedule struct {
	Periods             []Period `json:"periods,omitempty"`
	WeekdayDescriptions []string `json:"weekday_descriptions,omitempty"`
}

// Instant is an evaluation point already shifted into the reference timezone.
// It is always passed explicitly; nothing in the domain reads the wall clock.
type Instant struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// InstantAt converts a wall-clock time into an Instant in the given reference
// timezone. This is the only place where wall-clock time enters the domain.
func InstantAt(t time.Time, loc *time.Location) Instant {
	local := t.In(loc)
	return Instant{
		Day:    int(local.Weekday()),
		Hour:   local.Hour(),
		Minute: local.Minute(),
	}
}

func (tp TimePoint) inRange() bool {
	return tp.Day >= 0 && tp.Day <= 6 &&
		tp.Hour >= 0 && tp.Hour <= 23 &&
		tp.Minute >= 0 && tp.Minute <= 59
}

// IsOpenAt reports whether the schedule grants open status at the given instant.
//
// Periods are matched by their opening day only, and the interval compares
// bare (hour, minute) tuples. A period that closes past midnight keeps
// Close.Day different from Open.Day, but the close day is never consulted:
// its close tuple sorts before its open tuple, the interval is empty and the
// period grants nothing at all. A matched period without a close grants the
// whole day. Otherwise the interval is half-open: the open minute counts as
// open, the close minute counts as closed. Malformed periods grant nothing; an
// empty schedule is always closed.
func (s Schedule) IsOpenAt(at Instant) bool {
	for _, p := range s.Periods {
		if p.Open.Day != at.Day {
			continue
		}
		if p.Close == nil {
			return true
		}
		if !p.Open.inRange() || !p.Close.inRange() {
			continue
		}
		afterOpen := at.Hour > p.Open.Hour ||
			(at.Hour == p.Open.Hour && at.Minute >= p.Open.Minute)
		beforeClose := at.Hour < p.Close.Hour ||
			(at.Hour == p.Close.Hour && at.Minute < p.Close.Minute)
		if afterOpen && beforeClose {
			return true
		}
	}
	return false
}

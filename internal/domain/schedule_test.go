package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tp(day, hour, minute int) TimePoint {
	return TimePoint{Day: day, Hour: hour, Minute: minute}
}

func tpp(day, hour, minute int) *TimePoint {
	p := tp(day, hour, minute)
	return &p
}

func TestSchedule_IsOpenAt(t *testing.T) {
	t.Run("open and close boundaries on a working day", func(t *testing.T) {
		s := Schedule{Periods: []Period{{Open: tp(3, 9, 0), Close: tpp(3, 17, 0)}}}

		assert.False(t, s.IsOpenAt(Instant{Day: 3, Hour: 8, Minute: 59}))
		assert.True(t, s.IsOpenAt(Instant{Day: 3, Hour: 9, Minute: 0}), "open boundary is inclusive")
		assert.True(t, s.IsOpenAt(Instant{Day: 3, Hour: 12, Minute: 30}))
		assert.True(t, s.IsOpenAt(Instant{Day: 3, Hour: 16, Minute: 59}))
		assert.False(t, s.IsOpenAt(Instant{Day: 3, Hour: 17, Minute: 0}), "close boundary is exclusive")
		assert.False(t, s.IsOpenAt(Instant{Day: 4, Hour: 12, Minute: 0}), "other days do not match")
	})

	t.Run("period without close is open for the whole day", func(t *testing.T) {
		s := Schedule{Periods: []Period{{Open: tp(1, 10, 0)}}}

		assert.True(t, s.IsOpenAt(Instant{Day: 1, Hour: 0, Minute: 0}))
		assert.True(t, s.IsOpenAt(Instant{Day: 1, Hour: 9, Minute: 59}))
		assert.True(t, s.IsOpenAt(Instant{Day: 1, Hour: 23, Minute: 59}))
		assert.False(t, s.IsOpenAt(Instant{Day: 2, Hour: 12, Minute: 0}))
	})

	t.Run("empty schedule is always closed", func(t *testing.T) {
		var s Schedule
		for day := 0; day <= 6; day++ {
			assert.False(t, s.IsOpenAt(Instant{Day: day, Hour: 12, Minute: 0}))
		}
	})

	t.Run("split day with lunch break", func(t *testing.T) {
		s := Schedule{Periods: []Period{
			{Open: tp(2, 8, 0), Close: tpp(2, 11, 0)},
			{Open: tp(2, 13, 0), Close: tpp(2, 18, 0)},
		}}

		assert.True(t, s.IsOpenAt(Instant{Day: 2, Hour: 8, Minute: 0}))
		assert.False(t, s.IsOpenAt(Instant{Day: 2, Hour: 11, Minute: 0}))
		assert.False(t, s.IsOpenAt(Instant{Day: 2, Hour: 12, Minute: 0}))
		assert.True(t, s.IsOpenAt(Instant{Day: 2, Hour: 14, Minute: 0}))
		assert.False(t, s.IsOpenAt(Instant{Day: 2, Hour: 18, Minute: 0}))
	})

	t.Run("overnight period never grants open", func(t *testing.T) {
		// Opens Friday 22:00, closes Saturday 02:00. Matching is by opening
		// day only and the interval compares bare (hour, minute) tuples, so
		// 22:00..23:59 is not before 02:00 and the interval is empty. Early
		// Saturday does not find the Friday period either.
		s := Schedule{Periods: []Period{{Open: tp(5, 22, 0), Close: tpp(6, 2, 0)}}}

		assert.False(t, s.IsOpenAt(Instant{Day: 5, Hour: 22, Minute: 0}))
		assert.False(t, s.IsOpenAt(Instant{Day: 5, Hour: 23, Minute: 30}))
		assert.False(t, s.IsOpenAt(Instant{Day: 6, Hour: 1, Minute: 0}))
	})

	t.Run("malformed period grants nothing", func(t *testing.T) {
		s := Schedule{Periods: []Period{
			{Open: tp(4, 9, 0), Close: tpp(4, -1, 0)},
			{Open: tp(4, 25, 0), Close: tpp(4, 17, 0)},
		}}

		assert.False(t, s.IsOpenAt(Instant{Day: 4, Hour: 12, Minute: 0}))
	})

	t.Run("malformed period is skipped, later period still evaluated", func(t *testing.T) {
		s := Schedule{Periods: []Period{
			{Open: tp(4, 9, 0), Close: tpp(4, 99, 0)},
			{Open: tp(4, 10, 0), Close: tpp(4, 20, 0)},
		}}

		assert.True(t, s.IsOpenAt(Instant{Day: 4, Hour: 12, Minute: 0}))
	})
}

func TestInstantAt(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)

	// 2024-07-10 is a Wednesday; 09:00 UTC is 12:00 in Kyiv (EEST, UTC+3).
	at := InstantAt(time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC), loc)

	assert.Equal(t, 3, at.Day)
	assert.Equal(t, 12, at.Hour)
	assert.Equal(t, 0, at.Minute)
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, ok := ParseCategory(string(c))
		assert.True(t, ok)
		assert.Equal(t, c, parsed)
	}

	_, ok := ParseCategory("museums")
	assert.False(t, ok)

	_, ok = ParseCategory("")
	assert.False(t, ok)
}

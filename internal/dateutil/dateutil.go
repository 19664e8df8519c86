// Package dateutil provides the canonical calendar-day key and the
// Sunday-anchored week window used by the completion log and the weekly
// statistics engine. All calendar math is done in UTC so that a given
// instant always maps to the same day key.
package dateutil

import (
	"time"

	"github.com/cadencehq/cadence/internal/constants"
)

// DayKey returns the canonical calendar-day key (YYYY-MM-DD) for an
// instant, normalized to UTC.
func DayKey(t time.Time) string {
	return t.UTC().Format(constants.DateFormat)
}

// Today returns the day key for the current instant.
func Today() string {
	return DayKey(time.Now())
}

// ParseDayKey parses a YYYY-MM-DD key into midnight UTC of that day.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(constants.DateFormat, key)
}

// StartOfDay truncates an instant to midnight UTC of its calendar day.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekWindow returns the Sunday that begins the 7-day week containing t
// and the Saturday that ends it, both at midnight UTC.
func WeekWindow(t time.Time) (time.Time, time.Time) {
	day := StartOfDay(t)
	start := day.AddDate(0, 0, -int(day.Weekday()))
	end := start.AddDate(0, 0, constants.DaysPerWeek-1)
	return start, end
}

// WeekDates returns the 7 calendar dates of the week containing t, from
// Sunday to Saturday in chronological order.
func WeekDates(t time.Time) []time.Time {
	start, _ := WeekWindow(t)
	dates := make([]time.Time, constants.DaysPerWeek)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// WeekDayKeys returns the day keys of the week containing t, in
// chronological order.
func WeekDayKeys(t time.Time) []string {
	dates := WeekDates(t)
	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = DayKey(d)
	}
	return keys
}

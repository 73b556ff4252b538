// Package holiday holds the statutory holiday calendar for the stores'
// jurisdiction (British Columbia) and the operating time zone all
// day-boundary decisions are made in.
package holiday

import (
	"sync"
	"time"
)

// TimeZone is the stores' operating time zone. Dates arriving from the
// data layer are already localized to it; "which day is this" and
// "is this a holiday" must be answered in this zone, never UTC or the
// device-local zone, to avoid off-by-one-day errors at midnight.
const TimeZone = "America/Los_Angeles"

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location returns the operating time zone, loaded once.
func Location() *time.Location {
	locOnce.Do(func() {
		var err error
		loc, err = time.LoadLocation(TimeZone)
		if err != nil {
			panic("holiday: load time zone " + TimeZone + ": " + err.Error())
		}
	})
	return loc
}

type monthDay struct {
	month time.Month
	day   int
}

// Year-keyed B.C. statutory holiday lists. Each list is year-specific,
// so lookups only compare month and day.
var calendars = map[int][]monthDay{
	2024: {
		{time.January, 1},    // New Year's Day
		{time.February, 19},  // Family Day
		{time.March, 29},     // Good Friday
		{time.May, 20},       // Victoria Day
		{time.July, 1},       // Canada Day
		{time.August, 5},     // B.C. Day
		{time.September, 2},  // Labour Day
		{time.September, 30}, // National Day for Truth and Reconciliation
		{time.October, 14},   // Thanksgiving Day
		{time.November, 11},  // Remembrance Day
		{time.December, 25},  // Christmas Day
	},
	2025: {
		{time.January, 1},    // New Year's Day
		{time.February, 17},  // Family Day
		{time.April, 18},     // Good Friday
		{time.May, 19},       // Victoria Day
		{time.July, 1},       // Canada Day
		{time.August, 4},     // B.C. Day
		{time.September, 1},  // Labour Day
		{time.September, 30}, // National Day for Truth and Reconciliation
		{time.October, 13},   // Thanksgiving Day
		{time.November, 11},  // Remembrance Day
		{time.December, 25},  // Christmas Day
	},
}

// IsHoliday reports whether the given date is a recognized statutory
// holiday. Years with no configured list always return false. Pure
// total function, no error conditions.
func IsHoliday(year int, month time.Month, day int) bool {
	for _, h := range calendars[year] {
		if h.month == month && h.day == day {
			return true
		}
	}
	return false
}

// IsHolidayDate is IsHoliday for a time.Time, evaluated in the store
// zone.
func IsHolidayDate(t time.Time) bool {
	t = t.In(Location())
	return IsHoliday(t.Year(), t.Month(), t.Day())
}

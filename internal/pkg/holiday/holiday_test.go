package holiday

import (
	"testing"
	"time"
)

func TestIsHoliday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  bool
	}{
		{"new years day 2025", 2025, time.January, 1, true},
		{"regular day after new years", 2025, time.January, 2, false},
		{"family day 2024", 2024, time.February, 19, true},
		{"family day 2025", 2025, time.February, 17, true},
		{"family day 2024 date in 2025", 2025, time.February, 19, false},
		{"good friday 2024", 2024, time.March, 29, true},
		{"good friday 2025", 2025, time.April, 18, true},
		{"truth and reconciliation 2025", 2025, time.September, 30, true},
		{"christmas 2024", 2024, time.December, 25, true},
		{"boxing day is not statutory", 2025, time.December, 26, false},
		{"year without a calendar", 2023, time.January, 1, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsHoliday(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("IsHoliday(%d, %v, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestIsHolidayDate_ConvertsToStoreZone(t *testing.T) {
	t.Parallel()

	// 2025-01-02 05:00 UTC is still the evening of New Year's Day in the
	// store zone.
	utcEvening := time.Date(2025, time.January, 2, 5, 0, 0, 0, time.UTC)
	if !IsHolidayDate(utcEvening) {
		t.Errorf("IsHolidayDate(%v) = false, want true", utcEvening)
	}

	// 2025-01-01 10:00 UTC is the afternoon of Dec 31 in the store zone.
	utcMorning := time.Date(2025, time.January, 1, 5, 0, 0, 0, time.UTC)
	if IsHolidayDate(utcMorning) {
		t.Errorf("IsHolidayDate(%v) = true, want false", utcMorning)
	}
}

func TestLocation(t *testing.T) {
	t.Parallel()

	loc := Location()
	if loc == nil {
		t.Fatal("Location() returned nil")
	}
	if loc.String() != TimeZone {
		t.Errorf("Location() = %q, want %q", loc.String(), TimeZone)
	}
}

package dateutil

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "utc midnight",
			in:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
			want: "2025-03-05",
		},
		{
			name: "utc end of day",
			in:   time.Date(2025, 3, 5, 23, 59, 59, 0, time.UTC),
			want: "2025-03-05",
		},
		{
			name: "non-utc instant normalized to utc day",
			in:   time.Date(2025, 3, 5, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want: "2025-03-06",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayKey(tt.in); got != tt.want {
				t.Errorf("DayKey(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDayKeyRoundTrip(t *testing.T) {
	day, err := ParseDayKey("2025-03-05")
	if err != nil {
		t.Fatalf("ParseDayKey: %v", err)
	}
	if got := DayKey(day); got != "2025-03-05" {
		t.Errorf("round trip = %q, want 2025-03-05", got)
	}
}

func TestWeekWindowFromWednesday(t *testing.T) {
	// 2025-03-05 is a Wednesday.
	wed := time.Date(2025, 3, 5, 15, 30, 0, 0, time.UTC)

	start, end := WeekWindow(wed)

	if start.Weekday() != time.Sunday {
		t.Errorf("week start weekday = %v, want Sunday", start.Weekday())
	}
	if end.Weekday() != time.Saturday {
		t.Errorf("week end weekday = %v, want Saturday", end.Weekday())
	}
	if got := DayKey(start); got != "2025-03-02" {
		t.Errorf("week start = %q, want 2025-03-02", got)
	}
	if got := DayKey(end); got != "2025-03-08" {
		t.Errorf("week end = %q, want 2025-03-08", got)
	}
	day := StartOfDay(wed)
	if day.Before(start) || day.After(end) {
		t.Errorf("window [%v, %v] does not span %v", start, end, wed)
	}
}

func TestWeekWindowOnSundayAndSaturday(t *testing.T) {
	// A Sunday anchors its own week.
	sun := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)
	start, end := WeekWindow(sun)
	if got := DayKey(start); got != "2025-03-02" {
		t.Errorf("sunday week start = %q, want 2025-03-02", got)
	}

	// A Saturday belongs to the week that began six days earlier.
	sat := time.Date(2025, 3, 8, 8, 0, 0, 0, time.UTC)
	start, end = WeekWindow(sat)
	if got := DayKey(start); got != "2025-03-02" {
		t.Errorf("saturday week start = %q, want 2025-03-02", got)
	}
	if got := DayKey(end); got != "2025-03-08" {
		t.Errorf("saturday week end = %q, want 2025-03-08", got)
	}
}

func TestWeekDates(t *testing.T) {
	wed := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	dates := WeekDates(wed)
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}

	start, _ := WeekWindow(wed)
	for i, d := range dates {
		want := start.AddDate(0, 0, i)
		if !d.Equal(want) {
			t.Errorf("dates[%d] = %v, want %v", i, d, want)
		}
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			t.Errorf("dates not chronological at index %d", i)
		}
	}
}

func TestWeekDayKeys(t *testing.T) {
	wed := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	keys := WeekDayKeys(wed)
	want := []string{
		"2025-03-02", "2025-03-03", "2025-03-04", "2025-03-05",
		"2025-03-06", "2025-03-07", "2025-03-08",
	}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestWeekWindowSpansMonthBoundary(t *testing.T) {
	// 2025-04-01 is a Tuesday; its week starts in March.
	tue := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	start, end := WeekWindow(tue)
	if got := DayKey(start); got != "2025-03-30" {
		t.Errorf("week start = %q, want 2025-03-30", got)
	}
	if got := DayKey(end); got != "2025-04-05" {
		t.Errorf("week end = %q, want 2025-04-05", got)
	}
}

// Package validation checks habit fields before they reach the store.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/cadencehq/cadence/internal/constants"
	"github.com/cadencehq/cadence/internal/models"
)

// ValidateHabit checks a habit's fields against the data model's
// invariants. It does not check ID uniqueness; ids are generated.
func ValidateHabit(h models.Habit) error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit name must not be empty")
	}

	if !h.Frequency.IsValid() {
		return fmt.Errorf("invalid frequency: %q", h.Frequency)
	}

	if err := ValidateScheduledDays(h.ScheduledDays); err != nil {
		return err
	}

	if h.Time != "" && !ValidateTimeFormat(h.Time) {
		return fmt.Errorf("invalid time %q (expected HH:MM)", h.Time)
	}

	if h.Frequency == models.FrequencyCustom && h.CustomTarget < 0 {
		return fmt.Errorf("custom target must not be negative")
	}

	return nil
}

// ValidateScheduledDays checks that every scheduled weekday is in range
// 0-6 (Sunday=0) and that no day appears twice. An empty set is legal; a
// weekly habit with no scheduled days is simply scheduled on no day.
func ValidateScheduledDays(days []int) error {
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return fmt.Errorf("scheduled day %d out of range (0-6, Sunday=0)", d)
		}
		if seen[d] {
			return fmt.Errorf("scheduled day %d listed more than once", d)
		}
		seen[d] = true
	}
	return nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}

// ValidateDayKey checks if the string matches the standard date format.
func ValidateDayKey(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

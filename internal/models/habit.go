package models

import (
	"fmt"
	"strings"
	"time"
)

// Frequency describes how often a habit is meant to recur.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	default:
		return false
	}
}

func ParseFrequency(input string) (Frequency, error) {
	f := Frequency(strings.TrimSpace(strings.ToLower(input)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %q", input)
	}
	return f, nil
}

// Habit represents a recurring practice to track.
type Habit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Time        string    `json:"time,omitempty"` // HH:MM format, advisory only
	Category    string    `json:"category"`
	Frequency   Frequency `json:"frequency"`
	// ScheduledDays holds weekday numbers (0=Sunday .. 6=Saturday);
	// meaningful only when Frequency is weekly.
	ScheduledDays []int `json:"scheduled_days,omitempty"`
	// CustomTarget is a times-per-week goal; meaningful only when
	// Frequency is custom.
	CustomTarget int       `json:"custom_target,omitempty"`
	Color        string    `json:"color"`
	Icon         string    `json:"icon"`
	CreatedAt    time.Time `json:"created_at"`
	Active       bool      `json:"active"`
}

// DueOn reports whether the habit is scheduled for the given weekday.
// Daily habits are due every day; weekly habits only on their scheduled
// days; custom habits carry a weekly count rather than fixed days, so they
// are never "due" on a particular weekday.
func (h Habit) DueOn(weekday time.Weekday) bool {
	switch h.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		for _, d := range h.ScheduledDays {
			if d == int(weekday) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

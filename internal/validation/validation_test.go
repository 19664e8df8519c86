package validation

import (
	"testing"
	"time"

	"github.com/cadencehq/cadence/internal/models"
)

func validHabit() models.Habit {
	return models.Habit{
		ID:        "h1",
		Name:      "Drink Water",
		Category:  "Health",
		Frequency: models.FrequencyDaily,
		CreatedAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		Active:    true,
	}
}

func TestValidateHabit(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Habit)
		wantErr bool
	}{
		{
			name:   "valid daily habit",
			mutate: func(h *models.Habit) {},
		},
		{
			name: "empty name",
			mutate: func(h *models.Habit) {
				h.Name = "   "
			},
			wantErr: true,
		},
		{
			name: "invalid frequency",
			mutate: func(h *models.Habit) {
				h.Frequency = "hourly"
			},
			wantErr: true,
		},
		{
			name: "weekly with valid days",
			mutate: func(h *models.Habit) {
				h.Frequency = models.FrequencyWeekly
				h.ScheduledDays = []int{0, 3, 6}
			},
		},
		{
			name: "weekly with empty days is legal",
			mutate: func(h *models.Habit) {
				h.Frequency = models.FrequencyWeekly
				h.ScheduledDays = nil
			},
		},
		{
			name: "scheduled day out of range",
			mutate: func(h *models.Habit) {
				h.Frequency = models.FrequencyWeekly
				h.ScheduledDays = []int{7}
			},
			wantErr: true,
		},
		{
			name: "negative scheduled day",
			mutate: func(h *models.Habit) {
				h.Frequency = models.FrequencyWeekly
				h.ScheduledDays = []int{-1}
			},
			wantErr: true,
		},
		{
			name: "duplicate scheduled day",
			mutate: func(h *models.Habit) {
				h.Frequency = models.FrequencyWeekly
				h.ScheduledDays = []int{2, 2}
			},
			wantErr: true,
		},
		{
			name: "valid advisory time",
			mutate: func(h *models.Habit) {
				h.Time = "07:30"
			},
		},
		{
			name: "malformed advisory time",
			mutate: func(h *models.Habit) {
				h.Time = "7:30pm"
			},
			wantErr: true,
		},
		{
			name: "negative custom target",
			mutate: func(h *models.Habit) {
				h.Frequency = models.FrequencyCustom
				h.CustomTarget = -2
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			habit := validHabit()
			tt.mutate(&habit)

			err := ValidateHabit(habit)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateDayKey(t *testing.T) {
	if !ValidateDayKey("2025-03-05") {
		t.Error("expected 2025-03-05 to be valid")
	}
	for _, bad := range []string{"03/05/2025", "2025-3-5", "tomorrow", ""} {
		if ValidateDayKey(bad) {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}

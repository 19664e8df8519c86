package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/cadencehq/cadence/internal/dateutil"
	"github.com/cadencehq/cadence/internal/models"
)

func completedOn(habitID string, day time.Time) models.Completion {
	at := day
	return models.Completion{
		ID:          fmt.Sprintf("%s-%s", habitID, dateutil.DayKey(day)),
		HabitID:     habitID,
		Date:        dateutil.DayKey(day),
		Completed:   true,
		CompletedAt: &at,
	}
}

func toggledOff(habitID string, day time.Time) models.Completion {
	c := completedOn(habitID, day)
	c.Completed = false
	c.CompletedAt = nil
	return c
}

func activeHabit(id, name string) models.Habit {
	return models.Habit{
		ID:        id,
		Name:      name,
		Category:  "Health",
		Frequency: models.FrequencyDaily,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}
}

func TestStreakZeroWhenTodayIncomplete(t *testing.T) {
	today := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	// History exists, but today has no completed record: streak is 0
	// immediately, with no grace day.
	completions := []models.Completion{
		completedOn("h1", today.AddDate(0, 0, -1)),
		completedOn("h1", today.AddDate(0, 0, -2)),
	}

	if got := Streak(completions, "h1", today); got != 0 {
		t.Errorf("Streak = %d, want 0", got)
	}
}

func TestStreakCountsBackwardFromToday(t *testing.T) {
	today := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	var completions []models.Completion
	for i := 0; i < 4; i++ {
		completions = append(completions, completedOn("h1", today.AddDate(0, 0, -i)))
	}

	if got := Streak(completions, "h1", today); got != 4 {
		t.Errorf("Streak = %d, want 4", got)
	}
}

func TestStreakBrokenByGap(t *testing.T) {
	// "Drink Water" created day 0, completed day 0, day 1, skipped day 2,
	// completed day 3 (today). Only today counts.
	day0 := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	today := day0.AddDate(0, 0, 3)

	completions := []models.Completion{
		completedOn("water", day0),
		completedOn("water", day0.AddDate(0, 0, 1)),
		completedOn("water", today),
	}

	if got := Streak(completions, "water", today); got != 1 {
		t.Errorf("Streak = %d, want 1", got)
	}
}

func TestStreakIgnoresToggledOffRecords(t *testing.T) {
	today := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	// A retained record with completed=false reads as incomplete.
	completions := []models.Completion{
		completedOn("h1", today),
		toggledOff("h1", today.AddDate(0, 0, -1)),
		completedOn("h1", today.AddDate(0, 0, -2)),
	}

	if got := Streak(completions, "h1", today); got != 1 {
		t.Errorf("Streak = %d, want 1", got)
	}
}

func TestStreakIsPerHabit(t *testing.T) {
	today := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	completions := []models.Completion{
		completedOn("h1", today),
		completedOn("h2", today),
		completedOn("h2", today.AddDate(0, 0, -1)),
	}

	if got := Streak(completions, "h1", today); got != 1 {
		t.Errorf("Streak(h1) = %d, want 1", got)
	}
	if got := Streak(completions, "h2", today); got != 2 {
		t.Errorf("Streak(h2) = %d, want 2", got)
	}
	if got := Streak(completions, "h3", today); got != 0 {
		t.Errorf("Streak(h3) = %d, want 0", got)
	}
}

func TestStreakCappedAt365(t *testing.T) {
	today := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	var completions []models.Completion
	for i := 0; i < 400; i++ {
		completions = append(completions, completedOn("h1", today.AddDate(0, 0, -i)))
	}

	if got := Streak(completions, "h1", today); got != 365 {
		t.Errorf("Streak = %d, want 365", got)
	}
}

func TestWeeklyZeroActiveHabits(t *testing.T) {
	anchor := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	inactive := activeHabit("h1", "Stretch")
	inactive.Active = false

	completions := []models.Completion{completedOn("h1", anchor)}

	weekly := Weekly([]models.Habit{inactive}, completions, anchor)

	if weekly.CompletionRate != 0 {
		t.Errorf("CompletionRate = %d, want 0", weekly.CompletionRate)
	}
	if weekly.TotalHabits != 0 {
		t.Errorf("TotalHabits = %d, want 0", weekly.TotalHabits)
	}
	if weekly.PerfectDays != 0 {
		t.Errorf("PerfectDays = %d, want 0", weekly.PerfectDays)
	}
	if len(weekly.HabitStats) != 0 {
		t.Errorf("HabitStats has %d entries, want 0", len(weekly.HabitStats))
	}
}

func TestWeeklyTwoHabitsOneMiss(t *testing.T) {
	// Two active habits, both completed every day of the window except one
	// day missing one habit's record: 13 of 14 slots.
	anchor := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	habits := []models.Habit{
		activeHabit("h1", "Drink Water"),
		activeHabit("h2", "Read"),
	}

	dates := dateutil.WeekDates(anchor)
	var completions []models.Completion
	for i, d := range dates {
		completions = append(completions, completedOn("h1", d))
		if i != 3 {
			completions = append(completions, completedOn("h2", d))
		}
	}

	weekly := Weekly(habits, completions, anchor)

	if weekly.CompletedHabits != 13 {
		t.Errorf("CompletedHabits = %d, want 13", weekly.CompletedHabits)
	}
	if weekly.CompletionRate != 93 {
		t.Errorf("CompletionRate = %d, want 93 (round(100*13/14))", weekly.CompletionRate)
	}
	if weekly.PerfectDays != 6 {
		t.Errorf("PerfectDays = %d, want 6", weekly.PerfectDays)
	}
	if weekly.TotalHabits != 2 {
		t.Errorf("TotalHabits = %d, want 2", weekly.TotalHabits)
	}
}

func TestWeeklyPerHabitStats(t *testing.T) {
	anchor := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	habits := []models.Habit{
		activeHabit("h1", "Drink Water"),
		activeHabit("h2", "Read"),
	}

	dates := dateutil.WeekDates(anchor)
	var completions []models.Completion
	for i, d := range dates {
		if i < 5 {
			completions = append(completions, completedOn("h1", d))
		}
		if i < 2 {
			completions = append(completions, completedOn("h2", d))
		}
	}

	weekly := Weekly(habits, completions, anchor)

	if len(weekly.HabitStats) != 2 {
		t.Fatalf("expected 2 habit stats, got %d", len(weekly.HabitStats))
	}

	h1 := weekly.HabitStats[0]
	if h1.HabitID != "h1" || h1.Completions != 5 || h1.Target != 7 {
		t.Errorf("h1 stats = %+v, want 5/7", h1)
	}
	if h1.CompletionRate != 71 {
		t.Errorf("h1 rate = %d, want 71 (round(100*5/7))", h1.CompletionRate)
	}

	h2 := weekly.HabitStats[1]
	if h2.Completions != 2 || h2.CompletionRate != 29 {
		t.Errorf("h2 stats = %+v, want 2 completions at 29%%", h2)
	}
}

func TestWeeklyIgnoresCompletionsOutsideWindow(t *testing.T) {
	anchor := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	habits := []models.Habit{activeHabit("h1", "Stretch")}

	weekStart, weekEnd := dateutil.WeekWindow(anchor)
	completions := []models.Completion{
		completedOn("h1", weekStart.AddDate(0, 0, -1)),
		completedOn("h1", weekEnd.AddDate(0, 0, 1)),
		completedOn("h1", anchor),
	}

	weekly := Weekly(habits, completions, anchor)

	if weekly.CompletedHabits != 1 {
		t.Errorf("CompletedHabits = %d, want 1", weekly.CompletedHabits)
	}
	if weekly.HabitStats[0].Completions != 1 {
		t.Errorf("habit completions = %d, want 1", weekly.HabitStats[0].Completions)
	}
}

func TestWeeklyToggledOffRecordsDoNotCount(t *testing.T) {
	anchor := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	habits := []models.Habit{activeHabit("h1", "Stretch")}

	completions := []models.Completion{
		completedOn("h1", anchor),
		toggledOff("h1", anchor.AddDate(0, 0, -1)),
	}

	weekly := Weekly(habits, completions, anchor)

	if weekly.CompletedHabits != 1 {
		t.Errorf("CompletedHabits = %d, want 1", weekly.CompletedHabits)
	}
	if weekly.CompletionRate != 14 {
		t.Errorf("CompletionRate = %d, want 14 (round(100*1/7))", weekly.CompletionRate)
	}
}

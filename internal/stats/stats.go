// Package stats holds the streak calculator and the weekly statistics
// engine. Both are pure functions over read-only views of the habit and
// completion collections; nothing here mutates state or caches results.
package stats

import (
	"math"
	"time"

	"github.com/cadencehq/cadence/internal/constants"
	"github.com/cadencehq/cadence/internal/dateutil"
	"github.com/cadencehq/cadence/internal/models"
)

// completedSet indexes completed records by (habitID, date) so lookups
// during the streak walk and window aggregation are O(1).
type completedSet map[string]map[string]bool

func buildCompletedSet(completions []models.Completion) completedSet {
	set := make(completedSet)
	for _, c := range completions {
		if !c.Completed {
			continue
		}
		days, ok := set[c.HabitID]
		if !ok {
			days = make(map[string]bool)
			set[c.HabitID] = days
		}
		days[c.Date] = true
	}
	return set
}

func (s completedSet) completed(habitID, date string) bool {
	return s[habitID][date]
}

// Streak counts consecutive completed days for a habit, walking backward
// from today inclusive. An uncompleted today yields 0; there is no grace
// day. The walk consults only recorded completions, not the habit's
// scheduled days, so a scheduled-off day without a record still breaks
// the chain. The walk is capped at 365 days.
func Streak(completions []models.Completion, habitID string, today time.Time) int {
	set := buildCompletedSet(completions)

	streak := 0
	day := dateutil.StartOfDay(today)
	for streak < constants.MaxStreakDays {
		if !set.completed(habitID, dateutil.DayKey(day)) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

// Weekly aggregates completions over the Sunday-to-Saturday window
// containing weekAnchor. Only active habits participate; every active
// habit contributes 7 possible slots regardless of its own frequency.
func Weekly(habits []models.Habit, completions []models.Completion, weekAnchor time.Time) models.WeeklyStats {
	weekStart, weekEnd := dateutil.WeekWindow(weekAnchor)
	dayKeys := dateutil.WeekDayKeys(weekAnchor)

	var active []models.Habit
	for _, h := range habits {
		if h.Active {
			active = append(active, h)
		}
	}

	startKey, endKey := dayKeys[0], dayKeys[len(dayKeys)-1]
	var window []models.Completion
	for _, c := range completions {
		if c.Date >= startKey && c.Date <= endKey {
			window = append(window, c)
		}
	}
	set := buildCompletedSet(window)

	completedInWindow := 0
	for _, c := range window {
		if c.Completed {
			completedInWindow++
		}
	}

	rate := 0
	if possible := len(active) * constants.DaysPerWeek; possible > 0 {
		rate = roundRate(completedInWindow, possible)
	}

	perfectDays := 0
	for _, key := range dayKeys {
		if len(active) == 0 {
			break
		}
		perfect := true
		for _, h := range active {
			if !set.completed(h.ID, key) {
				perfect = false
				break
			}
		}
		if perfect {
			perfectDays++
		}
	}

	habitStats := make([]models.HabitWeekStats, 0, len(active))
	for _, h := range active {
		count := len(set[h.ID])
		habitStats = append(habitStats, models.HabitWeekStats{
			HabitID:     h.ID,
			HabitName:   h.Name,
			Completions: count,
			// Every habit is scored against a full week for now; a custom
			// weekly target does not change the denominator.
			Target:         constants.DaysPerWeek,
			CompletionRate: roundRate(count, constants.DaysPerWeek),
		})
	}

	return models.WeeklyStats{
		WeekStart:       dateutil.DayKey(weekStart),
		WeekEnd:         dateutil.DayKey(weekEnd),
		TotalHabits:     len(active),
		CompletedHabits: completedInWindow,
		CompletionRate:  rate,
		PerfectDays:     perfectDays,
		HabitStats:      habitStats,
	}
}

func roundRate(part, whole int) int {
	return int(math.Round(100 * float64(part) / float64(whole)))
}

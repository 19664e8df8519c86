package models

// HabitWeekStats summarizes a single habit's completions inside one week
// window.
type HabitWeekStats struct {
	HabitID        string `json:"habit_id"`
	HabitName      string `json:"habit_name"`
	Completions    int    `json:"completions"`
	Target         int    `json:"target"`
	CompletionRate int    `json:"completion_rate"`
}

// WeeklyStats aggregates completions over a Sunday-to-Saturday window.
// Streaks are not part of this aggregate; callers combine it with the
// streak calculator when rendering.
type WeeklyStats struct {
	WeekStart       string           `json:"week_start"`
	WeekEnd         string           `json:"week_end"`
	TotalHabits     int              `json:"total_habits"`
	CompletedHabits int              `json:"completed_habits"`
	CompletionRate  int              `json:"completion_rate"`
	PerfectDays     int              `json:"perfect_days"`
	HabitStats      []HabitWeekStats `json:"habit_stats"`
}

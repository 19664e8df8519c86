package models

import "time"

// Completion records whether a habit was done on a specific calendar day.
// There is at most one record per (HabitID, Date) pair; toggling a day off
// flips Completed in place rather than deleting the record.
type Completion struct {
	ID        string `json:"id"`
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"` // YYYY-MM-DD format
	Completed bool   `json:"completed"`
	// CompletedAt is set when Completed is true and cleared otherwise.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Note        string     `json:"note,omitempty"`
}

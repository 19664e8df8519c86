// Package tracker is the synchronous API surface over the habit and
// completion collections: habit lifecycle, day toggles, and the queries
// the views are built from. It owns all mutations; reads go through a
// (habitID, date) index that is rebuilt on load and maintained on every
// mutation.
package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cadencehq/cadence/internal/dateutil"
	apperrors "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/models"
	"github.com/cadencehq/cadence/internal/stats"
	"github.com/cadencehq/cadence/internal/storage"
	"github.com/cadencehq/cadence/internal/validation"
)

// Tracker coordinates the habit store, the completion index, and the
// statistics engine. It is not safe for concurrent use; commands run one
// user action to completion, including the write-through persist step,
// before the next begins.
type Tracker struct {
	store storage.Provider
	// completed indexes habitID -> date -> completed flag for O(1)
	// IsCompleted lookups.
	completed map[string]map[string]bool
	now       func() time.Time
}

// New builds a Tracker over a loaded storage provider and rebuilds the
// completion index from the persisted collection.
func New(store storage.Provider) (*Tracker, error) {
	t := &Tracker{
		store:     store,
		completed: make(map[string]map[string]bool),
		now:       time.Now,
	}

	completions, err := store.GetAllCompletions()
	if err != nil {
		return nil, err
	}
	for _, c := range completions {
		t.setIndexed(c.HabitID, c.Date, c.Completed)
	}

	return t, nil
}

func (t *Tracker) setIndexed(habitID, date string, completed bool) {
	days, ok := t.completed[habitID]
	if !ok {
		days = make(map[string]bool)
		t.completed[habitID] = days
	}
	days[date] = completed
}

// HabitInput carries the caller-supplied fields for a new habit.
type HabitInput struct {
	Name          string
	Description   string
	Time          string
	Category      string
	Frequency     models.Frequency
	ScheduledDays []int
	CustomTarget  int
	Color         string
	Icon          string
}

// AddHabit validates the input, assigns a fresh id and creation
// timestamp, marks the habit active, and persists it.
func (t *Tracker) AddHabit(in HabitInput) (models.Habit, error) {
	habit := models.Habit{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Time:          in.Time,
		Category:      in.Category,
		Frequency:     in.Frequency,
		ScheduledDays: in.ScheduledDays,
		CustomTarget:  in.CustomTarget,
		Color:         in.Color,
		Icon:          in.Icon,
		CreatedAt:     t.now(),
		Active:        true,
	}

	if err := validation.ValidateHabit(habit); err != nil {
		return models.Habit{}, err
	}

	if err := t.store.AddHabit(habit); err != nil {
		return models.Habit{}, err
	}

	logger.Info("Added habit", "id", habit.ID, "name", habit.Name)
	return habit, nil
}

// HabitPatch is a partial update for a habit. Nil fields are left
// unchanged; ID and CreatedAt cannot be patched.
type HabitPatch struct {
	Name          *string
	Description   *string
	Time          *string
	Category      *string
	Frequency     *models.Frequency
	ScheduledDays *[]int
	CustomTarget  *int
	Color         *string
	Icon          *string
	Active        *bool
}

// UpdateHabit applies a field-level overwrite to the habit with the
// given id. An unknown id fails with a NotFoundError.
func (t *Tracker) UpdateHabit(id string, patch HabitPatch) (models.Habit, error) {
	habit, err := t.store.GetHabit(id)
	if err != nil {
		return models.Habit{}, err
	}

	if patch.Name != nil {
		habit.Name = *patch.Name
	}
	if patch.Description != nil {
		habit.Description = *patch.Description
	}
	if patch.Time != nil {
		habit.Time = *patch.Time
	}
	if patch.Category != nil {
		habit.Category = *patch.Category
	}
	if patch.Frequency != nil {
		habit.Frequency = *patch.Frequency
	}
	if patch.ScheduledDays != nil {
		habit.ScheduledDays = *patch.ScheduledDays
	}
	if patch.CustomTarget != nil {
		habit.CustomTarget = *patch.CustomTarget
	}
	if patch.Color != nil {
		habit.Color = *patch.Color
	}
	if patch.Icon != nil {
		habit.Icon = *patch.Icon
	}
	if patch.Active != nil {
		habit.Active = *patch.Active
	}

	if err := validation.ValidateHabit(habit); err != nil {
		return models.Habit{}, err
	}

	if err := t.store.UpdateHabit(habit); err != nil {
		return models.Habit{}, err
	}

	return habit, nil
}

// DeleteHabit removes the habit and every completion that references it.
func (t *Tracker) DeleteHabit(id string) error {
	if err := t.store.DeleteHabit(id); err != nil {
		return err
	}

	delete(t.completed, id)
	logger.Info("Deleted habit", "id", id)
	return nil
}

// Habit returns a single habit by id.
func (t *Tracker) Habit(id string) (models.Habit, error) {
	return t.store.GetHabit(id)
}

// Habits returns all habits in creation order, optionally including
// inactive ones.
func (t *Tracker) Habits(includeInactive bool) ([]models.Habit, error) {
	habits, err := t.store.GetAllHabits()
	if err != nil {
		return nil, err
	}
	if includeInactive {
		return habits, nil
	}

	active := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if h.Active {
			active = append(active, h)
		}
	}
	return active, nil
}

// IsCompleted reports whether a completed record exists for the habit on
// the given day. A missing record and a toggled-off record both read as
// false.
func (t *Tracker) IsCompleted(habitID, date string) bool {
	return t.completed[habitID][date]
}

// ToggleCompletion flips the completion state for (habitID, date). The
// first toggle for a day always creates a completed record; later
// toggles flip the retained record in place, setting CompletedAt when
// completing and clearing it when un-completing.
func (t *Tracker) ToggleCompletion(habitID, date string) (models.Completion, error) {
	if _, err := t.store.GetHabit(habitID); err != nil {
		return models.Completion{}, err
	}
	if !validation.ValidateDayKey(date) {
		return models.Completion{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	completion, err := t.store.GetCompletion(habitID, date)
	switch {
	case err == nil:
		completion.Completed = !completion.Completed
		if completion.Completed {
			now := t.now()
			completion.CompletedAt = &now
		} else {
			completion.CompletedAt = nil
		}
	case apperrors.IsNotFound(err):
		now := t.now()
		completion = models.Completion{
			ID:          uuid.New().String(),
			HabitID:     habitID,
			Date:        date,
			Completed:   true,
			CompletedAt: &now,
		}
	default:
		return models.Completion{}, err
	}

	if err := t.store.UpsertCompletion(completion); err != nil {
		return models.Completion{}, err
	}

	t.setIndexed(habitID, date, completion.Completed)
	logger.Debug("Toggled completion", "habit", habitID, "date", date, "completed", completion.Completed)
	return completion, nil
}

// Streak returns the habit's consecutive-day completion streak ending
// today.
func (t *Tracker) Streak(habitID string) (int, error) {
	if _, err := t.store.GetHabit(habitID); err != nil {
		return 0, err
	}

	completions, err := t.store.GetAllCompletions()
	if err != nil {
		return 0, err
	}

	return stats.Streak(completions, habitID, t.now()), nil
}

// WeeklyStats aggregates the week containing anchor across all active
// habits.
func (t *Tracker) WeeklyStats(anchor time.Time) (models.WeeklyStats, error) {
	habits, err := t.store.GetAllHabits()
	if err != nil {
		return models.WeeklyStats{}, err
	}
	completions, err := t.store.GetAllCompletions()
	if err != nil {
		return models.WeeklyStats{}, err
	}

	return stats.Weekly(habits, completions, anchor), nil
}

// Today returns the current canonical day key.
func (t *Tracker) Today() string {
	return dateutil.DayKey(t.now())
}

// Now returns the tracker's current instant.
func (t *Tracker) Now() time.Time {
	return t.now()
}

package storage

import "github.com/cadencehq/cadence/internal/models"

// Provider is the persistence boundary for the habit and completion
// collections. Every mutating call writes through to the backing store
// before it returns.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	// DeleteHabit removes the habit and cascades removal of every
	// completion that references it.
	DeleteHabit(id string) error

	// Completions
	UpsertCompletion(models.Completion) error
	GetCompletion(habitID, date string) (models.Completion, error)
	GetAllCompletions() ([]models.Completion, error)
	GetCompletionsForHabit(habitID, startDay, endDay string) ([]models.Completion, error)

	// Utils
	GetConfigPath() string
}

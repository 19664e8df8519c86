package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/models"
)

// Store is the serialized document: two independent collections keyed
// "habits" and "completions", kept in insertion order.
type Store struct {
	Version     int                 `json:"version"`
	Habits      []models.Habit      `json:"habits"`
	Completions []models.Completion `json:"completions"`
}

// JSONStore persists the habit and completion collections as a single
// JSON document. Every mutation re-serializes the affected state before
// returning. A missing or unreadable document is treated as the empty
// zero state, never as an error.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = emptyStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// Zero-state default: no file means empty collections.
			s.store = emptyStore()
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		logger.Warn("Storage file is corrupt, starting from empty collections", "path", s.path, "error", err)
		s.store = emptyStore()
		return nil
	}

	// Ensure collections are initialized
	if s.store.Habits == nil {
		s.store.Habits = []models.Habit{}
	}
	if s.store.Completions == nil {
		s.store.Completions = []models.Completion{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func emptyStore() *Store {
	return &Store{
		Version:     1,
		Habits:      []models.Habit{},
		Completions: []models.Completion{},
	}
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) AddHabit(habit models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Habits = append(s.store.Habits, habit)
	return s.save()
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if s.store == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	for _, h := range s.store.Habits {
		if h.ID == id {
			return h, nil
		}
	}

	return models.Habit{}, apperrors.NotFound("habit", id)
}

func (s *JSONStore) GetAllHabits() ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, len(s.store.Habits))
	copy(habits, s.store.Habits)
	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, h := range s.store.Habits {
		if h.ID == habit.ID {
			s.store.Habits[i] = habit
			return s.save()
		}
	}

	return apperrors.NotFound("habit", habit.ID)
}

func (s *JSONStore) DeleteHabit(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	found := false
	habits := s.store.Habits[:0]
	for _, h := range s.store.Habits {
		if h.ID == id {
			found = true
			continue
		}
		habits = append(habits, h)
	}
	if !found {
		return apperrors.NotFound("habit", id)
	}
	s.store.Habits = habits

	// Cascade: drop every completion referencing the habit.
	completions := s.store.Completions[:0]
	for _, c := range s.store.Completions {
		if c.HabitID != id {
			completions = append(completions, c)
		}
	}
	s.store.Completions = completions

	return s.save()
}

func (s *JSONStore) UpsertCompletion(completion models.Completion) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, c := range s.store.Completions {
		if c.HabitID == completion.HabitID && c.Date == completion.Date {
			s.store.Completions[i] = completion
			return s.save()
		}
	}

	s.store.Completions = append(s.store.Completions, completion)
	return s.save()
}

func (s *JSONStore) GetCompletion(habitID, date string) (models.Completion, error) {
	if s.store == nil {
		return models.Completion{}, fmt.Errorf("storage not loaded")
	}

	for _, c := range s.store.Completions {
		if c.HabitID == habitID && c.Date == date {
			return c, nil
		}
	}

	return models.Completion{}, apperrors.NotFound("completion", habitID+"/"+date)
}

func (s *JSONStore) GetAllCompletions() ([]models.Completion, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	completions := make([]models.Completion, len(s.store.Completions))
	copy(completions, s.store.Completions)
	return completions, nil
}

func (s *JSONStore) GetCompletionsForHabit(habitID, startDay, endDay string) ([]models.Completion, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	// Day keys are YYYY-MM-DD, so lexicographic comparison is
	// chronological comparison.
	var completions []models.Completion
	for _, c := range s.store.Completions {
		if c.HabitID == habitID && c.Date >= startDay && c.Date <= endDay {
			completions = append(completions, c)
		}
	}

	return completions, nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple cadence processes that share the same storage path
//     at the same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}

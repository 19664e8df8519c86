package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	apperrors "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/models"
)

// SQLiteStore is the sqlite-backed Provider. Timestamps are stored as
// RFC3339 text columns; scheduled days as a JSON array in a text column.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.ensureSchema()
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	// Zero-state default: opening a missing database creates an empty one.
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.ensureSchema()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS habits (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			time TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			frequency TEXT NOT NULL,
			scheduled_days TEXT NOT NULL DEFAULT '',
			custom_target INTEGER NOT NULL DEFAULT 0,
			color TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			active INTEGER NOT NULL DEFAULT 1
		);

		CREATE TABLE IF NOT EXISTS completions (
			id TEXT PRIMARY KEY,
			habit_id TEXT NOT NULL,
			day TEXT NOT NULL,
			completed INTEGER NOT NULL,
			completed_at TEXT,
			note TEXT NOT NULL DEFAULT '',
			UNIQUE(habit_id, day)
		);

		CREATE INDEX IF NOT EXISTS idx_completions_habit_day
			ON completions(habit_id, day);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func encodeScheduledDays(days []int) (string, error) {
	if len(days) == 0 {
		return "", nil
	}
	data, err := json.Marshal(days)
	if err != nil {
		return "", fmt.Errorf("failed to encode scheduled days: %w", err)
	}
	return string(data), nil
}

func decodeScheduledDays(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	var days []int
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return nil, fmt.Errorf("failed to decode scheduled days: %w", err)
	}
	return days, nil
}

func (s *SQLiteStore) AddHabit(habit models.Habit) error {
	days, err := encodeScheduledDays(habit.ScheduledDays)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO habits (id, name, description, time, category, frequency,
			scheduled_days, custom_target, color, icon, created_at, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, habit.Description, habit.Time, habit.Category,
		string(habit.Frequency), days, habit.CustomTarget, habit.Color,
		habit.Icon, habit.CreatedAt.Format(time.RFC3339), boolToInt(habit.Active))

	return err
}

func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, description, time, category, frequency,
			scheduled_days, custom_target, color, icon, created_at, active
		FROM habits WHERE id = ?`, id)

	habit, err := scanHabit(row)
	if err == sql.ErrNoRows {
		return models.Habit{}, apperrors.NotFound("habit", id)
	}
	return habit, err
}

func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, time, category, frequency,
			scheduled_days, custom_target, color, icon, created_at, active
		FROM habits ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}

	return habits, rows.Err()
}

func (s *SQLiteStore) UpdateHabit(habit models.Habit) error {
	days, err := encodeScheduledDays(habit.ScheduledDays)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(`
		UPDATE habits SET name = ?, description = ?, time = ?, category = ?,
			frequency = ?, scheduled_days = ?, custom_target = ?, color = ?,
			icon = ?, active = ?
		WHERE id = ?`,
		habit.Name, habit.Description, habit.Time, habit.Category,
		string(habit.Frequency), days, habit.CustomTarget, habit.Color,
		habit.Icon, boolToInt(habit.Active), habit.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("habit", habit.ID)
	}

	return nil
}

func (s *SQLiteStore) DeleteHabit(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("habit", id)
	}

	// Cascade: remove every completion referencing the habit.
	if _, err := tx.Exec(`DELETE FROM completions WHERE habit_id = ?`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) UpsertCompletion(completion models.Completion) error {
	var completedAt sql.NullString
	if completion.CompletedAt != nil {
		completedAt = sql.NullString{String: completion.CompletedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO completions (id, habit_id, day, completed, completed_at, note)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, day) DO UPDATE SET
			completed = excluded.completed,
			completed_at = excluded.completed_at,
			note = excluded.note`,
		completion.ID, completion.HabitID, completion.Date,
		boolToInt(completion.Completed), completedAt, completion.Note)

	return err
}

func (s *SQLiteStore) GetCompletion(habitID, date string) (models.Completion, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, day, completed, completed_at, note
		FROM completions WHERE habit_id = ? AND day = ?`, habitID, date)

	completion, err := scanCompletion(row)
	if err == sql.ErrNoRows {
		return models.Completion{}, apperrors.NotFound("completion", habitID+"/"+date)
	}
	return completion, err
}

func (s *SQLiteStore) GetAllCompletions() ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, completed, completed_at, note
		FROM completions ORDER BY day`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		completion, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		completions = append(completions, completion)
	}

	return completions, rows.Err()
}

func (s *SQLiteStore) GetCompletionsForHabit(habitID, startDay, endDay string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, completed, completed_at, note
		FROM completions
		WHERE habit_id = ? AND day >= ? AND day <= ?
		ORDER BY day`, habitID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		completion, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		completions = append(completions, completion)
	}

	return completions, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var frequency, scheduledDays, createdAt string
	var active int

	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Time, &h.Category,
		&frequency, &scheduledDays, &h.CustomTarget, &h.Color, &h.Icon,
		&createdAt, &active)
	if err != nil {
		return models.Habit{}, err
	}

	h.Frequency = models.Frequency(frequency)
	h.Active = active != 0

	h.ScheduledDays, err = decodeScheduledDays(scheduledDays)
	if err != nil {
		return models.Habit{}, err
	}

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}

	return h, nil
}

func scanCompletion(row rowScanner) (models.Completion, error) {
	var c models.Completion
	var completed int
	var completedAt sql.NullString

	err := row.Scan(&c.ID, &c.HabitID, &c.Date, &completed, &completedAt, &c.Note)
	if err != nil {
		return models.Completion{}, err
	}

	c.Completed = completed != 0
	if completedAt.Valid {
		t, err := time.Parse(time.RFC3339, completedAt.String)
		if err != nil {
			return models.Completion{}, fmt.Errorf("failed to parse completed_at for completion %s: %w", c.ID, err)
		}
		c.CompletedAt = &t
	}

	return c, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

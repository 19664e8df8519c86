package cli

import (
	"path/filepath"
	"testing"

	apperrors "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/models"
	"github.com/cadencehq/cadence/internal/storage"
	"github.com/cadencehq/cadence/internal/tracker"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "cadence.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("load store: %v", err)
	}
	tr, err := tracker.New(store)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	return &Context{Store: store, Tracker: tr}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{
			name:  "short names",
			input: "mon,wed,fri",
			want:  []int{1, 3, 5},
		},
		{
			name:  "full names mixed case",
			input: "Sunday,SATURDAY",
			want:  []int{0, 6},
		},
		{
			name:  "numbers",
			input: "0,3,6",
			want:  []int{0, 3, 6},
		},
		{
			name:  "whitespace tolerated",
			input: " tue , thu ",
			want:  []int{2, 4},
		},
		{
			name:    "invalid name",
			input:   "mon,noday",
			wantErr: true,
		},
		{
			name:    "out of range number",
			input:   "7",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestFormatSchedule(t *testing.T) {
	daily := models.Habit{Frequency: models.FrequencyDaily}
	if got := FormatSchedule(daily); got != "daily" {
		t.Errorf("daily = %q", got)
	}

	weekly := models.Habit{Frequency: models.FrequencyWeekly, ScheduledDays: []int{1, 5}}
	if got := FormatSchedule(weekly); got != "weekly on Mon,Fri" {
		t.Errorf("weekly = %q", got)
	}

	custom := models.Habit{Frequency: models.FrequencyCustom, CustomTarget: 3}
	if got := FormatSchedule(custom); got != "3x per week" {
		t.Errorf("custom = %q", got)
	}
}

func TestFindHabit(t *testing.T) {
	ctx := newTestContext(t)

	habit, err := ctx.Tracker.AddHabit(tracker.HabitInput{
		Name:      "Drink Water",
		Frequency: models.FrequencyDaily,
	})
	if err != nil {
		t.Fatalf("add habit: %v", err)
	}

	// By exact id.
	found, err := ctx.FindHabit(habit.ID)
	if err != nil || found.ID != habit.ID {
		t.Errorf("FindHabit by id -> (%+v, %v)", found, err)
	}

	// By name, case-insensitive.
	found, err = ctx.FindHabit("drink water")
	if err != nil || found.ID != habit.ID {
		t.Errorf("FindHabit by name -> (%+v, %v)", found, err)
	}

	// By unique id prefix.
	found, err = ctx.FindHabit(habit.ID[:8])
	if err != nil || found.ID != habit.ID {
		t.Errorf("FindHabit by prefix -> (%+v, %v)", found, err)
	}

	// Unknown reference.
	if _, err := ctx.FindHabit("zzz-nope"); !apperrors.IsNotFound(err) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestFindHabitAmbiguousPrefix(t *testing.T) {
	ctx := newTestContext(t)

	for _, name := range []string{"Run", "Read"} {
		if _, err := ctx.Tracker.AddHabit(tracker.HabitInput{Name: name, Frequency: models.FrequencyDaily}); err != nil {
			t.Fatalf("add habit: %v", err)
		}
	}

	// The empty-string prefix matches every habit.
	if _, err := ctx.FindHabit(""); err == nil {
		t.Error("expected error for ambiguous reference")
	}
}

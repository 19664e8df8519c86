package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/models"
	"github.com/cadencehq/cadence/internal/storage"
	"github.com/cadencehq/cadence/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
}

// FindHabit resolves a habit reference: exact id, then exact name
// (case-insensitive), then unique id prefix.
func (c *Context) FindHabit(ref string) (models.Habit, error) {
	if h, err := c.Store.GetHabit(ref); err == nil {
		return h, nil
	}

	habits, err := c.Store.GetAllHabits()
	if err != nil {
		return models.Habit{}, err
	}

	for _, h := range habits {
		if strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}

	var matches []models.Habit
	for _, h := range habits {
		if strings.HasPrefix(h.ID, ref) {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Habit{}, apperrors.NotFound("habit", ref)
	default:
		return models.Habit{}, fmt.Errorf("habit reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}

// ParseWeekdays parses a comma-separated list of weekdays into weekday
// numbers (0=Sunday .. 6=Saturday).
func ParseWeekdays(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	var weekdays []int

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, int(wd))
			continue
		}
		// Try parsing as number (0=Sunday, 6=Saturday)
		num, err := strconv.Atoi(part)
		if err == nil && num >= 0 && num <= 6 {
			weekdays = append(weekdays, num)
		} else {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
	}

	return weekdays, nil
}

// FormatSchedule formats a habit's frequency into a human-readable string
func FormatSchedule(h models.Habit) string {
	switch h.Frequency {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyWeekly:
		if len(h.ScheduledDays) > 0 {
			var days []string
			for _, d := range h.ScheduledDays {
				days = append(days, time.Weekday(d).String()[:3])
			}
			return fmt.Sprintf("weekly on %s", strings.Join(days, ","))
		}
		return "weekly (no days scheduled)"
	case models.FrequencyCustom:
		return fmt.Sprintf("%dx per week", h.CustomTarget)
	default:
		return "unknown"
	}
}

var colorTokens = map[string]lipgloss.Color{
	"emerald": lipgloss.Color("42"),
	"sky":     lipgloss.Color("39"),
	"violet":  lipgloss.Color("135"),
	"rose":    lipgloss.Color("211"),
	"amber":   lipgloss.Color("214"),
	"teal":    lipgloss.Color("44"),
	"pink":    lipgloss.Color("205"),
	"slate":   lipgloss.Color("245"),
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

// HabitStyle returns a lipgloss style for the habit's color token,
// falling back to an unstyled renderer for unknown tokens.
func HabitStyle(h models.Habit) lipgloss.Style {
	if c, ok := colorTokens[h.Color]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle()
}

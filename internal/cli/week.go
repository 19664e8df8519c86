package cli

import (
	"fmt"
	"strings"

	"github.com/cadencehq/cadence/internal/constants"
	"github.com/cadencehq/cadence/internal/dateutil"
)

type WeekCmd struct {
	Date string `help:"Any date inside the week to show (YYYY-MM-DD, default: today)." default:""`
}

func (c *WeekCmd) Run(ctx *Context) error {
	anchor := ctx.Tracker.Now()
	if c.Date != "" {
		parsed, err := dateutil.ParseDayKey(c.Date)
		if err != nil {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", c.Date)
		}
		anchor = parsed
	}

	weekly, err := ctx.Tracker.WeeklyStats(anchor)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Week %s – %s", weekly.WeekStart, weekly.WeekEnd)))
	fmt.Println()

	if weekly.TotalHabits == 0 {
		fmt.Println(mutedStyle.Render("No active habits."))
		return nil
	}

	fmt.Printf("Completion rate: %d%%\n", weekly.CompletionRate)
	fmt.Printf("Completions:     %d\n", weekly.CompletedHabits)
	fmt.Printf("Perfect days:    %d/%d\n", weekly.PerfectDays, constants.DaysPerWeek)
	fmt.Println()

	habits, err := ctx.Tracker.Habits(false)
	if err != nil {
		return err
	}
	styles := make(map[string]string, len(habits))
	for _, h := range habits {
		name := HabitStyle(h).Render(h.Name)
		if h.Icon != "" {
			name = h.Icon + " " + name
		}
		styles[h.ID] = name
	}

	for _, hs := range weekly.HabitStats {
		streak, err := ctx.Tracker.Streak(hs.HabitID)
		if err != nil {
			return err
		}

		name := styles[hs.HabitID]
		if name == "" {
			name = hs.HabitName
		}

		bar := progressBar(hs.Completions, hs.Target)
		line := fmt.Sprintf("%s %d/%d (%d%%)  %s", bar, hs.Completions, hs.Target, hs.CompletionRate, name)
		if streak > 0 {
			line += "  " + streakStyle.Render(fmt.Sprintf("🔥 %d", streak))
		}
		fmt.Println(line)
	}

	return nil
}

func progressBar(completed, target int) string {
	if target <= 0 {
		return ""
	}
	if completed > target {
		completed = target
	}
	return doneStyle.Render(strings.Repeat("█", completed)) +
		mutedStyle.Render(strings.Repeat("░", target-completed))
}

package cli

import (
	"fmt"
	"math"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	habits, err := ctx.Tracker.Habits(false)
	if err != nil {
		return err
	}

	now := ctx.Tracker.Now()
	today := ctx.Tracker.Today()
	weekday := now.UTC().Weekday()

	var due, done int
	fmt.Println(headerStyle.Render(fmt.Sprintf("Today · %s (%s)", today, weekday)))
	fmt.Println()

	for _, h := range habits {
		if !h.DueOn(weekday) {
			continue
		}
		due++

		status := "[ ]"
		if ctx.Tracker.IsCompleted(h.ID, today) {
			status = doneStyle.Render("[x]")
			done++
		}

		name := HabitStyle(h).Render(h.Name)
		if h.Icon != "" {
			name = h.Icon + " " + name
		}
		line := fmt.Sprintf("%s %s", status, name)

		streak, err := ctx.Tracker.Streak(h.ID)
		if err != nil {
			return err
		}
		if streak > 0 {
			line += "  " + streakStyle.Render(fmt.Sprintf("🔥 %d", streak))
		}
		if h.Time != "" {
			line += "  " + mutedStyle.Render(h.Time)
		}
		fmt.Println(line)
	}

	if due == 0 {
		fmt.Println(mutedStyle.Render("Nothing scheduled for today."))
		return nil
	}

	rate := int(math.Round(100 * float64(done) / float64(due)))
	fmt.Printf("\nDone: %d/%d (%d%%)\n", done, due, rate)
	return nil
}

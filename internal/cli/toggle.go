package cli

import (
	"fmt"

	"github.com/cadencehq/cadence/internal/validation"
)

type ToggleCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	habit, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = ctx.Tracker.Today()
	} else if !validation.ValidateDayKey(day) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	completion, err := ctx.Tracker.ToggleCompletion(habit.ID, day)
	if err != nil {
		return err
	}

	if completion.Completed {
		fmt.Printf("Marked habit %q completed for %s\n", habit.Name, day)
	} else {
		fmt.Printf("Unmarked habit %q for %s\n", habit.Name, day)
	}
	return nil
}

type StreakCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *StreakCmd) Run(ctx *Context) error {
	habit, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}

	streak, err := ctx.Tracker.Streak(habit.ID)
	if err != nil {
		return err
	}

	switch streak {
	case 0:
		fmt.Printf("%s: no current streak\n", habit.Name)
	case 1:
		fmt.Printf("%s: 1 day streak\n", habit.Name)
	default:
		fmt.Printf("%s: %d day streak\n", habit.Name, streak)
	}
	return nil
}

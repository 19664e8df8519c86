package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/cadencehq/cadence/internal/constants"
	"github.com/cadencehq/cadence/internal/models"
	"github.com/cadencehq/cadence/internal/tracker"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its completion history."`
}

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name. Omit to fill in the form interactively."`
	Description string `help:"Free-text description."`
	Time        string `help:"Advisory time of day (HH:MM)."`
	Category    string `help:"Category label." default:"Personal"`
	Frequency   string `help:"Frequency: daily, weekly, or custom." default:"daily"`
	Days        string `help:"Scheduled weekdays for weekly habits (e.g. mon,wed,fri)."`
	Target      int    `help:"Times-per-week target for custom habits."`
	Color       string `help:"Display color token." default:"emerald"`
	Icon        string `help:"Icon token."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if c.Name == "" {
		if err := c.runForm(); err != nil {
			return err
		}
	}

	freq, err := models.ParseFrequency(c.Frequency)
	if err != nil {
		return err
	}

	var days []int
	if c.Days != "" {
		days, err = ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
	}

	habit, err := ctx.Tracker.AddHabit(tracker.HabitInput{
		Name:          c.Name,
		Description:   c.Description,
		Time:          c.Time,
		Category:      c.Category,
		Frequency:     freq,
		ScheduledDays: days,
		CustomTarget:  c.Target,
		Color:         c.Color,
		Icon:          c.Icon,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added habit %q (%s)\n", habit.Name, FormatSchedule(habit))
	return nil
}

func (c *HabitAddCmd) runForm() error {
	var scheduled []int

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name must not be empty")
					}
					return nil
				}).
				Value(&c.Name),
			huh.NewText().
				Title("Description").
				Lines(2).
				Value(&c.Description),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(constants.Categories...)...).
				Value(&c.Category),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(huh.NewOptions(
					string(models.FrequencyDaily),
					string(models.FrequencyWeekly),
					string(models.FrequencyCustom),
				)...).
				Value(&c.Frequency),
		),
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Scheduled days (weekly habits)").
				Options(weekdayOptions()...).
				Value(&scheduled),
			huh.NewSelect[string]().
				Title("Color").
				Options(huh.NewOptions(constants.Colors...)...).
				Value(&c.Color),
			huh.NewSelect[string]().
				Title("Icon").
				Options(huh.NewOptions(constants.Icons...)...).
				Value(&c.Icon),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if len(scheduled) > 0 {
		parts := make([]string, len(scheduled))
		for i, d := range scheduled {
			parts[i] = fmt.Sprintf("%d", d)
		}
		c.Days = strings.Join(parts, ",")
	}

	return nil
}

func weekdayOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 7)
	for d := 0; d < 7; d++ {
		opts[d] = huh.NewOption(time.Weekday(d).String(), d)
	}
	return opts
}

type HabitListCmd struct {
	All bool `help:"Include inactive habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Tracker.Habits(c.All)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Println(headerStyle.Render("Habits"))
	for _, h := range habits {
		streak, err := ctx.Tracker.Streak(h.ID)
		if err != nil {
			return err
		}

		name := HabitStyle(h).Render(h.Name)
		if h.Icon != "" {
			name = h.Icon + " " + name
		}

		line := fmt.Sprintf("%s  %s", name, mutedStyle.Render(FormatSchedule(h)))
		if streak > 0 {
			line += "  " + streakStyle.Render(fmt.Sprintf("%d day streak", streak))
		}
		if !h.Active {
			line += "  " + mutedStyle.Render("[inactive]")
		}
		fmt.Println(line)
		fmt.Println(mutedStyle.Render("  " + h.ID))
	}

	return nil
}

type HabitEditCmd struct {
	Habit       string  `arg:"" help:"Habit name or id."`
	Name        *string `help:"New name."`
	Description *string `help:"New description."`
	Time        *string `help:"New advisory time (HH:MM)."`
	Category    *string `help:"New category label."`
	Frequency   *string `help:"New frequency: daily, weekly, or custom."`
	Days        *string `help:"New scheduled weekdays (e.g. mon,wed,fri)."`
	Target      *int    `help:"New times-per-week target."`
	Color       *string `help:"New color token."`
	Icon        *string `help:"New icon token."`
	Active      *bool   `help:"Set the active flag."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habit, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}

	patch := tracker.HabitPatch{
		Name:         c.Name,
		Description:  c.Description,
		Time:         c.Time,
		Category:     c.Category,
		CustomTarget: c.Target,
		Color:        c.Color,
		Icon:         c.Icon,
		Active:       c.Active,
	}

	if c.Frequency != nil {
		freq, err := models.ParseFrequency(*c.Frequency)
		if err != nil {
			return err
		}
		patch.Frequency = &freq
	}
	if c.Days != nil {
		days, err := ParseWeekdays(*c.Days)
		if err != nil {
			return err
		}
		patch.ScheduledDays = &days
	}

	updated, err := ctx.Tracker.UpdateHabit(habit.ID, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated habit %q (%s)\n", updated.Name, FormatSchedule(updated))
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}

	if err := ctx.Tracker.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q and its completion history\n", habit.Name)
	return nil
}

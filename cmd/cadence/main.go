package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/cadencehq/cadence/internal/cli"
	"github.com/cadencehq/cadence/internal/constants"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/storage"
	"github.com/cadencehq/cadence/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .db suffix selects the SQLite backend; anything else uses the JSON store." default:"~/.config/cadence/cadence.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize cadence storage."`
	Habit  cli.HabitCmd  `cmd:"" help:"Manage habits."`
	Toggle cli.ToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
	Today  cli.TodayCmd  `cmd:"" help:"Show today's habits." default:"1"`
	Week   cli.WeekCmd   `cmd:"" help:"Show weekly statistics."`
	Streak cli.StreakCmd `cmd:"" help:"Show a habit's streak."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive today checklist."`
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit tracker: recurring habits, daily completions, weekly stats"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandPath(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".db") {
		store = storage.NewSQLiteStore(configPath)
	} else {
		store = storage.NewJSONStore(configPath)
	}

	if err := store.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	tr, err := tracker.New(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tr,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

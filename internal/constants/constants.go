package constants

const (
	AppName           = "cadence"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/cadence/cadence.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DaysPerWeek is the length of the Sunday-anchored week window.
	DaysPerWeek = 7

	// MaxStreakDays bounds the backward streak walk. Safety bound, not a
	// domain rule.
	MaxStreakDays = 365
)

// Categories offered by the habit add form. Free-text categories are still
// accepted via flags.
var Categories = []string{
	"Health",
	"Fitness",
	"Productivity",
	"Learning",
	"Wellness",
	"Creativity",
	"Social",
	"Personal",
}

// Colors are display tokens stored on a habit; the CLI maps them to ANSI
// colors when rendering.
var Colors = []string{
	"emerald",
	"sky",
	"violet",
	"rose",
	"amber",
	"teal",
	"pink",
	"slate",
}

// Icons offered by the habit add form.
var Icons = []string{
	"💧", "💪", "📚", "🧘", "🏃", "🥗", "😴", "✍️", "🎵", "🧑‍💻",
}

// Package tui is the interactive today checklist: the habits due today
// with their completion state, toggled in place.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cadencehq/cadence/internal/models"
	"github.com/cadencehq/cadence/internal/tracker"
)

type item struct {
	habit  models.Habit
	done   bool
	streak int
}

type Model struct {
	tracker *tracker.Tracker
	today   string
	items   []item
	cursor  int
	keys    KeyMap
	err     error
}

func New(tr *tracker.Tracker) (Model, error) {
	m := Model{
		tracker: tr,
		today:   tr.Today(),
		keys:    DefaultKeyMap(),
	}
	if err := m.reload(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) reload() error {
	habits, err := m.tracker.Habits(false)
	if err != nil {
		return err
	}

	weekday := m.tracker.Now().UTC().Weekday()
	items := make([]item, 0, len(habits))
	for _, h := range habits {
		if !h.DueOn(weekday) {
			continue
		}
		streak, err := m.tracker.Streak(h.ID)
		if err != nil {
			return err
		}
		items = append(items, item{
			habit:  h,
			done:   m.tracker.IsCompleted(h.ID, m.today),
			streak: streak,
		})
	}

	m.items = items
	if m.cursor >= len(m.items) && len(m.items) > 0 {
		m.cursor = len(m.items) - 1
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if len(m.items) == 0 {
				break
			}
			h := m.items[m.cursor].habit
			if _, err := m.tracker.ToggleCompletion(h.ID, m.today); err != nil {
				m.err = err
				break
			}
			if err := m.reload(); err != nil {
				m.err = err
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Today · %s", m.today)))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(helpStyle.Render("Nothing scheduled for today."))
		b.WriteString("\n")
	}

	done := 0
	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		status := "[ ]"
		if it.done {
			status = doneStyle.Render("[x]")
			done++
		}

		name := it.habit.Name
		if it.habit.Icon != "" {
			name = it.habit.Icon + " " + name
		}

		line := fmt.Sprintf("%s%s %s", cursor, status, name)
		if it.streak > 0 {
			line += "  " + streakStyle.Render(fmt.Sprintf("🔥 %d", it.streak))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString(fmt.Sprintf("\nDone: %d/%d\n", done, len(m.items)))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · space toggle · q quit"))
	b.WriteString("\n")

	return docStyle.Render(b.String())
}

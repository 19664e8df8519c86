package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cadencehq/cadence/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	model, err := tui.New(ctx.Tracker)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/taskmd/internal/app"
	"github.com/runoshun/taskmd/internal/tui"
)

// newTuiCommand creates the tui command for launching the interactive TUI.
func newTuiCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for managing tasks.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
	return cmd
}

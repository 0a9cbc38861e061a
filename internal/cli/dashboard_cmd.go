package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempus/internal/tui"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the full-screen dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("dashboard requires an interactive terminal")
			}

			program := tea.NewProgram(
				tui.NewDashboard(app.Entries, app.Summary),
				tea.WithAltScreen(),
			)
			_, err := program.Run()
			return err
		},
	}
}

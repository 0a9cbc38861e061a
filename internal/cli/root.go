// Package cli wires the cobra command tree. Commands talk to the service
// layer only; persistence and webhook details stay behind it.
package cli

import (
	"github.com/alexanderramin/tempus/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
// IsInteractive gates the huh forms and confirmation prompts; wired to an
// isatty check in main, and to false in tests.
type App struct {
	Entries       service.EntryService
	Summary       service.SummaryService
	Settings      service.SettingsService
	Backup        service.BackupService
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "tempus" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempus",
		Short: "Shift clock and labor cost tracker",
	}

	root.AddCommand(
		newEntryCmd(app),
		newSummaryCmd(app),
		newWageCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newWebhookCmd(app),
		newDashboardCmd(app),
	)

	return root
}

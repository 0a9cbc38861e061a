package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempus/internal/importer"
)

func newImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all data from a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			// Parse up front so the confirmation can name the entry
			// count, and a bad file fails before any prompt.
			backup, err := importer.LoadBackup(path)
			if err != nil {
				return err
			}
			if err := importer.Validate(backup); err != nil {
				return fmt.Errorf("invalid backup: %w", err)
			}

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("import replaces all current data; pass --yes to confirm")
				}
				confirmed := false
				prompt := fmt.Sprintf("Import %d entries? This will replace current data.", len(backup.Entries))
				if err := importConfirmForm(prompt, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Import cancelled.")
					return nil
				}
			}

			result, err := app.Backup.Import(cmd.Context(), path)
			if err != nil {
				return err
			}

			msg := fmt.Sprintf("Imported %d entries", result.EntryCount)
			if result.SettingsApplied {
				msg += " and wage settings"
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

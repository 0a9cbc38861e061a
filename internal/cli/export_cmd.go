package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries to a file",
	}

	cmd.AddCommand(
		newExportCSVCmd(app),
		newExportJSONCmd(app),
	)

	return cmd
}

func defaultExportName(kind, ext string) string {
	return fmt.Sprintf("tempus-%s-%s.%s", kind, time.Now().Format("2006-01-02"), ext)
}

func newExportCSVCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Write a CSV report of all entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = defaultExportName("export", "csv")
			}
			if err := app.Backup.ExportCSV(cmd.Context(), out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default tempus-export-<date>.csv)")

	return cmd
}

func newExportJSONCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Write a JSON backup of entries and settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = defaultExportName("backup", "json")
			}
			if err := app.Backup.ExportJSON(cmd.Context(), out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default tempus-backup-<date>.json)")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
)

func newWebhookCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Configure entry forwarding to an HTTP endpoint",
	}

	cmd.AddCommand(
		newWebhookURLCmd(app),
		newWebhookEnableCmd(app),
		newWebhookDisableCmd(app),
		newWebhookTestCmd(app),
	)

	return cmd
}

func newWebhookURLCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "url [URL]",
		Short: "Show or set the webhook endpoint",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				url, err := app.Settings.WebhookURL(cmd.Context())
				if err != nil {
					return err
				}
				if url == "" {
					fmt.Fprintln(out, formatter.Dim("No webhook URL configured."))
					return nil
				}
				enabled, err := app.Settings.WebhookEnabled(cmd.Context())
				if err != nil {
					return err
				}
				state := formatter.StyleDim.Render("disabled")
				if enabled {
					state = formatter.StyleGreen.Render("enabled")
				}
				fmt.Fprintf(out, "%s (%s)\n", url, state)
				return nil
			}

			if err := app.Settings.SetWebhookURL(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out, "Webhook URL set to %s\n", args[0])
			return nil
		},
	}
}

func newWebhookEnableCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "enable",
		Short: "Enable pushing completed entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.SetWebhookEnabled(cmd.Context(), true); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Webhook enabled")
			return nil
		},
	}
}

func newWebhookDisableCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Disable pushing completed entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.SetWebhookEnabled(cmd.Context(), false); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Webhook disabled")
			return nil
		},
	}
}

func newWebhookTestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Send a diagnostic payload to the configured endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.TestWebhook(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Webhook test delivered."))
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/domain"
)

func newWageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wage",
		Short: "Show and change hourly rates",
	}

	cmd.AddCommand(
		newWageShowCmd(app),
		newWageSetCmd(app),
		newWageMultiplierCmd(app),
	)

	return cmd
}

func newWageShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current wage configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Settings.WageConfig(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(domain.CanonicalCategories))
			for _, c := range domain.CanonicalCategories {
				rows = append(rows, []string{
					formatter.CategoryBadge(c),
					formatter.Money(cfg.Rates[c]) + "/hr",
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.RenderTable([]string{"Category", "Rate"}, rows))
			fmt.Fprintf(out, "\nOvertime multiplier: %sx\n",
				formatter.Bold(strconv.FormatFloat(cfg.OvertimeMultiplier, 'f', -1, 64)))
			return nil
		},
	}
}

func newWageSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set CATEGORY RATE",
		Short: "Set the hourly rate of a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid rate %q", args[1])
			}

			cfg, err := app.Settings.SetRate(cmd.Context(), args[0], rate)
			if err != nil {
				return err
			}

			category := domain.NormalizeCategory(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Rate for %s set to %s/hr\n",
				category, formatter.Money(cfg.Rates[category]))
			return nil
		},
	}
}

func newWageMultiplierCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "multiplier X",
		Short: "Set the overtime multiplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			multiplier, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid multiplier %q", args[0])
			}

			cfg, err := app.Settings.SetOvertimeMultiplier(cmd.Context(), multiplier)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Overtime multiplier set to %sx\n",
				strconv.FormatFloat(cfg.OvertimeMultiplier, 'f', -1, 64))
			return nil
		},
	}
}

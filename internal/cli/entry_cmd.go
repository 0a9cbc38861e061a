package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/service"
)

var errNegativeMinutes = errors.New("minutes must be a non-negative integer")

func parseEntryID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid entry id %q", arg)
	}
	return id, nil
}

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage shift entries",
	}

	cmd.AddCommand(
		newEntryAddCmd(app),
		newEntryCloseCmd(app),
		newEntryBreakCmd(app),
		newEntryOvertimeCmd(app),
		newEntryRemoveCmd(app),
		newEntryListCmd(app),
	)

	return cmd
}

func newEntryAddCmd(app *App) *cobra.Command {
	var name, category, in, out, breakStr string
	var overtime bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No flags on a terminal: collect the fields interactively.
			if name == "" && in == "" && app.interactive() {
				if err := addEntryForm(&name, &category, &in, &out, &breakStr).Run(); err != nil {
					return err
				}
			}

			clockIn, err := domain.ParseClock(in)
			if err != nil {
				return fmt.Errorf("clock-in: %w", err)
			}

			input := service.AddEntryInput{
				Name:     name,
				Category: category,
				ClockIn:  clockIn,
				Overtime: overtime,
			}
			if out != "" {
				clockOut, err := domain.ParseClock(out)
				if err != nil {
					return fmt.Errorf("clock-out: %w", err)
				}
				input.ClockOut = &clockOut
			}
			if breakStr != "" {
				minutes, err := strconv.Atoi(breakStr)
				if err != nil || minutes < 0 {
					return errNegativeMinutes
				}
				input.BreakMinutes = minutes
			}

			e, err := app.Entries.Add(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added entry %d for %s (%s, %s)\n",
				e.ID, e.Name, e.Category, formatter.ClockRange(e))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Worker name")
	cmd.Flags().StringVar(&category, "category", "", "Worker category (staff, temp, contractor, other)")
	cmd.Flags().StringVar(&in, "in", "", "Clock-in time (HH:MM)")
	cmd.Flags().StringVar(&out, "out", "", "Clock-out time (HH:MM); omit for an active shift")
	cmd.Flags().StringVar(&breakStr, "break", "", "Break in minutes")
	cmd.Flags().BoolVar(&overtime, "overtime", false, "Mark the shift as overtime")

	return cmd
}

func newEntryCloseCmd(app *App) *cobra.Command {
	var out, breakStr string

	cmd := &cobra.Command{
		Use:   "close ID",
		Short: "Clock out an active shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			clockOut, err := domain.ParseClock(out)
			if err != nil {
				return fmt.Errorf("clock-out: %w", err)
			}
			minutes := 0
			if breakStr != "" {
				minutes, err = strconv.Atoi(breakStr)
				if err != nil || minutes < 0 {
					return errNegativeMinutes
				}
			}

			e, err := app.Entries.Close(cmd.Context(), id, clockOut, minutes)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Closed entry %d: %s worked %s\n",
				e.ID, e.Name, formatter.Hours(e.TotalHours))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Clock-out time (HH:MM)")
	cmd.Flags().StringVar(&breakStr, "break", "", "Break in minutes")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newEntryBreakCmd(app *App) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "break ID",
		Short: "Update the break of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			e, err := app.Entries.SetBreak(cmd.Context(), id, minutes)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Entry %d break set to %s (%s worked)\n",
				e.ID, formatter.FormatMinutes(e.BreakMinutes), formatter.Hours(e.TotalHours))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Break in minutes")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newEntryOvertimeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overtime ID",
		Short: "Toggle the overtime flag of a completed entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			e, err := app.Entries.ToggleOvertime(cmd.Context(), id)
			if err != nil {
				return err
			}

			state := "off"
			if e.Overtime {
				state = "on"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entry %d overtime %s\n", e.ID, state)
			return nil
		},
	}
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			if err := app.Entries.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %d\n", id)
			return nil
		},
	}
}

func newEntryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Entries.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries yet.")
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatEntryList(entries))
			return nil
		},
	}
}

func formatEntryList(entries []*domain.ShiftEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			formatter.CategoryBadge(e.Category),
			formatter.ClockRange(e),
			formatter.FormatMinutes(e.BreakMinutes),
			formatter.Hours(e.TotalHours),
			formatter.OvertimeBadge(e.Overtime),
			formatter.EntryStatePill(e),
		})
	}
	return formatter.RenderTable(
		[]string{"ID", "Name", "Category", "Shift", "Break", "Hours", "OT", "State"},
		rows,
	)
}

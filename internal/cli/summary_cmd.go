package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/service"
)

const histogramWidth = 30

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals per category and the hourly workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Summary.Report(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatSummary(report))
			return nil
		},
	}
}

func formatSummary(report *service.SummaryReport) string {
	var b strings.Builder

	overall := fmt.Sprintf("%s   %s   %s",
		formatter.Bold(formatter.Hours(report.Overall.TotalHours)),
		fmt.Sprintf("%d workers", report.Overall.Headcount),
		formatter.Bold(formatter.Money(report.Overall.TotalCost)),
	)
	b.WriteString(formatter.RenderBox("Totals", overall))
	b.WriteString("\n\n")

	b.WriteString(formatter.Header("By Category"))
	b.WriteString("\n")
	if len(report.Categories) == 0 {
		b.WriteString(formatter.Dim("No completed shifts yet."))
		b.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(report.Categories))
		for _, ct := range report.Categories {
			rows = append(rows, []string{
				formatter.CategoryBadge(ct.Category),
				formatter.Hours(ct.Hours),
				formatter.Percent(ct.Percent),
			})
		}
		b.WriteString(formatter.RenderTable([]string{"Category", "Hours", "Share"}, rows))
	}
	b.WriteString("\n")

	b.WriteString(formatter.Header("Hourly Workload"))
	b.WriteString("\n")
	b.WriteString(formatter.RenderHistogram(report.Hourly, histogramWidth))

	return b.String()
}

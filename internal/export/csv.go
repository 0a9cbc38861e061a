// Package export writes shift entries to the two supported backup
// formats: a spreadsheet-friendly CSV report and a JSON backup that the
// importer reads back.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/wage"
)

// csvHeader is the column order of the CSV report.
var csvHeader = []string{
	"Name", "Category", "Clock In", "Clock Out",
	"Break (minutes)", "Total Hours", "Overtime", "Cost",
}

// WriteCSV renders entries as a CSV report. The file starts with a UTF-8
// BOM so spreadsheet applications detect the encoding, and ends with a
// TOTALS row covering completed entries only.
func WriteCSV(w io.Writer, entries []*domain.ShiftEntry, cfg *domain.WageConfig) error {
	if _, err := io.WriteString(w, "\ufeff"); err != nil {
		return fmt.Errorf("writing CSV preamble: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	var totalHours, totalCost float64
	for _, e := range entries {
		clockOut := "ACTIVE"
		if e.ClockOut != nil {
			clockOut = e.ClockOut.String()
		}
		overtime := "No"
		if e.Overtime {
			overtime = "Yes"
		}
		cost := wage.Cost(e, cfg)
		if e.Completed() {
			totalHours += e.TotalHours
			totalCost += cost
		}

		row := []string{
			e.Name,
			e.Category,
			e.ClockIn.String(),
			clockOut,
			strconv.Itoa(e.BreakMinutes),
			FormatHours(e.TotalHours),
			overtime,
			fmt.Sprintf("%.2f", cost),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	blank := make([]string, len(csvHeader))
	totals := []string{
		"TOTALS", "", "", "", "",
		FormatHours(totalHours), "",
		fmt.Sprintf("%.2f", totalCost),
	}
	if err := cw.Write(blank); err != nil {
		return fmt.Errorf("writing CSV separator: %w", err)
	}
	if err := cw.Write(totals); err != nil {
		return fmt.Errorf("writing CSV totals: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// FormatHours prints an hours value without trailing zeros, so 7.50 reads
// as 7.5 and 8.00 as 8.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

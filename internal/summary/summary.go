// Package summary derives the aggregate views shown by the summary command
// and the dashboard: per-category totals, the 24-bucket workload histogram,
// and the grand totals. All functions read the entry list without mutating
// it; only completed entries contribute hours and cost.
package summary

import (
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/timecalc"
	"github.com/alexanderramin/tempus/internal/wage"
)

// CategoryTotal is one category's share of the completed hours.
type CategoryTotal struct {
	Category string
	Hours    float64
	Percent  float64
}

// Overall holds the grand totals shown in the summary header.
type Overall struct {
	TotalHours float64
	Headcount  int
	TotalCost  float64
}

// CategoryTotals sums completed hours per category, with each category's
// percentage of the grand total (zero when the grand total is zero).
// Categories without completed entries are omitted; output order follows
// first appearance in the entry list.
func CategoryTotals(entries []*domain.ShiftEntry) []CategoryTotal {
	byCategory := make(map[string]float64)
	var order []string
	for _, e := range entries {
		if e.Active() {
			continue
		}
		if _, seen := byCategory[e.Category]; !seen {
			order = append(order, e.Category)
		}
		byCategory[e.Category] += e.TotalHours
	}

	var grand float64
	for _, hours := range byCategory {
		grand += hours
	}

	totals := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		pct := 0.0
		if grand > 0 {
			pct = byCategory[category] / grand * 100
		}
		totals = append(totals, CategoryTotal{
			Category: category,
			Hours:    byCategory[category],
			Percent:  pct,
		})
	}
	return totals
}

// HourlyTotals sums the hourly distribution of every completed entry into
// the 24 clock-hour buckets.
func HourlyTotals(entries []*domain.ShiftEntry) [24]float64 {
	var totals [24]float64
	for _, e := range entries {
		if e.Active() {
			continue
		}
		dist := timecalc.HourlyDistribution(&e.ClockIn, e.ClockOut, e.BreakMinutes)
		for i, hours := range dist {
			totals[i] += hours
		}
	}
	return totals
}

// Compute returns the grand totals: completed hours, distinct worker names
// across all entries (active shifts count toward headcount), and completed
// cost.
func Compute(entries []*domain.ShiftEntry, cfg *domain.WageConfig) Overall {
	names := make(map[string]struct{})
	var o Overall
	for _, e := range entries {
		names[e.Name] = struct{}{}
		if e.Active() {
			continue
		}
		o.TotalHours += e.TotalHours
		o.TotalCost += wage.Cost(e, cfg)
	}
	o.Headcount = len(names)
	return o
}

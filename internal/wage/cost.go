// Package wage computes labor cost for shift entries from wage
// configuration, including the rate-resolution fallback chain for
// non-canonical category labels.
package wage

import "github.com/alexanderramin/tempus/internal/domain"

// ResolveRate looks up the hourly rate for a category label. An exact key
// wins; unknown labels fall through the ordered category rules to the
// matching canonical rate, then to the "other" rate, then to zero. Legacy
// and free-text labels therefore always resolve to some rate rather than
// erroring.
func ResolveRate(cfg *domain.WageConfig, category string) float64 {
	if cfg == nil || cfg.Rates == nil {
		return 0
	}
	if rate, ok := cfg.Rates[category]; ok {
		return rate
	}
	if canonical, ok := domain.MatchCanonical(category); ok {
		return cfg.Rates[canonical]
	}
	return cfg.Rates[domain.CategoryOther]
}

// Cost returns the labor cost of an entry: cached worked hours times the
// resolved rate, times the overtime multiplier when the overtime flag is
// set. Active entries cost nothing. The result is unrounded; rounding
// happens at display and export time.
func Cost(e *domain.ShiftEntry, cfg *domain.WageConfig) float64 {
	if e.Active() {
		return 0
	}
	multiplier := 1.0
	if e.Overtime && cfg != nil {
		multiplier = cfg.OvertimeMultiplier
	}
	return e.TotalHours * ResolveRate(cfg, e.Category) * multiplier
}

package domain

// WageConfig maps canonical category labels to hourly rates, with a single
// overtime multiplier applied uniformly across categories. The JSON field
// names match the backup format written by earlier versions.
type WageConfig struct {
	Rates              map[string]float64 `json:"wages"`
	OvertimeMultiplier float64            `json:"overtimeMultiplier"`
}

// DefaultWageConfig returns the configuration used when no stored settings
// exist or when a stored config predates the canonical category keys.
func DefaultWageConfig() *WageConfig {
	return &WageConfig{
		Rates: map[string]float64{
			CategoryStaff:      15,
			CategoryTemp:       12,
			CategoryContractor: 20,
			CategoryOther:      15,
		},
		OvertimeMultiplier: 1.5,
	}
}

// HasCanonicalShape reports whether the config carries the canonical staff
// key. Stored configs from older versions keyed rates differently; they are
// replaced wholesale by defaults on load.
func (c *WageConfig) HasCanonicalShape() bool {
	if c == nil || c.Rates == nil {
		return false
	}
	_, ok := c.Rates[CategoryStaff]
	return ok
}

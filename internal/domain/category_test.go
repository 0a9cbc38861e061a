package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		label    string
		expected string
	}{
		{"staff", CategoryStaff},
		{"temp", CategoryTemp},
		{"contractor", CategoryContractor},
		{"other", CategoryOther},
		{"Staffer", CategoryStaff},
		{"STAFF", CategoryStaff},
		{"Staff🔶", CategoryStaff},
		{"Temp🔷", CategoryTemp},
		{"Contractor🔺", CategoryContractor},
		{"Temporary Worker", CategoryTemp},
		{"subcontractor", CategoryContractor},
		{"night crew", CategoryOther},
		{"", CategoryOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, NormalizeCategory(tc.label), "label=%q", tc.label)
	}
}

func TestNormalizeCategory_RuleOrder(t *testing.T) {
	// A label matching several rules resolves to the first rule in order.
	assert.Equal(t, CategoryStaff, NormalizeCategory("temp staff"))
}

func TestMatchCanonical(t *testing.T) {
	got, ok := MatchCanonical("Staffer")
	assert.True(t, ok)
	assert.Equal(t, CategoryStaff, got)

	_, ok = MatchCanonical("night crew")
	assert.False(t, ok)
}

func TestIsCanonicalCategory(t *testing.T) {
	for _, label := range CanonicalCategories {
		assert.True(t, IsCanonicalCategory(label))
	}
	assert.False(t, IsCanonicalCategory("Staff"))
	assert.False(t, IsCanonicalCategory("Staff🔶"))
}

func TestDefaultWageConfig(t *testing.T) {
	cfg := DefaultWageConfig()
	assert.True(t, cfg.HasCanonicalShape())
	assert.Equal(t, 15.0, cfg.Rates[CategoryStaff])
	assert.Equal(t, 12.0, cfg.Rates[CategoryTemp])
	assert.Equal(t, 20.0, cfg.Rates[CategoryContractor])
	assert.Equal(t, 15.0, cfg.Rates[CategoryOther])
	assert.Equal(t, 1.5, cfg.OvertimeMultiplier)
}

func TestWageConfig_HasCanonicalShape(t *testing.T) {
	assert.False(t, (*WageConfig)(nil).HasCanonicalShape())
	assert.False(t, (&WageConfig{}).HasCanonicalShape())
	// A config from an older version keyed by decorated labels.
	legacy := &WageConfig{Rates: map[string]float64{"Staff🔶": 15}}
	assert.False(t, legacy.HasCanonicalShape())
}

package domain

import "strings"

// Canonical category labels. Wage configuration is keyed by this set;
// entry categories are an open set and resolve onto it through the
// ordered rules below.
const (
	CategoryStaff      = "staff"
	CategoryTemp       = "temp"
	CategoryContractor = "contractor"
	CategoryOther      = "other"
)

// CanonicalCategories lists the canonical labels in display order.
var CanonicalCategories = []string{CategoryStaff, CategoryTemp, CategoryContractor, CategoryOther}

// categoryRule maps a label predicate to a canonical category. Rules are
// evaluated in fixed order; the order is part of the wage-resolution
// contract, so legacy and free-text labels resolve deterministically.
type categoryRule struct {
	matches   func(string) bool
	canonical string
}

func containsFold(substr string) func(string) bool {
	return func(label string) bool {
		return strings.Contains(strings.ToLower(label), substr)
	}
}

var categoryRules = []categoryRule{
	{containsFold("staff"), CategoryStaff},
	{containsFold("temp"), CategoryTemp},
	{containsFold("contractor"), CategoryContractor},
}

// IsCanonicalCategory reports whether label is one of the canonical set.
func IsCanonicalCategory(label string) bool {
	switch label {
	case CategoryStaff, CategoryTemp, CategoryContractor, CategoryOther:
		return true
	}
	return false
}

// NormalizeCategory maps an arbitrary category label onto the canonical
// set. Canonical labels pass through; anything else is matched by the
// ordered substring rules, falling back to CategoryOther. Labels from
// older data shapes (mixed case, decorated suffixes) resolve this way.
func NormalizeCategory(label string) string {
	if IsCanonicalCategory(label) {
		return label
	}
	for _, rule := range categoryRules {
		if rule.matches(label) {
			return rule.canonical
		}
	}
	return CategoryOther
}

// MatchCanonical returns the canonical category the ordered rules map the
// label to, or false when no rule matches. Unlike NormalizeCategory it does
// not fall back to CategoryOther, which lets callers distinguish "matched a
// canonical category" from "unrecognized label".
func MatchCanonical(label string) (string, bool) {
	for _, rule := range categoryRules {
		if rule.matches(label) {
			return rule.canonical, true
		}
	}
	return "", false
}

package repository

import (
	"database/sql"

	"github.com/alexanderramin/tempus/internal/domain"
)

// nullableClockToString converts an optional clock time to a value suitable
// for SQLite storage. Returns nil (SQL NULL) when the shift is still active.
func nullableClockToString(c *domain.ClockTime) interface{} {
	if c == nil {
		return nil
	}
	return c.String()
}

// parseNullableClock parses a sql.NullString into a *domain.ClockTime.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableClock(s sql.NullString) *domain.ClockTime {
	if !s.Valid || s.String == "" {
		return nil
	}
	c, err := domain.ParseClock(s.String)
	if err != nil {
		return nil
	}
	return &c
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations, then normalizes legacy data shapes
// left behind by earlier versions.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateLegacyCategories(db); err != nil {
		return fmt.Errorf("normalizing legacy categories: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS shift_entries (
		id            INTEGER PRIMARY KEY,
		name          TEXT NOT NULL,
		category      TEXT NOT NULL,
		clock_in      TEXT NOT NULL,
		clock_out     TEXT,
		break_minutes INTEGER NOT NULL DEFAULT 0,
		total_hours   REAL NOT NULL DEFAULT 0,
		is_overtime   INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_shift_entries_category ON shift_entries(category)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// migrateLegacyCategories rewrites category labels from older data shapes
// (mixed case, decorated suffixes, free text) onto the canonical set. The
// rules mirror the wage-resolution fallback chain and run in the same
// order; anything left unmatched becomes "other".
func migrateLegacyCategories(db *sql.DB) error {
	rules := []struct {
		pattern   string
		canonical string
	}{
		{"%staff%", "staff"},
		{"%temp%", "temp"},
		{"%contractor%", "contractor"},
	}
	for _, r := range rules {
		if _, err := db.Exec(`UPDATE shift_entries SET category = ?
			WHERE category NOT IN ('staff', 'temp', 'contractor', 'other')
			  AND lower(category) LIKE ?`, r.canonical, r.pattern); err != nil {
			return fmt.Errorf("rewriting %q categories: %w", r.canonical, err)
		}
	}
	if _, err := db.Exec(`UPDATE shift_entries SET category = 'other'
		WHERE category NOT IN ('staff', 'temp', 'contractor', 'other')`); err != nil {
		return fmt.Errorf("rewriting fallback categories: %w", err)
	}
	return nil
}

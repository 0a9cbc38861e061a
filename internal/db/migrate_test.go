package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestMigrate_CreatesTables(t *testing.T) {
	database := openTestDB(t)

	for _, table := range []string{"shift_entries", "settings"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database := openTestDB(t)
	// OpenDB already migrated; a second run must not fail.
	require.NoError(t, Migrate(database))
}

func TestMigrate_NormalizesLegacyCategories(t *testing.T) {
	database := openTestDB(t)

	insert := `INSERT INTO shift_entries (id, name, category, clock_in, created_at)
		VALUES (?, ?, ?, '09:00', '2026-01-01T00:00:00Z')`
	rows := []struct {
		id       int64
		category string
		expected string
	}{
		{1, "Staff🔶", "staff"},
		{2, "TEMP", "temp"},
		{3, "Sub-Contractor", "contractor"},
		{4, "night crew", "other"},
		{5, "staff", "staff"},
		{6, "other", "other"},
	}
	for _, r := range rows {
		_, err := database.Exec(insert, r.id, "Worker", r.category)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(database))

	for _, r := range rows {
		var got string
		require.NoError(t, database.QueryRow(
			`SELECT category FROM shift_entries WHERE id = ?`, r.id).Scan(&got))
		assert.Equal(t, r.expected, got, "id=%d category=%q", r.id, r.category)
	}
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tempus/internal/db"
	"github.com/alexanderramin/tempus/internal/domain"
)

// SQLiteEntryRepo implements EntryRepo using a SQLite database.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(conn db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: conn}
}

const entryColumns = `id, name, category, clock_in, clock_out, break_minutes, total_hours, is_overtime, created_at`

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.ShiftEntry) error {
	query := `INSERT INTO shift_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		e.Category,
		e.ClockIn.String(),
		nullableClockToString(e.ClockOut),
		e.BreakMinutes,
		e.TotalHours,
		boolToInt(e.Overtime),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting shift entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, id int64) (*domain.ShiftEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM shift_entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanEntry(row)
}

// List returns all entries in insertion order. Ids are assigned
// monotonically at creation, so id order is insertion order.
func (r *SQLiteEntryRepo) List(ctx context.Context) ([]*domain.ShiftEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM shift_entries ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing shift entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) Update(ctx context.Context, e *domain.ShiftEntry) error {
	query := `UPDATE shift_entries
		SET name = ?, category = ?, clock_in = ?, clock_out = ?,
		    break_minutes = ?, total_hours = ?, is_overtime = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Name,
		e.Category,
		e.ClockIn.String(),
		nullableClockToString(e.ClockOut),
		e.BreakMinutes,
		e.TotalHours,
		boolToInt(e.Overtime),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating shift entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating shift entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("shift entry %d: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shift_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting shift entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting shift entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("shift entry %d: %w", id, ErrNotFound)
	}
	return nil
}

// MaxID returns the largest id ever stored, or zero for an empty table.
// Callers use it to keep newly assigned ids strictly increasing.
func (r *SQLiteEntryRepo) MaxID(ctx context.Context) (int64, error) {
	var maxID int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM shift_entries`).Scan(&maxID)
	if err != nil {
		return 0, fmt.Errorf("reading max entry id: %w", err)
	}
	return maxID, nil
}

// DeleteAll removes every entry. Used by the backup importer inside a
// transaction when replacing state wholesale.
func (r *SQLiteEntryRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM shift_entries`); err != nil {
		return fmt.Errorf("clearing shift entries: %w", err)
	}
	return nil
}

// scanEntry scans a single entry from a *sql.Row.
func (r *SQLiteEntryRepo) scanEntry(row *sql.Row) (*domain.ShiftEntry, error) {
	var e domain.ShiftEntry
	var clockInStr, createdAtStr string
	var clockOutStr sql.NullString
	var overtime int

	err := row.Scan(
		&e.ID, &e.Name, &e.Category, &clockInStr, &clockOutStr,
		&e.BreakMinutes, &e.TotalHours, &overtime, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("shift entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning shift entry: %w", err)
	}

	return r.populateEntry(&e, clockInStr, clockOutStr, overtime, createdAtStr)
}

// scanEntries scans multiple entries from *sql.Rows.
func (r *SQLiteEntryRepo) scanEntries(rows *sql.Rows) ([]*domain.ShiftEntry, error) {
	var entries []*domain.ShiftEntry
	for rows.Next() {
		var e domain.ShiftEntry
		var clockInStr, createdAtStr string
		var clockOutStr sql.NullString
		var overtime int

		err := rows.Scan(
			&e.ID, &e.Name, &e.Category, &clockInStr, &clockOutStr,
			&e.BreakMinutes, &e.TotalHours, &overtime, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning shift entry row: %w", err)
		}

		entry, populateErr := r.populateEntry(&e, clockInStr, clockOutStr, overtime, createdAtStr)
		if populateErr != nil {
			return nil, populateErr
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shift entries: %w", err)
	}
	return entries, nil
}

// populateEntry fills in parsed fields after scanning raw column values.
func (r *SQLiteEntryRepo) populateEntry(e *domain.ShiftEntry, clockInStr string, clockOutStr sql.NullString, overtime int, createdAtStr string) (*domain.ShiftEntry, error) {
	clockIn, err := domain.ParseClock(clockInStr)
	if err != nil {
		return nil, fmt.Errorf("parsing clock_in: %w", err)
	}
	e.ClockIn = clockIn
	e.ClockOut = parseNullableClock(clockOutStr)
	e.Overtime = intToBool(overtime)

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return e, nil
}

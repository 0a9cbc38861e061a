package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/timecalc"
)

var nextFixtureID int64 = 1700000000000

// EntryOption mutates a fixture entry during construction.
type EntryOption func(*domain.ShiftEntry)

// NewTestEntry builds a completed 09:00-17:00 staff entry with a fresh
// monotonic id. TotalHours is kept consistent with the clock fields.
func NewTestEntry(name string, opts ...EntryOption) *domain.ShiftEntry {
	out := MustClock("17:00")
	e := &domain.ShiftEntry{
		ID:        nextFixtureID,
		Name:      name,
		Category:  domain.CategoryStaff,
		ClockIn:   MustClock("09:00"),
		ClockOut:  &out,
		CreatedAt: time.Now().UTC(),
	}
	nextFixtureID++
	for _, opt := range opts {
		opt(e)
	}
	e.TotalHours = timecalc.WorkedHours(&e.ClockIn, e.ClockOut, e.BreakMinutes)
	return e
}

// WithCategory sets the entry category.
func WithCategory(category string) EntryOption {
	return func(e *domain.ShiftEntry) { e.Category = category }
}

// WithClocks sets clock-in and clock-out from "HH:MM" strings.
func WithClocks(in, out string) EntryOption {
	return func(e *domain.ShiftEntry) {
		e.ClockIn = MustClock(in)
		c := MustClock(out)
		e.ClockOut = &c
	}
}

// WithBreak sets the break duration in minutes.
func WithBreak(minutes int) EntryOption {
	return func(e *domain.ShiftEntry) { e.BreakMinutes = minutes }
}

// WithOvertime marks the entry as overtime.
func WithOvertime() EntryOption {
	return func(e *domain.ShiftEntry) { e.Overtime = true }
}

// StillActive clears the clock-out, leaving the shift in progress.
func StillActive() EntryOption {
	return func(e *domain.ShiftEntry) { e.ClockOut = nil }
}

// MustClock parses an "HH:MM" string, panicking on bad fixture data.
func MustClock(s string) domain.ClockTime {
	c, err := domain.ParseClock(s)
	if err != nil {
		panic(fmt.Sprintf("bad fixture clock %q: %v", s, err))
	}
	return c
}

package domain

import (
	"errors"
	"time"
)

var (
	// ErrAlreadyCompleted is returned when closing an entry that already
	// has a clock-out. Completed entries never return to the active state.
	ErrAlreadyCompleted = errors.New("entry is already completed")

	// ErrEntryActive is returned for operations that require a clock-out,
	// such as toggling the overtime flag.
	ErrEntryActive = errors.New("entry has no clock-out yet")
)

// ShiftEntry is one clock-in-to-clock-out work period for a named worker.
// A nil ClockOut means the shift is still in progress. TotalHours is a
// cached derivation from the clock fields and break; every mutation that
// touches those fields recomputes it before the entry is persisted.
type ShiftEntry struct {
	ID           int64
	Name         string
	Category     string
	ClockIn      ClockTime
	ClockOut     *ClockTime
	BreakMinutes int
	TotalHours   float64
	Overtime     bool
	CreatedAt    time.Time
}

// Active reports whether the shift is still in progress.
func (e *ShiftEntry) Active() bool { return e.ClockOut == nil }

// Completed reports whether the shift has a recorded clock-out.
func (e *ShiftEntry) Completed() bool { return e.ClockOut != nil }

// Close records the clock-out and break for an active entry.
func (e *ShiftEntry) Close(out ClockTime, breakMinutes int) error {
	if e.Completed() {
		return ErrAlreadyCompleted
	}
	if breakMinutes < 0 {
		breakMinutes = 0
	}
	e.ClockOut = &out
	e.BreakMinutes = breakMinutes
	return nil
}

// SetBreak updates the break duration. Negative values clamp to zero.
func (e *ShiftEntry) SetBreak(minutes int) {
	if minutes < 0 {
		minutes = 0
	}
	e.BreakMinutes = minutes
}

// ToggleOvertime flips the overtime flag. The flag is only meaningful once
// the shift is completed.
func (e *ShiftEntry) ToggleOvertime() error {
	if e.Active() {
		return ErrEntryActive
	}
	e.Overtime = !e.Overtime
	return nil
}

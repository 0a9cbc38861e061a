package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftEntry_Close(t *testing.T) {
	e := &ShiftEntry{Name: "Alice", Category: CategoryStaff, ClockIn: ClockTime{Hour: 9}}
	assert.True(t, e.Active())

	require.NoError(t, e.Close(ClockTime{Hour: 17}, 30))
	assert.True(t, e.Completed())
	assert.Equal(t, 30, e.BreakMinutes)
	require.NotNil(t, e.ClockOut)
	assert.Equal(t, "17:00", e.ClockOut.String())
}

func TestShiftEntry_Close_AlreadyCompleted(t *testing.T) {
	e := &ShiftEntry{ClockIn: ClockTime{Hour: 9}}
	require.NoError(t, e.Close(ClockTime{Hour: 17}, 0))

	err := e.Close(ClockTime{Hour: 18}, 0)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	// The first clock-out survives.
	assert.Equal(t, "17:00", e.ClockOut.String())
}

func TestShiftEntry_Close_NegativeBreakClamps(t *testing.T) {
	e := &ShiftEntry{ClockIn: ClockTime{Hour: 9}}
	require.NoError(t, e.Close(ClockTime{Hour: 17}, -15))
	assert.Equal(t, 0, e.BreakMinutes)
}

func TestShiftEntry_ToggleOvertime(t *testing.T) {
	e := &ShiftEntry{ClockIn: ClockTime{Hour: 9}}

	err := e.ToggleOvertime()
	assert.ErrorIs(t, err, ErrEntryActive)
	assert.False(t, e.Overtime)

	require.NoError(t, e.Close(ClockTime{Hour: 17}, 0))
	require.NoError(t, e.ToggleOvertime())
	assert.True(t, e.Overtime)
	require.NoError(t, e.ToggleOvertime())
	assert.False(t, e.Overtime)
}

func TestShiftEntry_SetBreak(t *testing.T) {
	e := &ShiftEntry{BreakMinutes: 30}
	e.SetBreak(45)
	assert.Equal(t, 45, e.BreakMinutes)
	e.SetBreak(-1)
	assert.Equal(t, 0, e.BreakMinutes)
}

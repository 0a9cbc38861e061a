package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a time of day at minute granularity, the unit both clock
// fields of a shift entry are recorded in. It carries no date; overnight
// semantics are decided by the calculators comparing two clock times.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q (expected HH:MM)", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: hour out of range", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: minute out of range", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MinuteOfDay returns minutes since midnight.
func (c ClockTime) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

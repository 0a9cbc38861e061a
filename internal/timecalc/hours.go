// Package timecalc implements the worked-hours and hourly-distribution
// arithmetic for shift entries. All functions are pure: identical inputs
// produce identical outputs and no shared state is touched.
package timecalc

import (
	"math"

	"github.com/alexanderramin/tempus/internal/domain"
)

const minutesPerDay = 24 * 60

// WorkedHours returns the hours worked between clock-in and clock-out minus
// the break, rounded to two decimals. Both times fall on the same reference
// day; a clock-out at or before the clock-in belongs to the following day,
// so equal times mean a full 24-hour shift. A break longer than the shift
// yields a negative result; callers see the raw value.
func WorkedHours(in, out *domain.ClockTime, breakMinutes int) float64 {
	if in == nil || out == nil {
		return 0
	}
	span := spanMinutes(*in, *out)
	hours := float64(span)/60 - float64(breakMinutes)/60
	return round2(hours)
}

// HourlyDistribution apportions the worked minutes of a shift across the 24
// calendar-hour buckets it occupies. Bucket 0 covers midnight to 1 AM. The
// walk advances from the clock-in to each next hour boundary, crediting the
// current bucket with the fraction of the hour actually worked, so a shift
// crossing midnight spreads over the buckets on both sides. The break is
// taken off the end of the shift.
func HourlyDistribution(in, out *domain.ClockTime, breakMinutes int) [24]float64 {
	var dist [24]float64
	if in == nil || out == nil {
		return dist
	}
	remaining := spanMinutes(*in, *out) - breakMinutes
	if remaining <= 0 {
		return dist
	}

	cursor := in.MinuteOfDay()
	for remaining > 0 {
		hour := (cursor / 60) % 24
		step := 60 - cursor%60
		if remaining < step {
			step = remaining
		}
		dist[hour] += float64(step) / 60
		cursor += 60 - cursor%60
		remaining -= step
	}
	return dist
}

// spanMinutes returns the minutes between two clock times, treating a
// clock-out at or before the clock-in as falling on the next day.
func spanMinutes(in, out domain.ClockTime) int {
	span := out.MinuteOfDay() - in.MinuteOfDay()
	if span <= 0 {
		span += minutesPerDay
	}
	return span
}

// round2 rounds to two decimals, half away from zero on the scaled value.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

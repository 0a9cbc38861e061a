package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Money formats a dollar amount to two decimals.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Hours formats an hours value without trailing zeros, suffixed "hrs".
func Hours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + " hrs"
}

// Percent formats a percentage to one decimal.
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// ClockRange renders a shift's in/out times, with "ACTIVE" for an open
// clock-out.
func ClockRange(e *domain.ShiftEntry) string {
	if e.ClockOut == nil {
		return e.ClockIn.String() + " - " + StyleYellow.Render("ACTIVE")
	}
	return e.ClockIn.String() + " - " + e.ClockOut.String()
}

// ClockLabel converts a 24-hour clock hour to a 12-hour label like "9 AM".
func ClockLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// HourRange labels one histogram bucket, e.g. "9 AM - 10 AM".
func HourRange(hour int) string {
	return ClockLabel(hour) + " - " + ClockLabel((hour+1)%24)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

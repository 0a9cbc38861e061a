package formatter

import (
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderHistogram renders the 24-bucket hourly workload as horizontal bars,
// one row per clock hour that has any hours. Bars scale against the busiest
// hour, with a floor of one hour so sparse data does not fill the bar.
func RenderHistogram(totals [24]float64, width int) string {
	if width < 2 {
		width = 2
	}

	max := 1.0
	for _, h := range totals {
		if h > max {
			max = h
		}
	}

	var rows [][]string
	for hour, h := range totals {
		if h <= 0 {
			continue
		}
		filled := int(h / max * float64(width))
		if filled > width {
			filled = width
		}
		bar := StyleBlue.Render(strings.Repeat(filledBlock, filled)) +
			StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
		rows = append(rows, []string{HourRange(hour), bar, Hours(h)})
	}

	if len(rows) == 0 {
		return Dim("No completed shifts yet.")
	}
	return RenderTable([]string{"Hour", "Workload", "Hours"}, rows)
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// EntryStatePill returns a colored state indicator for a shift entry.
func EntryStatePill(e *domain.ShiftEntry) string {
	if e.Active() {
		return StyleYellow.Render("● Active")
	}
	return StyleGreen.Render("✔ Completed")
}

// OvertimeBadge marks overtime shifts; regular shifts get a dimmed dash.
func OvertimeBadge(overtime bool) string {
	if overtime {
		return StylePurple.Render("OT")
	}
	return StyleDim.Render("--")
}

// CategoryBadge returns the category label colored by canonical category.
func CategoryBadge(category string) string {
	switch category {
	case domain.CategoryStaff:
		return StyleBlue.Render(category)
	case domain.CategoryTemp:
		return StyleYellow.Render(category)
	case domain.CategoryContractor:
		return StylePurple.Render(category)
	default:
		return StyleFg.Render(category)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

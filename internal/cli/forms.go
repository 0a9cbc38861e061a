package cli

import (
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/domain"
)

// tempusHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func tempusHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateClock(s string) error {
	_, err := domain.ParseClock(s)
	return err
}

func validateOptionalClock(s string) error {
	if s == "" {
		return nil
	}
	return validateClock(s)
}

func validateOptionalMinutes(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return errNegativeMinutes
	}
	return nil
}

// addEntryForm collects the fields of a new entry interactively. Clock-out
// and break may be left blank for a shift still in progress.
func addEntryForm(name, category, clockIn, clockOut, breakStr *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.CanonicalCategories))
	for _, c := range domain.CanonicalCategories {
		options = append(options, huh.NewOption(c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Worker Name").
				Placeholder("Alice").
				Value(name),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(category),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Clock In (HH:MM)").
				Placeholder("09:00").
				Value(clockIn).
				Validate(validateClock),
			huh.NewInput().
				Title("Clock Out (HH:MM, blank if still working)").
				Placeholder("17:00").
				Value(clockOut).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("Break Minutes").
				Placeholder("30").
				Value(breakStr).
				Validate(validateOptionalMinutes),
		),
	).WithTheme(tempusHuhTheme()).WithShowHelp(false)
}

// importConfirmForm asks before a wholesale data replacement.
func importConfirmForm(prompt string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Import").
				Negative("Cancel").
				Value(confirmed),
		),
	).WithTheme(tempusHuhTheme()).WithShowHelp(false)
}

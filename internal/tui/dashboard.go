// Package tui implements the full-screen dashboard: the entry list with
// keyboard actions, the grand totals header, and the hourly workload
// histogram.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/service"
)

const dashboardHistogramWidth = 24

// dashboardLoadedMsg signals that entry and summary data has been loaded.
type dashboardLoadedMsg struct {
	entries []*domain.ShiftEntry
	report  *service.SummaryReport
	err     error
}

// entryMutatedMsg reports the outcome of an overtime toggle or delete; the
// dashboard reloads on success.
type entryMutatedMsg struct {
	action string
	err    error
}

// Dashboard is the tea.Model for the full-screen view.
type Dashboard struct {
	entries service.EntryService
	summary service.SummaryService

	rows    []*domain.ShiftEntry
	report  *service.SummaryReport
	cursor  int
	loading bool
	err     error
	status  string
	width   int

	quitting bool
}

func NewDashboard(entries service.EntryService, summary service.SummaryService) *Dashboard {
	return &Dashboard{
		entries: entries,
		summary: summary,
		loading: true,
	}
}

func (m *Dashboard) shortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "toggle overtime")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m *Dashboard) Init() tea.Cmd {
	return m.loadData()
}

func (m *Dashboard) loadData() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		entries, err := m.entries.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		report, err := m.summary.Report(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{entries: entries, report: report}
	}
}

func (m *Dashboard) selected() *domain.ShiftEntry {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor]
}

func (m *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.rows = msg.entries
		m.report = msg.report
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case entryMutatedMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		m.status = formatter.Dim(msg.action)
		return m, m.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "r":
			m.loading = true
			m.status = ""
			return m, m.loadData()
		case "o":
			if e := m.selected(); e != nil {
				return m, m.toggleOvertime(e.ID)
			}
		case "x":
			if e := m.selected(); e != nil {
				return m, m.deleteEntry(e.ID)
			}
		}
	}

	return m, nil
}

func (m *Dashboard) toggleOvertime(id int64) tea.Cmd {
	return func() tea.Msg {
		_, err := m.entries.ToggleOvertime(context.Background(), id)
		return entryMutatedMsg{action: "overtime toggled", err: err}
	}
}

func (m *Dashboard) deleteEntry(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.entries.Remove(context.Background(), id)
		return entryMutatedMsg{action: "entry deleted", err: err}
	}
}

func (m *Dashboard) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return formatter.Dim("Loading…")
	}
	if m.err != nil {
		return formatter.StyleRed.Render("Error: " + m.err.Error())
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.entriesView())
	b.WriteString("\n")
	b.WriteString(formatter.Header("Hourly Workload"))
	b.WriteString("\n")
	b.WriteString(formatter.RenderHistogram(m.report.Hourly, dashboardHistogramWidth))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	b.WriteString("\n\n")
	b.WriteString(m.helpView())

	return b.String()
}

func (m *Dashboard) headerView() string {
	o := m.report.Overall
	cells := []string{
		formatter.Bold(formatter.Hours(o.TotalHours)),
		fmt.Sprintf("%d workers", o.Headcount),
		formatter.Bold(formatter.Money(o.TotalCost)),
	}
	return formatter.RenderBox("Tempus", strings.Join(cells, "   "))
}

func (m *Dashboard) entriesView() string {
	if len(m.rows) == 0 {
		return formatter.Dim("No entries yet. Add one with 'tempus entry add'.")
	}

	rows := make([][]string, 0, len(m.rows))
	for i, e := range m.rows {
		marker := "  "
		name := e.Name
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
			name = formatter.Bold(name)
		}
		rows = append(rows, []string{
			marker + strconv.FormatInt(e.ID, 10),
			name,
			formatter.CategoryBadge(e.Category),
			formatter.ClockRange(e),
			formatter.Hours(e.TotalHours),
			formatter.OvertimeBadge(e.Overtime),
			formatter.EntryStatePill(e),
		})
	}
	return formatter.RenderTable(
		[]string{"ID", "Name", "Category", "Shift", "Hours", "OT", "State"},
		rows,
	)
}

func (m *Dashboard) helpView() string {
	parts := make([]string, 0, 4)
	for _, b := range m.shortHelp() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s",
			formatter.StyleFg.Render(h.Key), formatter.Dim(h.Desc)))
	}
	return strings.Join(parts, "  ·  ")
}

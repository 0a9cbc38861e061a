package service

import (
	"context"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/summary"
	"github.com/alexanderramin/tempus/internal/webhook"
)

// AddEntryInput carries the fields of a new shift entry. ClockOut may be
// nil for a shift that is still in progress.
type AddEntryInput struct {
	Name         string
	Category     string
	ClockIn      domain.ClockTime
	ClockOut     *domain.ClockTime
	BreakMinutes int
	Overtime     bool
}

type EntryService interface {
	Add(ctx context.Context, in AddEntryInput) (*domain.ShiftEntry, error)
	Close(ctx context.Context, id int64, out domain.ClockTime, breakMinutes int) (*domain.ShiftEntry, error)
	SetBreak(ctx context.Context, id int64, minutes int) (*domain.ShiftEntry, error)
	ToggleOvertime(ctx context.Context, id int64) (*domain.ShiftEntry, error)
	Remove(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.ShiftEntry, error)
	List(ctx context.Context) ([]*domain.ShiftEntry, error)
}

// SummaryReport bundles everything the summary command and the dashboard
// header render in one read.
type SummaryReport struct {
	Overall    summary.Overall
	Categories []summary.CategoryTotal
	Hourly     [24]float64
}

type SummaryService interface {
	Report(ctx context.Context) (*SummaryReport, error)
}

type SettingsService interface {
	WageConfig(ctx context.Context) (*domain.WageConfig, error)
	SetRate(ctx context.Context, category string, rate float64) (*domain.WageConfig, error)
	SetOvertimeMultiplier(ctx context.Context, multiplier float64) (*domain.WageConfig, error)
	WebhookURL(ctx context.Context) (string, error)
	SetWebhookURL(ctx context.Context, url string) error
	WebhookEnabled(ctx context.Context) (bool, error)
	SetWebhookEnabled(ctx context.Context, enabled bool) error
	TestWebhook(ctx context.Context) error
}

// ImportResult holds the outcome of a backup import.
type ImportResult struct {
	EntryCount      int
	SettingsApplied bool
}

type BackupService interface {
	ExportCSV(ctx context.Context, path string) error
	ExportJSON(ctx context.Context, path string) error
	Import(ctx context.Context, filePath string) (*ImportResult, error)
}

// Pusher delivers webhook payloads. Satisfied by *webhook.Client.
type Pusher interface {
	PushEntry(ctx context.Context, url string, p webhook.EntryPayload) error
	PushTest(ctx context.Context, url string) error
}

// Notifier receives short status lines about background side effects, such
// as a failed webhook delivery. It must not block.
type Notifier func(msg string)

package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/tempus/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// EntryRepo persists shift entries. List returns entries in insertion
// order; ids are assigned by the caller and are never reused.
type EntryRepo interface {
	Create(ctx context.Context, e *domain.ShiftEntry) error
	GetByID(ctx context.Context, id int64) (*domain.ShiftEntry, error)
	List(ctx context.Context) ([]*domain.ShiftEntry, error)
	Update(ctx context.Context, e *domain.ShiftEntry) error
	Delete(ctx context.Context, id int64) error
	MaxID(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

// SettingsRepo is the key-value store for wage configuration and webhook
// preferences.
type SettingsRepo interface {
	WageConfig(ctx context.Context) (*domain.WageConfig, error)
	SetWageConfig(ctx context.Context, cfg *domain.WageConfig) error
	WebhookURL(ctx context.Context) (string, error)
	SetWebhookURL(ctx context.Context, url string) error
	WebhookEnabled(ctx context.Context) (bool, error)
	SetWebhookEnabled(ctx context.Context, enabled bool) error
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/alexanderramin/tempus/internal/db"
	"github.com/alexanderramin/tempus/internal/domain"
)

// Settings keys. The wage config is stored as one JSON blob; the webhook
// preferences are plain scalars.
const (
	keyWageConfig     = "wage_config"
	keyWebhookURL     = "webhook_url"
	keyWebhookEnabled = "webhook_enabled"
)

// SQLiteSettingsRepo implements SettingsRepo over the settings key-value
// table.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

// WageConfig loads the stored wage configuration. A missing value yields
// the defaults. A stored config that predates the canonical category keys
// is replaced wholesale by defaults, and the replacement is persisted so
// the legacy shape is gone for good.
func (r *SQLiteSettingsRepo) WageConfig(ctx context.Context) (*domain.WageConfig, error) {
	raw, err := r.get(ctx, keyWageConfig)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.DefaultWageConfig(), nil
		}
		return nil, fmt.Errorf("reading wage config: %w", err)
	}

	var cfg domain.WageConfig
	if unmarshalErr := json.Unmarshal([]byte(raw), &cfg); unmarshalErr != nil || !cfg.HasCanonicalShape() {
		defaults := domain.DefaultWageConfig()
		if setErr := r.SetWageConfig(ctx, defaults); setErr != nil {
			return nil, setErr
		}
		return defaults, nil
	}
	return &cfg, nil
}

func (r *SQLiteSettingsRepo) SetWageConfig(ctx context.Context, cfg *domain.WageConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding wage config: %w", err)
	}
	return r.set(ctx, keyWageConfig, string(data))
}

// WebhookURL returns the configured endpoint, or "" when none is set.
func (r *SQLiteSettingsRepo) WebhookURL(ctx context.Context) (string, error) {
	raw, err := r.get(ctx, keyWebhookURL)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("reading webhook url: %w", err)
	}
	return raw, nil
}

func (r *SQLiteSettingsRepo) SetWebhookURL(ctx context.Context, url string) error {
	return r.set(ctx, keyWebhookURL, url)
}

// WebhookEnabled reports whether pushes are turned on. Defaults to false.
func (r *SQLiteSettingsRepo) WebhookEnabled(ctx context.Context) (bool, error) {
	raw, err := r.get(ctx, keyWebhookEnabled)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("reading webhook enabled flag: %w", err)
	}
	enabled, _ := strconv.ParseBool(raw)
	return enabled, nil
}

func (r *SQLiteSettingsRepo) SetWebhookEnabled(ctx context.Context, enabled bool) error {
	return r.set(ctx, keyWebhookEnabled, strconv.FormatBool(enabled))
}

func (r *SQLiteSettingsRepo) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	return value, err
}

func (r *SQLiteSettingsRepo) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("storing setting %q: %w", key, err)
	}
	return nil
}

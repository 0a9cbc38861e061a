package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_WageConfig_DefaultsWhenUnset(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))

	cfg, err := repo.WageConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWageConfig(), cfg)
}

func TestSettingsRepo_WageConfig_RoundTrip(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	cfg := domain.DefaultWageConfig()
	cfg.Rates[domain.CategoryTemp] = 13.5
	cfg.OvertimeMultiplier = 2
	require.NoError(t, repo.SetWageConfig(ctx, cfg))

	fetched, err := repo.WageConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, fetched)
}

func TestSettingsRepo_WageConfig_LegacyShapeReplacedByDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(database)
	ctx := context.Background()

	// A config from an older version keyed by decorated labels.
	legacy := `{"wages":{"Staff🔶":15,"Temp🔷":12},"overtimeMultiplier":1.5}`
	_, err := database.Exec(`INSERT INTO settings (key, value) VALUES ('wage_config', ?)`, legacy)
	require.NoError(t, err)

	cfg, err := repo.WageConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWageConfig(), cfg)

	// The replacement was persisted: the stored blob now has the
	// canonical shape.
	var raw string
	require.NoError(t, database.QueryRow(
		`SELECT value FROM settings WHERE key = 'wage_config'`).Scan(&raw))
	assert.Contains(t, raw, `"staff"`)
	assert.NotContains(t, raw, "Staff🔶")
}

func TestSettingsRepo_WageConfig_MalformedReplacedByDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(database)

	_, err := database.Exec(`INSERT INTO settings (key, value) VALUES ('wage_config', 'not json')`)
	require.NoError(t, err)

	cfg, err := repo.WageConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWageConfig(), cfg)
}

func TestSettingsRepo_WebhookURL(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	url, err := repo.WebhookURL(ctx)
	require.NoError(t, err)
	assert.Empty(t, url)

	require.NoError(t, repo.SetWebhookURL(ctx, "https://example.com/hook"))
	url, err = repo.WebhookURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/hook", url)
}

func TestSettingsRepo_WebhookEnabled(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	enabled, err := repo.WebhookEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, repo.SetWebhookEnabled(ctx, true))
	enabled, err = repo.WebhookEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, repo.SetWebhookEnabled(ctx, false))
	enabled, err = repo.WebhookEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/repository"
)

var (
	// ErrRateNegative rejects negative hourly rates.
	ErrRateNegative = errors.New("hourly rate must not be negative")

	// ErrMultiplierTooLow rejects overtime multipliers below 1; overtime
	// never pays less than regular time.
	ErrMultiplierTooLow = errors.New("overtime multiplier must be at least 1")

	// ErrNoWebhookURL is returned when a push is requested before a
	// webhook URL has been configured.
	ErrNoWebhookURL = errors.New("no webhook URL configured")
)

type settingsService struct {
	settings repository.SettingsRepo
	pusher   Pusher
}

func NewSettingsService(settings repository.SettingsRepo, pusher Pusher) SettingsService {
	return &settingsService{settings: settings, pusher: pusher}
}

func (s *settingsService) WageConfig(ctx context.Context) (*domain.WageConfig, error) {
	return s.settings.WageConfig(ctx)
}

func (s *settingsService) SetRate(ctx context.Context, category string, rate float64) (*domain.WageConfig, error) {
	if rate < 0 {
		return nil, ErrRateNegative
	}
	cfg, err := s.settings.WageConfig(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Rates[domain.NormalizeCategory(category)] = rate
	if err := s.settings.SetWageConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("saving wage config: %w", err)
	}
	return cfg, nil
}

func (s *settingsService) SetOvertimeMultiplier(ctx context.Context, multiplier float64) (*domain.WageConfig, error) {
	if multiplier < 1 {
		return nil, ErrMultiplierTooLow
	}
	cfg, err := s.settings.WageConfig(ctx)
	if err != nil {
		return nil, err
	}
	cfg.OvertimeMultiplier = multiplier
	if err := s.settings.SetWageConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("saving wage config: %w", err)
	}
	return cfg, nil
}

func (s *settingsService) WebhookURL(ctx context.Context) (string, error) {
	return s.settings.WebhookURL(ctx)
}

func (s *settingsService) SetWebhookURL(ctx context.Context, url string) error {
	return s.settings.SetWebhookURL(ctx, url)
}

func (s *settingsService) WebhookEnabled(ctx context.Context) (bool, error) {
	return s.settings.WebhookEnabled(ctx)
}

func (s *settingsService) SetWebhookEnabled(ctx context.Context, enabled bool) error {
	return s.settings.SetWebhookEnabled(ctx, enabled)
}

func (s *settingsService) TestWebhook(ctx context.Context) error {
	url, err := s.settings.WebhookURL(ctx)
	if err != nil {
		return err
	}
	if url == "" {
		return ErrNoWebhookURL
	}
	return s.pusher.PushTest(ctx, url)
}

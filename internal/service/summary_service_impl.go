package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tempus/internal/repository"
	"github.com/alexanderramin/tempus/internal/summary"
)

type summaryService struct {
	entries  repository.EntryRepo
	settings repository.SettingsRepo
}

func NewSummaryService(entries repository.EntryRepo, settings repository.SettingsRepo) SummaryService {
	return &summaryService{entries: entries, settings: settings}
}

func (s *summaryService) Report(ctx context.Context) (*SummaryReport, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	cfg, err := s.settings.WageConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading wage config: %w", err)
	}

	return &SummaryReport{
		Overall:    summary.Compute(entries, cfg),
		Categories: summary.CategoryTotals(entries),
		Hourly:     summary.HourlyTotals(entries),
	}, nil
}

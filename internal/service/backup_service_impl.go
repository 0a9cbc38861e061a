package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/tempus/internal/db"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/export"
	"github.com/alexanderramin/tempus/internal/importer"
	"github.com/alexanderramin/tempus/internal/repository"
)

type backupService struct {
	entries  repository.EntryRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	now      func() time.Time
}

func NewBackupService(
	entries repository.EntryRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
) BackupService {
	return &backupService{entries: entries, settings: settings, uow: uow, now: time.Now}
}

func (s *backupService) ExportCSV(ctx context.Context, path string) error {
	entries, cfg, err := s.snapshot(ctx)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, entries, cfg); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

func (s *backupService) ExportJSON(ctx context.Context, path string) error {
	entries, cfg, err := s.snapshot(ctx)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, entries, cfg); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing backup file: %w", err)
	}
	return nil
}

// Import replaces all entries, and the wage configuration when the backup
// carries one, in a single transaction. A backup that fails to parse or
// validate leaves the store untouched.
func (s *backupService) Import(ctx context.Context, filePath string) (*ImportResult, error) {
	backup, err := importer.LoadBackup(filePath)
	if err != nil {
		return nil, err
	}
	if err := importer.Validate(backup); err != nil {
		return nil, fmt.Errorf("invalid backup: %w", err)
	}

	entries, cfg := importer.Convert(backup, s.now())

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteEntryRepo(tx)
		if err := txEntries.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing entries: %w", err)
		}
		for _, e := range entries {
			if err := txEntries.Create(ctx, e); err != nil {
				return fmt.Errorf("importing entry %q: %w", e.Name, err)
			}
		}
		if cfg != nil {
			txSettings := repository.NewSQLiteSettingsRepo(tx)
			if err := txSettings.SetWageConfig(ctx, cfg); err != nil {
				return fmt.Errorf("importing wage config: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		EntryCount:      len(entries),
		SettingsApplied: cfg != nil,
	}, nil
}

func (s *backupService) snapshot(ctx context.Context) ([]*domain.ShiftEntry, *domain.WageConfig, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing entries: %w", err)
	}
	cfg, err := s.settings.WageConfig(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading wage config: %w", err)
	}
	return entries, cfg, nil
}

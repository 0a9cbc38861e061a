package importer

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/tempus/internal/domain"
)

// Validate checks every record in the backup and returns all problems at
// once, so a user fixing a hand-edited file sees the full list.
func Validate(b *Backup) error {
	var errs []error

	for i, rec := range b.Entries {
		if rec.Name == "" {
			errs = append(errs, fmt.Errorf("entry %d: name is required", i+1))
		}
		if _, err := domain.ParseClock(rec.ClockIn); err != nil {
			errs = append(errs, fmt.Errorf("entry %d: clock-in: %w", i+1, err))
		}
		if rec.ClockOut != "" {
			if _, err := domain.ParseClock(rec.ClockOut); err != nil {
				errs = append(errs, fmt.Errorf("entry %d: clock-out: %w", i+1, err))
			}
		}
		if rec.BreakMinutes < 0 {
			errs = append(errs, fmt.Errorf("entry %d: break minutes must not be negative", i+1))
		}
	}

	if b.Settings != nil && b.Settings.OvertimeMultiplier < 1 {
		errs = append(errs, errors.New("settings: overtime multiplier must be at least 1"))
	}

	return errors.Join(errs...)
}

package importer

import (
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/timecalc"
)

// Convert turns validated backup records into domain entries. Imported ids
// are regenerated from now so they never collide with existing ones, and
// total hours are recomputed rather than trusted from the file. Categories
// are normalized, since older files may carry free-form labels.
//
// The returned wage config is nil when the backup had no usable settings;
// the caller then keeps whatever configuration is current.
func Convert(b *Backup, now time.Time) ([]*domain.ShiftEntry, *domain.WageConfig) {
	entries := make([]*domain.ShiftEntry, 0, len(b.Entries))
	base := now.UnixMilli()

	for i, rec := range b.Entries {
		clockIn, _ := domain.ParseClock(rec.ClockIn)
		var clockOut *domain.ClockTime
		if rec.ClockOut != "" {
			out, _ := domain.ParseClock(rec.ClockOut)
			clockOut = &out
		}

		e := &domain.ShiftEntry{
			ID:           base + int64(i),
			Name:         rec.Name,
			Category:     domain.NormalizeCategory(rec.Category),
			ClockIn:      clockIn,
			ClockOut:     clockOut,
			BreakMinutes: rec.BreakMinutes,
			Overtime:     rec.Overtime,
			CreatedAt:    now,
		}
		e.TotalHours = timecalc.WorkedHours(&e.ClockIn, e.ClockOut, e.BreakMinutes)
		entries = append(entries, e)
	}

	var cfg *domain.WageConfig
	if b.Settings != nil && b.Settings.HasCanonicalShape() {
		c := *b.Settings
		cfg = &c
	}
	return entries, cfg
}

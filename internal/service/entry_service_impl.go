package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/repository"
	"github.com/alexanderramin/tempus/internal/timecalc"
	"github.com/alexanderramin/tempus/internal/wage"
	"github.com/alexanderramin/tempus/internal/webhook"
)

// ErrNameRequired is returned when adding an entry without a worker name.
var ErrNameRequired = errors.New("worker name is required")

type entryService struct {
	entries  repository.EntryRepo
	settings repository.SettingsRepo
	pusher   Pusher
	notify   Notifier
	now      func() time.Time
	observer UseCaseObserver
}

func NewEntryService(
	entries repository.EntryRepo,
	settings repository.SettingsRepo,
	pusher Pusher,
	notify Notifier,
	observers ...UseCaseObserver,
) EntryService {
	if notify == nil {
		notify = func(string) {}
	}
	return &entryService{
		entries:  entries,
		settings: settings,
		pusher:   pusher,
		notify:   notify,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *entryService) Add(ctx context.Context, in AddEntryInput) (*domain.ShiftEntry, error) {
	start := s.now()
	e, err := s.add(ctx, in, start)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "entry_add",
		Duration:  s.now().Sub(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"category": in.Category},
		StartedAt: start,
	})
	return e, err
}

func (s *entryService) add(ctx context.Context, in AddEntryInput, now time.Time) (*domain.ShiftEntry, error) {
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	if in.BreakMinutes < 0 {
		in.BreakMinutes = 0
	}

	id, err := s.nextID(ctx, now)
	if err != nil {
		return nil, err
	}

	e := &domain.ShiftEntry{
		ID:           id,
		Name:         in.Name,
		Category:     domain.NormalizeCategory(in.Category),
		ClockIn:      in.ClockIn,
		ClockOut:     in.ClockOut,
		BreakMinutes: in.BreakMinutes,
		Overtime:     in.Overtime,
		CreatedAt:    now.UTC(),
	}
	e.TotalHours = timecalc.WorkedHours(&e.ClockIn, e.ClockOut, e.BreakMinutes)

	if err := s.entries.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("creating entry: %w", err)
	}
	s.pushIfCompleted(ctx, e)
	return e, nil
}

// nextID derives the entry id from the wall clock, bumped past the highest
// stored id so rapid inserts and imported entries never collide. Ids are
// never reused, even after deletion of the latest entry within the same
// millisecond.
func (s *entryService) nextID(ctx context.Context, now time.Time) (int64, error) {
	maxID, err := s.entries.MaxID(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading highest entry id: %w", err)
	}
	id := now.UnixMilli()
	if id <= maxID {
		id = maxID + 1
	}
	return id, nil
}

func (s *entryService) Close(ctx context.Context, id int64, out domain.ClockTime, breakMinutes int) (*domain.ShiftEntry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := e.Close(out, breakMinutes); err != nil {
		return nil, err
	}
	e.TotalHours = timecalc.WorkedHours(&e.ClockIn, e.ClockOut, e.BreakMinutes)
	if err := s.entries.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("updating entry: %w", err)
	}
	s.pushIfCompleted(ctx, e)
	return e, nil
}

func (s *entryService) SetBreak(ctx context.Context, id int64, minutes int) (*domain.ShiftEntry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.SetBreak(minutes)
	e.TotalHours = timecalc.WorkedHours(&e.ClockIn, e.ClockOut, e.BreakMinutes)
	if err := s.entries.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("updating entry: %w", err)
	}
	s.pushIfCompleted(ctx, e)
	return e, nil
}

func (s *entryService) ToggleOvertime(ctx context.Context, id int64) (*domain.ShiftEntry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := e.ToggleOvertime(); err != nil {
		return nil, err
	}
	if err := s.entries.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("updating entry: %w", err)
	}
	return e, nil
}

func (s *entryService) Remove(ctx context.Context, id int64) error {
	return s.entries.Delete(ctx, id)
}

func (s *entryService) GetByID(ctx context.Context, id int64) (*domain.ShiftEntry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *entryService) List(ctx context.Context) ([]*domain.ShiftEntry, error) {
	return s.entries.List(ctx)
}

// pushIfCompleted forwards a completed entry to the configured webhook.
// Delivery is best effort: the entry is already persisted, so a push
// failure only produces a notifier status line.
func (s *entryService) pushIfCompleted(ctx context.Context, e *domain.ShiftEntry) {
	if s.pusher == nil || e.Active() {
		return
	}
	enabled, err := s.settings.WebhookEnabled(ctx)
	if err != nil || !enabled {
		return
	}
	url, err := s.settings.WebhookURL(ctx)
	if err != nil || url == "" {
		return
	}
	cfg, err := s.settings.WageConfig(ctx)
	if err != nil {
		s.notify(fmt.Sprintf("webhook skipped: %v", err))
		return
	}

	rate := wage.ResolveRate(cfg, e.Category)
	payload := webhook.NewEntryPayload(e, wage.Cost(e, cfg), rate)
	if err := s.pusher.PushEntry(ctx, url, payload); err != nil {
		s.notify(fmt.Sprintf("webhook delivery failed: %v", err))
		return
	}
	s.notify("entry delivered to webhook")
}

package application

import (
	"context"
	"fmt"
	"time"

	"teetime/internal/domain"
	"teetime/internal/domain/entities"
	"teetime/internal/domain/schedule"
	"teetime/internal/ports/input"
	"teetime/internal/ports/output"
)

var _ input.CalendarUseCase = (*CalendarService)(nil)

// CalendarService materializes the weekly slots of the rolling window.
type CalendarService struct {
	store output.Store
}

func NewCalendarService(store output.Store) *CalendarService {
	return &CalendarService{store: store}
}

// GenerateRollingWindow creates the window's missing events. Dates that
// already have an event, including ones created concurrently by another
// caller, are skipped and not counted. Losing a lock race to such a caller
// is retried.
func (s *CalendarService) GenerateRollingWindow(ctx context.Context, now time.Time) (int, error) {
	var created int
	err := withRetry(ctx, "generate", func() error {
		var err error
		created, err = s.generate(ctx, now)
		return err
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func (s *CalendarService) generate(ctx context.Context, now time.Time) (int, error) {
	slots := schedule.RollingWindow(now).Slots()
	var created int
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx output.Repositories) error {
		created = 0
		for _, slot := range slots {
			deadlines := schedule.For(slot.Date)
			event := &entities.Event{
				Date:                 slot.Date,
				DayOfWeek:            slot.DayLabel(),
				Capacity:             domain.DefaultCapacity,
				SignupCutoff:         deadlines.SignupCutoff,
				CancellationDeadline: deadlines.CancellationDeadline,
				CreatedAt:            now,
			}
			ok, err := tx.Events().CreateIfAbsent(ctx, event)
			if err != nil {
				return fmt.Errorf("create event %s: %w", slot.Date.Format(time.DateOnly), err)
			}
			if ok {
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// ListWindow generates the window and returns both of its weeks.
func (s *CalendarService) ListWindow(ctx context.Context, now time.Time) (*input.WindowView, error) {
	if _, err := s.GenerateRollingWindow(ctx, now); err != nil {
		return nil, err
	}
	w := schedule.RollingWindow(now)
	return s.listRange(ctx, now, w.Week1Start, w.Week2End)
}

// ListWeek returns week 0 or week 1 of the window without generating.
func (s *CalendarService) ListWeek(ctx context.Context, now time.Time, offset int) (*input.WindowView, error) {
	start, end, ok := schedule.RollingWindow(now).Week(offset)
	if !ok {
		return nil, domain.Invalid("offset", "only weeks 0 and 1 are supported")
	}
	return s.listRange(ctx, now, start, end)
}

// GetEvent returns one event with its counters at now.
func (s *CalendarService) GetEvent(ctx context.Context, now time.Time, id uint) (*input.EventSummary, error) {
	e, err := s.store.Events().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	summary, err := summarize(ctx, s.store, *e, now)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *CalendarService) listRange(ctx context.Context, now, start, end time.Time) (*input.WindowView, error) {
	events, err := s.store.Events().FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	view := &input.WindowView{Start: start, End: end, Events: make([]input.EventSummary, 0, len(events))}
	for _, e := range events {
		summary, err := summarize(ctx, s.store, e, now)
		if err != nil {
			return nil, err
		}
		view.Events = append(view.Events, summary)
	}
	return view, nil
}

func summarize(ctx context.Context, repos output.Repositories, e entities.Event, now time.Time) (input.EventSummary, error) {
	confirmed, err := confirmedCount(ctx, repos, e.ID)
	if err != nil {
		return input.EventSummary{}, err
	}
	waitlisted, err := repos.Enrollments().CountWaitlisted(ctx, e.ID)
	if err != nil {
		return input.EventSummary{}, fmt.Errorf("count waitlisted: %w", err)
	}
	return input.EventSummary{
		Event:          e,
		Confirmed:      confirmed,
		Waitlisted:     waitlisted,
		AvailableSpots: max(0, e.Capacity-confirmed),
		IsFull:         confirmed >= e.Capacity,
		IsCutoffPassed: e.IsCutoffPassed(now),
		CanCancel:      e.CanCancel(now),
	}, nil
}

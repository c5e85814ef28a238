package input

import (
	"context"
	"time"

	"teetime/internal/domain/entities"
)

// EventSummary is an event with its seat counters evaluated at a given instant.
type EventSummary struct {
	Event          entities.Event
	Confirmed      int
	Waitlisted     int
	AvailableSpots int
	IsFull         bool
	IsCutoffPassed bool
	CanCancel      bool
}

// WindowView is one listing of the rolling window (or one of its weeks).
type WindowView struct {
	Start  time.Time
	End    time.Time
	Events []EventSummary
}

type CalendarUseCase interface {
	// GenerateRollingWindow materializes the window's missing slots and
	// returns how many events were created.
	GenerateRollingWindow(ctx context.Context, now time.Time) (int, error)
	ListWindow(ctx context.Context, now time.Time) (*WindowView, error)
	ListWeek(ctx context.Context, now time.Time, offset int) (*WindowView, error)
	GetEvent(ctx context.Context, now time.Time, id uint) (*EventSummary, error)
}

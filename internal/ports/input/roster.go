package input

import (
	"context"
	"time"

	"teetime/internal/domain/entities"
)

type RosterEntry struct {
	EnrollmentID uint
	UserID       string
	GuestName    string
	CreatedAt    time.Time
	CancelledAt  time.Time // zero unless cancelled
}

type Roster struct {
	Event      entities.Event
	Confirmed  []RosterEntry
	Waitlisted []RosterEntry
	Cancelled  []RosterEntry
}

type RosterUseCase interface {
	GetRoster(ctx context.Context, eventID uint) (*Roster, error)
	ConfirmedCount(ctx context.Context, eventID uint) (int, error)
}

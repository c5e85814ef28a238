package entities

import (
	"time"

	"teetime/internal/domain"
)

// Enrollment is a user's seat (or waitlist place) on an event.
type Enrollment struct {
	ID          uint
	UserID      string
	EventID     uint
	Waitlisted  bool
	Cancelled   bool
	CancelledAt time.Time // zero unless Cancelled
	GuestName   string
	CreatedAt   time.Time
}

// Status derives the caller-facing status of the enrollment.
func (e *Enrollment) Status() string {
	switch {
	case e.Cancelled:
		return domain.StatusCancelled
	case e.Waitlisted:
		return domain.StatusWaitlisted
	default:
		return domain.StatusConfirmed
	}
}

// Before reports whether e precedes o in queue order: creation time, then id.
func (e *Enrollment) Before(o *Enrollment) bool {
	if !e.CreatedAt.Equal(o.CreatedAt) {
		return e.CreatedAt.Before(o.CreatedAt)
	}
	return e.ID < o.ID
}

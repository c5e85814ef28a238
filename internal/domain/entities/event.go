package entities

import "time"

// Event is one materialized slot. Date is a civil date stored at midnight UTC.
type Event struct {
	ID                   uint
	Date                 time.Time
	DayOfWeek            string
	Capacity             int
	SignupCutoff         time.Time
	CancellationDeadline time.Time
	CreatedAt            time.Time
}

// IsCutoffPassed reports whether signups at now are forced onto the waitlist.
func (e *Event) IsCutoffPassed(now time.Time) bool {
	return !now.Before(e.SignupCutoff)
}

// CanCancel reports whether an enrollment may still be cancelled at now.
func (e *Event) CanCancel(now time.Time) bool {
	return now.Before(e.CancellationDeadline)
}

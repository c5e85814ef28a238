// Package schedule holds the pure calendar arithmetic: signup cutoffs,
// cancellation deadlines and the rolling two-week window.
package schedule

import (
	"time"

	"teetime/pkg/tz"
)

const (
	cutoffHour       = 18
	cancellationHour = 8
)

// cutoffOffsetDays maps a slot weekday to the distance, in days, back to
// the Wednesday whose evening closes signups.
var cutoffOffsetDays = map[time.Weekday]int{
	time.Monday:    5,
	time.Wednesday: 7,
	time.Friday:    9,
}

// Deadlines are the two instants governing an event's enrollment.
type Deadlines struct {
	SignupCutoff         time.Time
	CancellationDeadline time.Time
}

// SignupCutoff returns Wednesday 18:00 Pacific of the week preceding date.
// Weekdays other than Monday, Wednesday and Friday fall back to 7 days.
func SignupCutoff(date time.Time) time.Time {
	days, ok := cutoffOffsetDays[date.Weekday()]
	if !ok {
		days = 7
	}
	return tz.At(date.AddDate(0, 0, -days), cutoffHour, tz.Pacific)
}

// CancellationDeadline returns 08:00 Pacific on the day before date.
func CancellationDeadline(date time.Time) time.Time {
	return tz.At(date.AddDate(0, 0, -1), cancellationHour, tz.Pacific)
}

// For computes both deadlines of an event on date.
func For(date time.Time) Deadlines {
	return Deadlines{
		SignupCutoff:         SignupCutoff(date),
		CancellationDeadline: CancellationDeadline(date),
	}
}

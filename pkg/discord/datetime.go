package discord

import (
	"time"

	"teetime/pkg/tz"
)

// FormatEventDate renders a civil event date, e.g. "2026-10-19".
func FormatEventDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(time.DateOnly)
}

// FormatDeadline renders an instant in Pacific time, e.g. "Wed 2026-10-14 18:00 PDT".
func FormatDeadline(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Pacific).Format("Mon 2006-01-02 15:04 MST")
}

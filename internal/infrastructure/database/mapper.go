package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"teetime/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func dateToPgtype(t time.Time) pgtype.Date {
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func textToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

type scanner interface {
	Scan(dest ...any) error
}

const eventColumns = `id, event_date, day_of_week, capacity, signup_cutoff, cancellation_deadline, created_at`

func scanEvent(row scanner) (entities.Event, error) {
	var (
		e        entities.Event
		id       int64
		date     pgtype.Date
		capacity int32
	)
	if err := row.Scan(&id, &date, &e.DayOfWeek, &capacity, &e.SignupCutoff, &e.CancellationDeadline, &e.CreatedAt); err != nil {
		return entities.Event{}, err
	}
	e.ID = uint(id)
	e.Date = date.Time
	e.Capacity = int(capacity)
	return e, nil
}

const enrollmentColumns = `id, user_id, event_id, waitlisted, cancelled, cancelled_at, guest_name, created_at`

func scanEnrollment(row scanner) (entities.Enrollment, error) {
	var (
		e           entities.Enrollment
		id, eventID int64
		cancelledAt pgtype.Timestamptz
		guestName   pgtype.Text
	)
	if err := row.Scan(&id, &e.UserID, &eventID, &e.Waitlisted, &e.Cancelled, &cancelledAt, &guestName, &e.CreatedAt); err != nil {
		return entities.Enrollment{}, err
	}
	e.ID = uint(id)
	e.EventID = uint(eventID)
	e.CancelledAt = pgtypeTimestamptzToTime(cancelledAt)
	e.GuestName = guestName.String
	return e, nil
}

const userColumns = `id, name, email, created_at`

func scanUser(row scanner) (entities.User, error) {
	var u entities.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

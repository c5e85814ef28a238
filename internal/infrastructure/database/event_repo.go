package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"teetime/internal/domain"
	"teetime/internal/domain/entities"
	"teetime/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	db DBTX
}

func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

// CreateIfAbsent relies on the events_event_date_key constraint: a
// concurrent insert of the same date waits for the other transaction and
// then inserts nothing.
func (r *EventRepository) CreateIfAbsent(ctx context.Context, event *entities.Event) (bool, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
INSERT INTO events (event_date, day_of_week, capacity, signup_cutoff, cancellation_deadline, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (event_date) DO NOTHING
RETURNING id`,
		dateToPgtype(event.Date),
		event.DayOfWeek,
		int32(event.Capacity),
		event.SignupCutoff,
		event.CancellationDeadline,
		event.CreatedAt,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create event: %w", err)
	}
	event.ID = uint(id)
	return true, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*entities.Event, error) {
	return r.findOne(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
}

func (r *EventRepository) LockByID(ctx context.Context, id uint) (*entities.Event, error) {
	return r.findOne(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, id)
}

func (r *EventRepository) findOne(ctx context.Context, query string, id uint) (*entities.Event, error) {
	e, err := scanEvent(r.db.QueryRow(ctx, query, int64(id)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]entities.Event, error) {
	rows, err := r.db.Query(ctx, `
SELECT `+eventColumns+`
FROM events
WHERE event_date BETWEEN $1 AND $2
ORDER BY event_date`,
		dateToPgtype(from), dateToPgtype(to))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []entities.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

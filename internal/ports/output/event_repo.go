package output

import (
	"context"
	"time"

	"teetime/internal/domain/entities"
)

type EventRepository interface {
	// CreateIfAbsent inserts event unless one already exists for its date.
	// It reports whether a row was created; losing a race is not an error.
	CreateIfAbsent(ctx context.Context, event *entities.Event) (bool, error)
	FindByID(ctx context.Context, id uint) (*entities.Event, error)
	// LockByID loads the event and holds its row lock until the enclosing
	// unit of work ends. It is the per-event serialization point.
	LockByID(ctx context.Context, id uint) (*entities.Event, error)
	// FindByDateRange lists events with from <= date <= to, ordered by date.
	FindByDateRange(ctx context.Context, from, to time.Time) ([]entities.Event, error)
}

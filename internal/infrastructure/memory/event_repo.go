package memory

import (
	"context"
	"sort"
	"time"

	"teetime/internal/domain"
	"teetime/internal/domain/entities"
	"teetime/internal/ports/output"
)

var _ output.EventRepository = (*eventRepo)(nil)

type eventRepo struct {
	do access
}

func (r *eventRepo) CreateIfAbsent(ctx context.Context, event *entities.Event) (bool, error) {
	created := false
	err := r.do(func(st *state) error {
		for _, e := range st.events {
			if e.Date.Equal(event.Date) {
				return nil
			}
		}
		st.nextEventID++
		event.ID = st.nextEventID
		st.events[event.ID] = *event
		created = true
		return nil
	})
	return created, err
}

func (r *eventRepo) FindByID(ctx context.Context, id uint) (*entities.Event, error) {
	var out entities.Event
	err := r.do(func(st *state) error {
		e, ok := st.events[id]
		if !ok {
			return domain.ErrEventNotFound
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LockByID needs no extra locking: a unit of work already holds the store.
func (r *eventRepo) LockByID(ctx context.Context, id uint) (*entities.Event, error) {
	return r.FindByID(ctx, id)
}

func (r *eventRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]entities.Event, error) {
	var out []entities.Event
	err := r.do(func(st *state) error {
		for _, e := range st.events {
			if !e.Date.Before(from) && !e.Date.After(to) {
				out = append(out, e)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, err
}

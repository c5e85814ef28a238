// Package memory implements the storage ports in process. A unit of work
// holds the store mutex for its whole duration and works on a copy of
// the state that replaces the original only on success.
package memory

import (
	"context"
	"sort"
	"sync"

	"teetime/internal/domain/entities"
	"teetime/internal/ports/output"
)

var _ output.Store = (*Store)(nil)

type Store struct {
	mu    sync.Mutex
	state *state

	// usersMu may be taken while mu is held, never the other way round.
	usersMu sync.Mutex
	users   map[string]entities.User // by id
}

type state struct {
	events           map[uint]entities.Event
	enrollments      map[uint]entities.Enrollment
	nextEventID      uint
	nextEnrollmentID uint
}

func New() *Store {
	return &Store{
		state: &state{
			events:      map[uint]entities.Event{},
			enrollments: map[uint]entities.Enrollment{},
		},
		users: map[string]entities.User{},
	}
}

func (st *state) clone() *state {
	c := &state{
		events:           make(map[uint]entities.Event, len(st.events)),
		enrollments:      make(map[uint]entities.Enrollment, len(st.enrollments)),
		nextEventID:      st.nextEventID,
		nextEnrollmentID: st.nextEnrollmentID,
	}
	for k, v := range st.events {
		c.events[k] = v
	}
	for k, v := range st.enrollments {
		c.enrollments[k] = v
	}
	return c
}

// access runs fn against a state, serializing it as the binding requires.
type access func(fn func(st *state) error) error

func (s *Store) direct(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

type repos struct {
	events      *eventRepo
	enrollments *enrollmentRepo
}

func (s *Store) newRepos(a access) *repos {
	return &repos{events: &eventRepo{do: a}, enrollments: &enrollmentRepo{do: a, userExists: s.hasUser}}
}

func (r *repos) Events() output.EventRepository           { return r.events }
func (r *repos) Enrollments() output.EnrollmentRepository { return r.enrollments }

func (s *Store) Events() output.EventRepository           { return s.newRepos(s.direct).events }
func (s *Store) Enrollments() output.EnrollmentRepository { return s.newRepos(s.direct).enrollments }

// WithinTx must not be re-entered from fn; fn uses the tx repositories only.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx output.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	tx := s.newRepos(func(f func(st *state) error) error { return f(working) })
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.state = working
	return nil
}

func sortEnrollments(list []entities.Enrollment) {
	sort.Slice(list, func(i, j int) bool { return list[i].Before(&list[j]) })
}

package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"teetime/internal/domain/entities"
	"teetime/internal/domain/schedule"
	"teetime/internal/infrastructure/memory"
	"teetime/internal/ports/input"
	"teetime/internal/ports/output"
	"teetime/pkg/tz"
)

// Saturday 2026-10-17 10:00 Pacific.
var start = time.Date(2026, 10, 17, 10, 0, 0, 0, tz.Pacific)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock(t time.Time) *clock { return &clock{t: t} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type sentNotification struct {
	kind    string
	userID  string
	eventID uint
	status  string
}

type recordingSink struct {
	mu   sync.Mutex
	sent []sentNotification
	err  error
}

func (s *recordingSink) NotifySignup(_ context.Context, userID string, eventID uint, status, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentNotification{"signup", userID, eventID, status})
	return s.err
}

func (s *recordingSink) NotifyPromotion(_ context.Context, userID string, eventID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentNotification{"promotion", userID, eventID, "confirmed"})
	return s.err
}

func (s *recordingSink) all() []sentNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentNotification(nil), s.sent...)
}

type fixture struct {
	store      *memory.Store
	clock      *clock
	sink       *recordingSink
	enrollment *EnrollmentService
	roster     *RosterService

	ids   map[string]string // name to user id
	names map[string]string // user id to name
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	c := newClock(start)
	sink := &recordingSink{}
	return &fixture{
		store:      store,
		clock:      c,
		sink:       sink,
		enrollment: NewEnrollmentService(store, sink, c.Now),
		roster:     NewRosterService(store),
		ids:        map[string]string{},
		names:      map[string]string{},
	}
}

// user registers name in the directory and returns its id. Not safe for
// concurrent use; resolve before starting goroutines.
func (f *fixture) user(t *testing.T, name string) string {
	t.Helper()
	if id, ok := f.ids[name]; ok {
		return id
	}
	u, _, err := f.store.Resolve(context.Background(), name, name+"@example.com")
	if err != nil {
		t.Fatalf("resolve %s: %v", name, err)
	}
	f.ids[name] = u.ID
	f.names[u.ID] = name
	return u.ID
}

// name maps a user id back to the name it was registered with.
func (f *fixture) name(id string) string {
	if n, ok := f.names[id]; ok {
		return n
	}
	return id
}

func (f *fixture) userNames(entries []input.RosterEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, f.name(e.UserID))
	}
	return out
}

// seedEvent creates an event on date with the given capacity and the
// standard deadlines.
func (f *fixture) seedEvent(t *testing.T, date time.Time, capacity int) entities.Event {
	t.Helper()
	d := schedule.For(date)
	e := &entities.Event{
		Date:                 date,
		DayOfWeek:            date.Weekday().String(),
		Capacity:             capacity,
		SignupCutoff:         d.SignupCutoff,
		CancellationDeadline: d.CancellationDeadline,
		CreatedAt:            f.clock.Now(),
	}
	err := f.store.WithinTx(context.Background(), func(ctx context.Context, tx output.Repositories) error {
		_, err := tx.Events().CreateIfAbsent(ctx, e)
		return err
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return *e
}

func (f *fixture) mustSignup(t *testing.T, name string, eventID uint) uint {
	t.Helper()
	res, err := f.enrollment.Signup(context.Background(), f.user(t, name), eventID, "")
	if err != nil {
		t.Fatalf("signup %s: %v", name, err)
	}
	return res.EnrollmentID
}

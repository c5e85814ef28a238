package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"teetime/internal/domain"
	"teetime/internal/domain/entities"
	"teetime/internal/ports/output"
)

var _ output.UserDirectory = (*Store)(nil)

func (s *Store) Resolve(ctx context.Context, name, email string) (*entities.User, bool, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, false, nil
		}
	}
	u := entities.User{ID: uuid.NewString(), Name: name, Email: email, CreatedAt: time.Now().UTC()}
	s.users[u.ID] = u
	return &u, true, nil
}

func (s *Store) hasUser(id string) bool {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	_, ok := s.users[id]
	return ok
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *Store) FindByID(ctx context.Context, id string) (*entities.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) FindByIDs(ctx context.Context, ids []string) (map[string]entities.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	out := make(map[string]entities.User, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (s *Store) List(ctx context.Context) ([]entities.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	out := make([]entities.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

package application

import (
	"context"
	"fmt"

	"teetime/internal/domain"
	"teetime/internal/ports/input"
	"teetime/internal/ports/output"
)

var _ input.RosterUseCase = (*RosterService)(nil)

// RosterService is the read-only projection of an event's enrollments.
type RosterService struct {
	store output.Store
}

func NewRosterService(store output.Store) *RosterService {
	return &RosterService{store: store}
}

// GetRoster partitions every enrollment of the event, cancelled ones
// included, keeping queue order within each list.
func (s *RosterService) GetRoster(ctx context.Context, eventID uint) (*input.Roster, error) {
	if eventID == 0 {
		return nil, domain.Invalid("event_id", "is required")
	}
	event, err := s.store.Events().FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.store.Enrollments().FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	roster := &input.Roster{
		Event:      *event,
		Confirmed:  []input.RosterEntry{},
		Waitlisted: []input.RosterEntry{},
		Cancelled:  []input.RosterEntry{},
	}
	for _, e := range enrollments {
		entry := input.RosterEntry{
			EnrollmentID: e.ID,
			UserID:       e.UserID,
			GuestName:    e.GuestName,
			CreatedAt:    e.CreatedAt,
			CancelledAt:  e.CancelledAt,
		}
		switch e.Status() {
		case domain.StatusCancelled:
			roster.Cancelled = append(roster.Cancelled, entry)
		case domain.StatusWaitlisted:
			roster.Waitlisted = append(roster.Waitlisted, entry)
		default:
			roster.Confirmed = append(roster.Confirmed, entry)
		}
	}
	return roster, nil
}

// ConfirmedCount returns the number of confirmed, non-cancelled enrollments.
func (s *RosterService) ConfirmedCount(ctx context.Context, eventID uint) (int, error) {
	if _, err := s.store.Events().FindByID(ctx, eventID); err != nil {
		return 0, err
	}
	return confirmedCount(ctx, s.store, eventID)
}

// confirmedCount is shared with the enrollment transitions, which call it
// on their transaction-bound repositories.
func confirmedCount(ctx context.Context, repos output.Repositories, eventID uint) (int, error) {
	n, err := repos.Enrollments().CountConfirmed(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("count confirmed: %w", err)
	}
	return n, nil
}

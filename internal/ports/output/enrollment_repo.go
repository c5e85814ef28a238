package output

import (
	"context"
	"time"

	"teetime/internal/domain/entities"
)

// EnrollmentRepository lists are always in queue order: created_at, then id.
type EnrollmentRepository interface {
	// Create inserts enrollment; a second active row for the same user and
	// event fails with domain.ErrDuplicateEnrollment.
	Create(ctx context.Context, enrollment *entities.Enrollment) error
	FindByID(ctx context.Context, id uint) (*entities.Enrollment, error)
	FindActive(ctx context.Context, userID string, eventID uint) (*entities.Enrollment, error)
	FindByEventID(ctx context.Context, eventID uint) ([]entities.Enrollment, error)
	FindActiveByUserID(ctx context.Context, userID string) ([]entities.Enrollment, error)
	CountConfirmed(ctx context.Context, eventID uint) (int, error)
	CountWaitlisted(ctx context.Context, eventID uint) (int, error)
	// OldestWaitlisted returns the head of the event's waitlist or
	// domain.ErrEnrollmentNotFound when it is empty.
	OldestWaitlisted(ctx context.Context, eventID uint) (*entities.Enrollment, error)
	MarkCancelled(ctx context.Context, id uint, at time.Time) error
	Promote(ctx context.Context, id uint) error
}

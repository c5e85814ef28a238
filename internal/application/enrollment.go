package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"teetime/internal/domain"
	"teetime/internal/domain/entities"
	"teetime/internal/ports/input"
	"teetime/internal/ports/output"
)

const maxGuestNameLen = 100

var _ input.EnrollmentUseCase = (*EnrollmentService)(nil)

// EnrollmentService owns the signup, cancel and promotion transitions.
// Every transition runs in one unit of work holding the event's row lock.
type EnrollmentService struct {
	store output.Store
	sink  output.NotificationSink
	now   func() time.Time
}

// NewEnrollmentService builds the service; a nil now defaults to time.Now.
func NewEnrollmentService(store output.Store, sink output.NotificationSink, now func() time.Time) *EnrollmentService {
	if now == nil {
		now = time.Now
	}
	return &EnrollmentService{store: store, sink: sink, now: now}
}

// Signup enrolls userID on eventID. The enrollment is waitlisted when the
// signup cutoff has passed or the confirmed seats are already full.
func (s *EnrollmentService) Signup(ctx context.Context, userID string, eventID uint, guestName string) (*input.SignupResult, error) {
	userID = strings.TrimSpace(userID)
	guestName = strings.TrimSpace(guestName)
	if userID == "" {
		return nil, domain.Invalid("user_id", "is required")
	}
	if eventID == 0 {
		return nil, domain.Invalid("event_id", "is required")
	}
	if utf8.RuneCountInString(guestName) > maxGuestNameLen {
		return nil, domain.Invalid("guest_name", fmt.Sprintf("must be at most %d characters", maxGuestNameLen))
	}

	var enrollment *entities.Enrollment
	err := withRetry(ctx, "signup", func() error {
		return s.store.WithinTx(ctx, func(ctx context.Context, tx output.Repositories) error {
			event, err := tx.Events().LockByID(ctx, eventID)
			if err != nil {
				return err
			}
			_, err = tx.Enrollments().FindActive(ctx, userID, eventID)
			switch {
			case err == nil:
				return domain.ErrDuplicateEnrollment
			case !errors.Is(err, domain.ErrEnrollmentNotFound):
				return err
			}
			confirmed, err := confirmedCount(ctx, tx, eventID)
			if err != nil {
				return err
			}
			now := s.now()
			e := &entities.Enrollment{
				UserID:     userID,
				EventID:    eventID,
				Waitlisted: event.IsCutoffPassed(now) || confirmed >= event.Capacity,
				GuestName:  guestName,
				CreatedAt:  now,
			}
			if err := tx.Enrollments().Create(ctx, e); err != nil {
				return err
			}
			enrollment = e
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	status := enrollment.Status()
	if err := s.sink.NotifySignup(ctx, userID, eventID, status, guestName); err != nil {
		log.Printf("❌ Signup notification failed (enrollment=%d): %v", enrollment.ID, err)
	}
	return &input.SignupResult{EnrollmentID: enrollment.ID, Status: status}, nil
}

// Cancel cancels the enrollment while the event's cancellation window is
// open. Freeing a confirmed seat promotes the head of the waitlist.
func (s *EnrollmentService) Cancel(ctx context.Context, enrollmentID uint) (*input.CancelResult, error) {
	if enrollmentID == 0 {
		return nil, domain.Invalid("enrollment_id", "is required")
	}

	var result *input.CancelResult
	err := withRetry(ctx, "cancel", func() error {
		return s.store.WithinTx(ctx, func(ctx context.Context, tx output.Repositories) error {
			found, err := tx.Enrollments().FindByID(ctx, enrollmentID)
			if err != nil {
				return err
			}
			event, err := tx.Events().LockByID(ctx, found.EventID)
			if err != nil {
				return err
			}
			// Re-read under the event lock.
			enrollment, err := tx.Enrollments().FindByID(ctx, enrollmentID)
			if err != nil {
				return err
			}
			if enrollment.Cancelled {
				return domain.ErrAlreadyCancelled
			}
			now := s.now()
			if !event.CanCancel(now) {
				return domain.ErrCancellationWindowClosed
			}
			if err := tx.Enrollments().MarkCancelled(ctx, enrollment.ID, now); err != nil {
				return err
			}
			enrollment.Cancelled = true
			enrollment.CancelledAt = now

			res := &input.CancelResult{Enrollment: *enrollment}
			if !enrollment.Waitlisted {
				promoted, err := promoteNext(ctx, tx, event.ID)
				if err != nil {
					return err
				}
				res.Promoted = promoted
			}
			result = res
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if p := result.Promoted; p != nil {
		if err := s.sink.NotifyPromotion(ctx, p.UserID, p.EventID); err != nil {
			log.Printf("❌ Promotion notification failed (enrollment=%d): %v", p.ID, err)
		}
	}
	return result, nil
}

// promoteNext confirms the oldest waitlisted enrollment of the event, if any.
func promoteNext(ctx context.Context, tx output.Repositories, eventID uint) (*entities.Enrollment, error) {
	next, err := tx.Enrollments().OldestWaitlisted(ctx, eventID)
	if errors.Is(err, domain.ErrEnrollmentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := tx.Enrollments().Promote(ctx, next.ID); err != nil {
		return nil, err
	}
	next.Waitlisted = false
	return next, nil
}

// ListActiveForUser returns the user's non-cancelled enrollments.
func (s *EnrollmentService) ListActiveForUser(ctx context.Context, userID string) ([]entities.Enrollment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.Invalid("user_id", "is required")
	}
	return s.store.Enrollments().FindActiveByUserID(ctx, userID)
}

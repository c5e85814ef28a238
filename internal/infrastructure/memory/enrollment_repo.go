package memory

import (
	"context"
	"time"

	"teetime/internal/domain"
	"teetime/internal/domain/entities"
	"teetime/internal/ports/output"
)

var _ output.EnrollmentRepository = (*enrollmentRepo)(nil)

type enrollmentRepo struct {
	do         access
	userExists func(id string) bool
}

func (r *enrollmentRepo) Create(ctx context.Context, enrollment *entities.Enrollment) error {
	return r.do(func(st *state) error {
		if _, ok := st.events[enrollment.EventID]; !ok {
			return domain.ErrEventNotFound
		}
		if !r.userExists(enrollment.UserID) {
			return domain.ErrUserNotFound
		}
		for _, e := range st.enrollments {
			if !e.Cancelled && e.UserID == enrollment.UserID && e.EventID == enrollment.EventID {
				return domain.ErrDuplicateEnrollment
			}
		}
		st.nextEnrollmentID++
		enrollment.ID = st.nextEnrollmentID
		st.enrollments[enrollment.ID] = *enrollment
		return nil
	})
}

func (r *enrollmentRepo) FindByID(ctx context.Context, id uint) (*entities.Enrollment, error) {
	var out entities.Enrollment
	err := r.do(func(st *state) error {
		e, ok := st.enrollments[id]
		if !ok {
			return domain.ErrEnrollmentNotFound
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *enrollmentRepo) FindActive(ctx context.Context, userID string, eventID uint) (*entities.Enrollment, error) {
	list, err := r.filter(func(e entities.Enrollment) bool {
		return !e.Cancelled && e.UserID == userID && e.EventID == eventID
	})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrEnrollmentNotFound
	}
	return &list[0], nil
}

func (r *enrollmentRepo) FindByEventID(ctx context.Context, eventID uint) ([]entities.Enrollment, error) {
	return r.filter(func(e entities.Enrollment) bool { return e.EventID == eventID })
}

func (r *enrollmentRepo) FindActiveByUserID(ctx context.Context, userID string) ([]entities.Enrollment, error) {
	return r.filter(func(e entities.Enrollment) bool { return !e.Cancelled && e.UserID == userID })
}

func (r *enrollmentRepo) CountConfirmed(ctx context.Context, eventID uint) (int, error) {
	list, err := r.filter(func(e entities.Enrollment) bool {
		return e.EventID == eventID && !e.Cancelled && !e.Waitlisted
	})
	return len(list), err
}

func (r *enrollmentRepo) CountWaitlisted(ctx context.Context, eventID uint) (int, error) {
	list, err := r.filter(func(e entities.Enrollment) bool {
		return e.EventID == eventID && !e.Cancelled && e.Waitlisted
	})
	return len(list), err
}

func (r *enrollmentRepo) OldestWaitlisted(ctx context.Context, eventID uint) (*entities.Enrollment, error) {
	list, err := r.filter(func(e entities.Enrollment) bool {
		return e.EventID == eventID && !e.Cancelled && e.Waitlisted
	})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrEnrollmentNotFound
	}
	return &list[0], nil
}

func (r *enrollmentRepo) MarkCancelled(ctx context.Context, id uint, at time.Time) error {
	return r.update(id, func(e *entities.Enrollment) {
		e.Cancelled = true
		e.CancelledAt = at
	})
}

func (r *enrollmentRepo) Promote(ctx context.Context, id uint) error {
	return r.update(id, func(e *entities.Enrollment) { e.Waitlisted = false })
}

func (r *enrollmentRepo) update(id uint, mutate func(e *entities.Enrollment)) error {
	return r.do(func(st *state) error {
		e, ok := st.enrollments[id]
		if !ok {
			return domain.ErrEnrollmentNotFound
		}
		mutate(&e)
		st.enrollments[id] = e
		return nil
	})
}

// filter returns the matching enrollments in queue order.
func (r *enrollmentRepo) filter(keep func(e entities.Enrollment) bool) ([]entities.Enrollment, error) {
	var out []entities.Enrollment
	err := r.do(func(st *state) error {
		for _, e := range st.enrollments {
			if keep(e) {
				out = append(out, e)
			}
		}
		return nil
	})
	sortEnrollments(out)
	return out, err
}

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

var _ output.EnrollmentRepository = (*EnrollmentRepository)(nil)

// EnrollmentRepository implements output.EnrollmentRepository with pgx.
type EnrollmentRepository struct {
	db DBTX
}

func NewEnrollmentRepository(db DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

const queueOrder = ` ORDER BY created_at, id`

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *entities.Enrollment) error {
	var id int64
	err := r.db.QueryRow(ctx, `
INSERT INTO enrollments (user_id, event_id, waitlisted, guest_name, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`,
		enrollment.UserID,
		int64(enrollment.EventID),
		enrollment.Waitlisted,
		textToPgtype(enrollment.GuestName),
		enrollment.CreatedAt,
	).Scan(&id)
	if err != nil {
		switch code, constraint := pgCode(err); {
		case code == uniqueViolation && constraint == activeEnrollmentIndex:
			return domain.ErrDuplicateEnrollment
		case code == foreignKeyViolation && constraint == "enrollments_event_id_fkey":
			return domain.ErrEventNotFound
		case code == foreignKeyViolation && constraint == "enrollments_user_id_fkey":
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("create enrollment: %w", err)
	}
	enrollment.ID = uint(id)
	return nil
}

func (r *EnrollmentRepository) FindByID(ctx context.Context, id uint) (*entities.Enrollment, error) {
	return r.findOne(ctx, `SELECT `+enrollmentColumns+` FROM enrollments WHERE id = $1`, int64(id))
}

func (r *EnrollmentRepository) FindActive(ctx context.Context, userID string, eventID uint) (*entities.Enrollment, error) {
	return r.findOne(ctx, `
SELECT `+enrollmentColumns+`
FROM enrollments
WHERE user_id = $1 AND event_id = $2 AND NOT cancelled`, userID, int64(eventID))
}

// OldestWaitlisted is the single promotion query: earliest-created,
// non-cancelled, waitlisted enrollment of the event.
func (r *EnrollmentRepository) OldestWaitlisted(ctx context.Context, eventID uint) (*entities.Enrollment, error) {
	return r.findOne(ctx, `
SELECT `+enrollmentColumns+`
FROM enrollments
WHERE event_id = $1 AND waitlisted AND NOT cancelled`+queueOrder+`
LIMIT 1`, int64(eventID))
}

func (r *EnrollmentRepository) findOne(ctx context.Context, query string, args ...any) (*entities.Enrollment, error) {
	e, err := scanEnrollment(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return &e, nil
}

func (r *EnrollmentRepository) FindByEventID(ctx context.Context, eventID uint) ([]entities.Enrollment, error) {
	return r.list(ctx, `SELECT `+enrollmentColumns+` FROM enrollments WHERE event_id = $1`+queueOrder, int64(eventID))
}

func (r *EnrollmentRepository) FindActiveByUserID(ctx context.Context, userID string) ([]entities.Enrollment, error) {
	return r.list(ctx, `SELECT `+enrollmentColumns+` FROM enrollments WHERE user_id = $1 AND NOT cancelled`+queueOrder, userID)
}

func (r *EnrollmentRepository) list(ctx context.Context, query string, args ...any) ([]entities.Enrollment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	var out []entities.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EnrollmentRepository) CountConfirmed(ctx context.Context, eventID uint) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM enrollments WHERE event_id = $1 AND NOT waitlisted AND NOT cancelled`, eventID)
}

func (r *EnrollmentRepository) CountWaitlisted(ctx context.Context, eventID uint) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM enrollments WHERE event_id = $1 AND waitlisted AND NOT cancelled`, eventID)
}

func (r *EnrollmentRepository) count(ctx context.Context, query string, eventID uint) (int, error) {
	var n int64
	if err := r.db.QueryRow(ctx, query, int64(eventID)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return int(n), nil
}

func (r *EnrollmentRepository) MarkCancelled(ctx context.Context, id uint, at time.Time) error {
	return r.exec(ctx, "cancel enrollment",
		`UPDATE enrollments SET cancelled = TRUE, cancelled_at = $2 WHERE id = $1 AND NOT cancelled`,
		int64(id), timeToPgtypeTimestamptz(at))
}

func (r *EnrollmentRepository) Promote(ctx context.Context, id uint) error {
	return r.exec(ctx, "promote enrollment",
		`UPDATE enrollments SET waitlisted = FALSE WHERE id = $1 AND waitlisted AND NOT cancelled`,
		int64(id))
}

func (r *EnrollmentRepository) exec(ctx context.Context, op, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}

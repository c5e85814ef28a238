package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"teetime/internal/domain"
)

// SQLSTATE codes the store reacts to.
const (
	uniqueViolation      = "23505"
	foreignKeyViolation  = "23503"
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
	lockNotAvailable     = "55P03"
)

const activeEnrollmentIndex = "enrollments_active_user_event"

// classify turns lock and serialization failures into
// domain.ErrConcurrentConflict so callers can retry them.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case serializationFailure, deadlockDetected, lockNotAvailable:
		return fmt.Errorf("%w: %s", domain.ErrConcurrentConflict, pgErr.Message)
	}
	return err
}

func pgCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

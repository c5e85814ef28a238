package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"teetime/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code         string
		wantConflict bool
	}{
		{serializationFailure, true},
		{deadlockDetected, true},
		{lockNotAvailable, true},
		{uniqueViolation, false},
		{"22001", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := classify(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: tt.code, Message: "m"}))
			if got := errors.Is(err, domain.ErrConcurrentConflict); got != tt.wantConflict {
				t.Fatalf("conflict = %v, want %v (err = %v)", got, tt.wantConflict, err)
			}
		})
	}

	plain := errors.New("plain")
	if classify(plain) != plain {
		t.Fatal("non-postgres errors must pass through unchanged")
	}
}

func TestPgCode(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolation, ConstraintName: activeEnrollmentIndex})
	code, constraint := pgCode(err)
	if code != uniqueViolation || constraint != activeEnrollmentIndex {
		t.Fatalf("got %q %q", code, constraint)
	}
	if code, _ := pgCode(errors.New("x")); code != "" {
		t.Fatalf("code = %q, want empty", code)
	}
}

package input

import (
	"context"

	"teetime/internal/domain/entities"
)

type SignupResult struct {
	EnrollmentID uint
	Status       string
}

type CancelResult struct {
	Enrollment entities.Enrollment
	// Promoted is the waitlisted enrollment that took the freed seat, if any.
	Promoted *entities.Enrollment
}

type EnrollmentUseCase interface {
	Signup(ctx context.Context, userID string, eventID uint, guestName string) (*SignupResult, error)
	Cancel(ctx context.Context, enrollmentID uint) (*CancelResult, error)
	ListActiveForUser(ctx context.Context, userID string) ([]entities.Enrollment, error)
}
